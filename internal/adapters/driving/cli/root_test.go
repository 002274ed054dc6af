package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "syllabus", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := subcommandNames(rootCmd)
	for _, want := range []string{
		"tui", "semesters", "subjects", "units", "subject", "notes", "pdfs",
		"theme", "semester", "config", "export", "mcp", "version",
	} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_ShowsHelpWithoutTerminal(t *testing.T) {
	setupTestServices(t)
	prev := isTerminal
	isTerminal = func() bool { return false }
	defer func() { isTerminal = prev }()

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRootCmd_BootstrapsAndCleansUp(t *testing.T) {
	setupTestServices(t)
	injected := active
	SetServices(nil)

	var gotOpts Options
	cleaned := 0
	SetBootstrap(func(_ context.Context, opts Options) (*Services, func() error, error) {
		gotOpts = opts
		return injected, func() error { cleaned++; return nil }, nil
	})

	out, err := execute(t, "--config-dir", "/tmp/syllabus-test", "semesters")
	require.NoError(t, err)
	assert.Contains(t, out, "Semester I")
	assert.Equal(t, "/tmp/syllabus-test", gotOpts.ConfigDir)
	assert.Equal(t, 1, cleaned)
	assert.Nil(t, active)
}

func TestRootCmd_BootstrapError(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)
	SetBootstrap(func(context.Context, Options) (*Services, func() error, error) {
		return nil, nil, errors.New("no database")
	})

	_, err := execute(t, "semesters")
	assert.EqualError(t, err, "no database")
}

func TestRootCmd_VersionSkipsBootstrap(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)
	SetBootstrap(func(context.Context, Options) (*Services, func() error, error) {
		return nil, nil, errors.New("should not run")
	})

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "syllabus version")
}

func TestRootCmd_WithoutServices(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)

	_, err := execute(t, "semesters")
	assert.EqualError(t, err, "services not configured")
}

func TestResolveConfigDir(t *testing.T) {
	prev := configDir
	defer func() { configDir = prev }()

	t.Run("env var", func(t *testing.T) {
		configDir = ""
		t.Setenv(HomeEnv, "/from/env")
		assert.Equal(t, "/from/env", resolveConfigDir())
	})

	t.Run("flag wins", func(t *testing.T) {
		configDir = "/from/flag"
		t.Setenv(HomeEnv, "/from/env")
		assert.Equal(t, "/from/flag", resolveConfigDir())
	})
}

func TestParseSubject(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSem  int
		wantCode string
		wantErr  bool
	}{
		{"valid", []string{"1", "BIO501"}, 1, "BIO501", false},
		{"trimmed code", []string{"2", " BIO551 "}, 2, "BIO551", false},
		{"zero semester", []string{"0", "BIO501"}, 0, "", true},
		{"word semester", []string{"one", "BIO501"}, 0, "", true},
		{"blank code", []string{"1", "  "}, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sem, code, err := parseSubject(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSem, sem)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestParseUnitIndex(t *testing.T) {
	idx, err := parseUnitIndex("3")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = parseUnitIndex("0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 note", plural(1, "note"))
	assert.Equal(t, "0 notes", plural(0, "note"))
	assert.Equal(t, "3 PDFs", plural(3, "PDF"))
}
