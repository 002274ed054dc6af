package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func TestMCPCmd_HasServe(t *testing.T) {
	assert.Equal(t, []string{"serve"}, subcommandNames(mcpCmd))
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_RejectsBadPort(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "mcp", "serve", "--port", "70000")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMCPServeCmd_RequiresServices(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)

	_, err := execute(t, "mcp", "serve")
	assert.EqualError(t, err, "services not configured")
}
