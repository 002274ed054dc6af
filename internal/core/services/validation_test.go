package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

func TestValidLocation(t *testing.T) {
	tests := []struct {
		loc  string
		want bool
	}{
		{"/home/me/lecture.pdf", true},
		{"notes/week1.pdf", true},
		{"C:\\Users\\me\\a.pdf", true},
		{"https://example.org/a.pdf", true},
		{"http://localhost:8080/a.pdf", true},
		{"file:///tmp/a.pdf", true},
		{"", false},
		{"   ", false},
		{"ftp://example.org/a.pdf", false},
		{"https:///a.pdf", false},
		{"file://", false},
		{"bad\x00path", false},
	}

	for _, tt := range tests {
		t.Run(tt.loc, func(t *testing.T) {
			assert.Equal(t, tt.want, validLocation(tt.loc))
		})
	}
}

func TestValidationError_WrapsInvalidInput(t *testing.T) {
	v := NewValidator()
	err := v.Struct(domain.Unit{})

	wrapped := validationError(err)

	assert.ErrorIs(t, wrapped, domain.ErrInvalidInput)
	assert.Contains(t, wrapped.Error(), "Title (required)")
	assert.ErrorIs(t, validationError(errors.New("other")), domain.ErrInvalidInput)
}

func TestBlank(t *testing.T) {
	assert.False(t, blank(nil))
	assert.True(t, blank(strPtr(" \t")))
	assert.False(t, blank(strPtr("x")))
}
