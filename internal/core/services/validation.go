package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/syllabus-cli/internal/core/domain"
)

// NewValidator returns a validator with the syllabus-specific tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	//nolint:errcheck // registration only fails for empty tags
	_ = v.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		return validLocation(fl.Field().String())
	})
	return v
}

// validLocation accepts http(s) and file URLs or a plain filesystem path.
func validLocation(loc string) bool {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return false
	}
	for _, r := range loc {
		if unicode.IsControl(r) {
			return false
		}
	}
	if !strings.Contains(loc, "://") {
		return true
	}
	u, err := url.Parse(loc)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "file":
		return u.Path != ""
	default:
		return false
	}
}

// validationError wraps a validator failure so callers can match ErrInvalidInput.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

// blank reports whether a partial-update field was set to whitespace only.
func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}
