package validation

import (
	"errors"
	"testing"

	"go-golf-advising-backend/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatErrors(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(&domain.RegisterInput{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	messages := FormatErrors(err)
	assert.Equal(t, []string{
		"Name is required",
		"Email must be a valid email address",
		"Password must be at least 8 characters",
	}, messages)
}

func TestSummaryJoinsMessages(t *testing.T) {
	validate := validator.New()

	handicap := 99
	err := validate.Struct(&domain.ProfilePatch{Handicap: &handicap})
	require.Error(t, err)

	assert.Equal(t, "Handicap must be at most 54", Summary(err))
}

func TestNonValidationErrorIsGeneric(t *testing.T) {
	assert.Equal(t, []string{"Invalid input"}, FormatErrors(errors.New("boom")))
}
