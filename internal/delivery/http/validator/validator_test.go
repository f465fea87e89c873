package validator

import (
	"testing"

	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/errors"
	"abacus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.RegisterInput{
		Username:        "al",
		Email:           "not-an-email",
		FirstName:       "Al",
		LastName:        "Ice",
		Password:        "Secret123",
		ConfirmPassword: "Different1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "username: must be at least 3 characters")
	assert.Contains(t, appErr.Details(), "email: must be a valid email address")
	assert.Contains(t, appErr.Details(), "confirm_password: must match password")
}

func TestValidate_CalculationInputs(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateCalculationInput{Type: "add", Inputs: []float64{1}})
	require.Error(t, err)
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "inputs: must contain at least 2 items", appErr.Details())

	assert.NoError(t, v.Validate(&usecase.CreateCalculationInput{Type: "add", Inputs: []float64{1, 2}}))
	assert.NoError(t, v.Validate(&usecase.UpdateCalculationInput{}))

	short := []float64{3}
	assert.Error(t, v.Validate(&usecase.UpdateCalculationInput{Inputs: &short}))
}

func TestValidate_MissingRequired(t *testing.T) {
	err := New().Validate(&usecase.LoginInput{})

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "username: is required; password: is required", appErr.Details())
}
