package entity

import (
	"testing"

	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculation_ComputesResult(t *testing.T) {
	owner := uuid.New()
	inputs := []float64{10, 2}

	calc, err := NewCalculation(owner, OperationDivide, inputs)
	require.NoError(t, err)
	assert.Equal(t, owner, calc.UserID)
	assert.Equal(t, 5.0, calc.Result)

	inputs[0] = 99
	assert.Equal(t, []float64{10, 2}, calc.Inputs, "inputs must be copied")
}

func TestNewCalculation_DivisionByZero(t *testing.T) {
	calc, err := NewCalculation(uuid.New(), OperationDivide, []float64{10, 0})
	assert.Nil(t, calc)
	assert.True(t, errors.Is(err, domainerrors.ErrDivisionByZero))
}

func TestCalculation_ReplaceInputs(t *testing.T) {
	calc, err := NewCalculation(uuid.New(), OperationMultiply, []float64{2, 3})
	require.NoError(t, err)

	require.NoError(t, calc.ReplaceInputs([]float64{4, 5}))
	assert.Equal(t, 20.0, calc.Result)

	fresh, err := NewCalculation(calc.UserID, OperationMultiply, []float64{4, 5})
	require.NoError(t, err)
	assert.Equal(t, fresh.Result, calc.Result, "update and create must agree for identical inputs")

	div, err := NewCalculation(calc.UserID, OperationDivide, []float64{8, 2})
	require.NoError(t, err)
	assert.Error(t, div.ReplaceInputs([]float64{8, 0}))
	assert.Equal(t, []float64{8, 2}, div.Inputs)
	assert.Equal(t, 4.0, div.Result)
}
