package entity

import (
	"fmt"
	"math"
	"strings"

	domainerrors "abacus/internal/domain/errors"
)

// OperationType is the arithmetic rule a calculation applies to its inputs.
type OperationType string

const (
	OperationAdd      OperationType = "add"
	OperationSubtract OperationType = "subtract"
	OperationMultiply OperationType = "multiply"
	OperationDivide   OperationType = "divide"
	OperationPower    OperationType = "power"
)

// MinOperands is the smallest number of inputs any operation accepts.
const MinOperands = 2

var operationAliases = map[string]OperationType{
	"add":            OperationAdd,
	"addition":       OperationAdd,
	"subtract":       OperationSubtract,
	"subtraction":    OperationSubtract,
	"multiply":       OperationMultiply,
	"multiplication": OperationMultiply,
	"divide":         OperationDivide,
	"division":       OperationDivide,
	"power":          OperationPower,
	"exponent":       OperationPower,
}

// ParseOperationType normalises a user-supplied operation name.
func ParseOperationType(s string) (OperationType, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", domainerrors.ErrInvalidOperation.WithDetails(fmt.Sprintf("unsupported calculation type %q", s))
	}

	return op, nil
}

// String returns the string representation of the OperationType.
func (o OperationType) String() string {
	return string(o)
}

// IsValid checks if the OperationType is a valid value.
func (o OperationType) IsValid() bool {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply, OperationDivide, OperationPower:
		return true
	default:
		return false
	}
}

// Apply folds the inputs left to right. Division fails on any zero divisor.
func (o OperationType) Apply(inputs []float64) (float64, error) {
	if !o.IsValid() {
		return 0, domainerrors.ErrInvalidOperation.WithDetails(fmt.Sprintf("unsupported calculation type %q", string(o)))
	}
	if len(inputs) < MinOperands {
		return 0, domainerrors.ErrInvalidOperation.WithDetails(fmt.Sprintf("at least %d inputs are required", MinOperands))
	}

	result := inputs[0]
	for i, x := range inputs[1:] {
		switch o {
		case OperationAdd:
			result += x
		case OperationSubtract:
			result -= x
		case OperationMultiply:
			result *= x
		case OperationDivide:
			if x == 0 {
				return 0, domainerrors.ErrDivisionByZero.WithDetails(fmt.Sprintf("input at position %d is zero", i+1))
			}
			result /= x
		case OperationPower:
			result = math.Pow(result, x)
		}
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, domainerrors.ErrInvalidOperation.WithDetails("result is not a finite number")
	}

	return result, nil
}
