package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Calculation is a user-owned record whose Result is always derived from Type and Inputs.
type Calculation struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Owner; only this user may read or change the record.
	Type      OperationType
	Inputs    []float64
	Result    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCalculation builds a calculation for the owner and computes its result.
func NewCalculation(userID uuid.UUID, op OperationType, inputs []float64) (*Calculation, error) {
	calc := &Calculation{
		UserID: userID,
		Type:   op,
	}
	if err := calc.ReplaceInputs(inputs); err != nil {
		return nil, err
	}

	return calc, nil
}

// ReplaceInputs swaps the operands and recomputes the result.
// The calculation is left untouched when the new inputs are rejected.
func (c *Calculation) ReplaceInputs(inputs []float64) error {
	result, err := c.Type.Apply(inputs)
	if err != nil {
		return err
	}

	c.Inputs = slices.Clone(inputs)
	c.Result = result

	return nil
}
