package usecase

import (
	"context"

	"abacus/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCalculationInput is the body of a create request.
// Type accepts canonical names and their long aliases.
type CreateCalculationInput struct {
	Type   string    `json:"type" validate:"required"`
	Inputs []float64 `json:"inputs" validate:"required,min=2"`
}

// UpdateCalculationInput replaces a calculation's inputs. The operation type is fixed at creation.
type UpdateCalculationInput struct {
	Inputs *[]float64 `json:"inputs,omitempty" validate:"omitempty,min=2"`
}

// CalculationUsecase is the owner-scoped record store. A record that belongs
// to another user is reported exactly like a missing one.
type CalculationUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateCalculationInput) (*entity.Calculation, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Calculation, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Calculation, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input *UpdateCalculationInput) (*entity.Calculation, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
