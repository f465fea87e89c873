package repository

import (
	"context"

	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"

	"github.com/google/uuid"
)

// ErrCalculationNotFound is returned when a calculation is absent or owned by someone else.
var ErrCalculationNotFound = domainerrors.ErrCalculationNotFound

// CalculationRepository persists calculations. Every read and write is scoped to an owner.
type CalculationRepository interface {
	Create(ctx context.Context, calc *entity.Calculation) error

	// FindByOwner lists the owner's calculations, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Calculation, error)

	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Calculation, error)

	// Update saves inputs and result. It returns ErrCalculationNotFound when
	// the row does not exist for the owner.
	Update(ctx context.Context, calc *entity.Calculation) error

	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
