package postgres

import (
	"context"
	"time"

	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	"abacus/internal/errors"
	"abacus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type calculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository is the constructor for calculationRepository.
func NewCalculationRepository(db *gorm.DB) repository.CalculationRepository {
	return &calculationRepository{db: db}
}

func (repo *calculationRepository) Create(ctx context.Context, calc *entity.Calculation) error {
	calcM := fromCalculationDomain(calc)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(calcM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("calculation owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create calculation")
	}

	calc.ID = calcM.ID
	calc.CreatedAt = calcM.CreatedAt
	calc.UpdatedAt = calcM.UpdatedAt

	return nil
}

func (repo *calculationRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Calculation, error) {
	var rows []model.CalculationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list calculations")
	}

	calcs := make([]*entity.Calculation, 0, len(rows))
	for i := range rows {
		calcs = append(calcs, toCalculationDomain(&rows[i]))
	}

	return calcs, nil
}

func (repo *calculationRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Calculation, error) {
	var calcM model.CalculationModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&calcM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCalculationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find calculation")
	}

	return toCalculationDomain(&calcM), nil
}

// Update writes inputs and result. updated_at is always bumped, even when the
// values are unchanged.
func (repo *calculationRepository) Update(ctx context.Context, calc *entity.Calculation) error {
	calcM := fromCalculationDomain(calc)
	calcM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.CalculationModel{}).
		Where("id = ? AND user_id = ?", calc.ID, calc.UserID).
		Updates(map[string]any{
			"inputs":     calcM.Inputs,
			"result":     calcM.Result,
			"updated_at": calcM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update calculation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCalculationNotFound
	}

	calc.UpdatedAt = calcM.UpdatedAt

	return nil
}

func (repo *calculationRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.CalculationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete calculation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCalculationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCalculationDomain(data *model.CalculationModel) *entity.Calculation {
	if data == nil {
		return nil
	}

	calc := &entity.Calculation{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.OperationType(data.Type),
		Inputs:    []float64(data.Inputs),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Result != nil {
		calc.Result = *data.Result
	}

	return calc
}

func fromCalculationDomain(data *entity.Calculation) *model.CalculationModel {
	if data == nil {
		return nil
	}

	result := data.Result

	return &model.CalculationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type.String(),
		Inputs:    datatypes.NewJSONSlice(data.Inputs),
		Result:    &result,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
