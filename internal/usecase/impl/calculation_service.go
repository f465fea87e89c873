package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "abacus/internal/delivery/context"
	"abacus/internal/domain/constants"
	"abacus/internal/domain/entity"
	"abacus/internal/domain/repository"
	"abacus/internal/domain/service"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type calculationService struct {
	txManager repository.TransactionManager
	calcRepo  repository.CalculationRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// CalculationServiceParams holds dependencies for CalculationService, injected by Fx.
type CalculationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CalcRepo  repository.CalculationRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCalculationService is the constructor for calculationService.
func NewCalculationService(params CalculationServiceParams) usecase.CalculationUsecase {
	return &calculationService{
		txManager: params.TxManager,
		calcRepo:  params.CalcRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *calculationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *calculationService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateCalculationInput) (*entity.Calculation, error) {
	op, err := entity.ParseOperationType(input.Type)
	if err != nil {
		return nil, err
	}

	calc, err := entity.NewCalculation(ownerID, op, input.Inputs)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CalculationRepo().Create(ctx, calc)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calculation")
	}

	srv.publish(ctx, constants.CalculationEventCreated, calc)

	return calc, nil
}

func (srv *calculationService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Calculation, error) {
	calcs, err := srv.calcRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list calculations")
	}

	return calcs, nil
}

func (srv *calculationService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Calculation, error) {
	return srv.calcRepo.FindByIDAndOwner(ctx, id, ownerID)
}

// Update recomputes the result when inputs are supplied. updated_at moves
// forward either way.
func (srv *calculationService) Update(ctx context.Context, ownerID, id uuid.UUID, input *usecase.UpdateCalculationInput) (*entity.Calculation, error) {
	var updated *entity.Calculation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		calcRepo := repoFactory.CalculationRepo()

		calc, err := calcRepo.FindByIDAndOwner(ctx, id, ownerID)
		if err != nil {
			return err
		}

		if input != nil && input.Inputs != nil {
			if err := calc.ReplaceInputs(*input.Inputs); err != nil {
				return err
			}
		}

		if err := calcRepo.Update(ctx, calc); err != nil {
			return err
		}
		updated = calc

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, constants.CalculationEventUpdated, updated)

	return updated, nil
}

func (srv *calculationService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CalculationRepo().DeleteByIDAndOwner(ctx, id, ownerID)
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, constants.CalculationEventDeleted, &entity.Calculation{ID: id, UserID: ownerID})

	return nil
}

// publish is best effort. A failed publish is logged and never fails the request.
func (srv *calculationService) publish(ctx context.Context, eventType string, calc *entity.Calculation) {
	if srv.publisher == nil {
		return
	}

	event := &service.CalculationEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventType:     eventType,
		CalculationID: calc.ID.String(),
		UserID:        calc.UserID.String(),
		Type:          calc.Type.String(),
		Inputs:        calc.Inputs,
		Result:        calc.Result,
		OccurredAt:    time.Now().UTC(),
	}

	if err := srv.publisher.PublishCalculationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("failed to publish calculation event",
			slog.String("event_type", eventType),
			slog.String("calculation_id", event.CalculationID),
			slog.Any("error", err),
		)
	}
}
