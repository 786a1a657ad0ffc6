package car

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// DeleteCarInput represents the input for car deletion.
type DeleteCarInput struct {
	Scope adapter.OwnerScope
	CarID uuid.UUID
}

// DeleteCarUseCase handles car deletion.
type DeleteCarUseCase struct {
	carRepo     adapter.CarRepository
	carrierRepo adapter.CarrierRepository
}

// NewDeleteCarUseCase creates a new DeleteCarUseCase instance.
func NewDeleteCarUseCase(carRepo adapter.CarRepository, carrierRepo adapter.CarrierRepository) *DeleteCarUseCase {
	return &DeleteCarUseCase{carRepo: carRepo, carrierRepo: carrierRepo}
}

// Execute deletes the car after checking the caller owns its carrier.
func (uc *DeleteCarUseCase) Execute(ctx context.Context, input DeleteCarInput) error {
	car, err := uc.carRepo.FindByID(ctx, input.CarID)
	if err != nil {
		return err
	}

	if !input.Scope.SuperAdmin && car.UserID != input.Scope.UserID {
		return domainerror.ErrCarNotFound
	}

	return uc.carRepo.Delete(ctx, car.ID)
}
