// Package truck contains fleet truck use cases.
package truck

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// CreateTruckInput represents the input for truck creation.
type CreateTruckInput struct {
	UserID              uuid.UUID
	Name                string
	Number              string
	Drivers             []string
	CurrentMeterReading int64
	MaintenanceInterval int64
	LastMaintenanceKm   int64
}

// CreateTruckOutput represents the output of truck creation.
type CreateTruckOutput struct {
	Truck *entity.Truck
}

// CreateTruckUseCase handles truck creation logic.
type CreateTruckUseCase struct {
	truckRepo adapter.TruckRepository
}

// NewCreateTruckUseCase creates a new CreateTruckUseCase instance.
func NewCreateTruckUseCase(truckRepo adapter.TruckRepository) *CreateTruckUseCase {
	return &CreateTruckUseCase{truckRepo: truckRepo}
}

// Execute performs the truck creation. Truck numbers are unique per owner.
func (uc *CreateTruckUseCase) Execute(ctx context.Context, input CreateTruckInput) (*CreateTruckOutput, error) {
	number := strings.TrimSpace(input.Number)
	taken, err := uc.truckRepo.ExistsByNumber(ctx, input.UserID, number)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerror.ErrTruckNumberTaken
	}

	truck := entity.NewTruck(input.UserID, strings.TrimSpace(input.Name), number, input.Drivers, input.CurrentMeterReading, input.MaintenanceInterval, input.LastMaintenanceKm)
	if err := uc.truckRepo.Create(ctx, truck); err != nil {
		return nil, err
	}

	return &CreateTruckOutput{Truck: truck}, nil
}
