package truck

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// UpdateTruckInput represents the input for truck updates. Nil pointer
// fields are left unchanged.
type UpdateTruckInput struct {
	Scope   adapter.OwnerScope
	TruckID uuid.UUID

	Name                *string
	Drivers             []string
	CurrentMeterReading *int64
	MaintenanceInterval *int64
	LastMaintenanceKm   *int64
	LastMaintenanceDate *time.Time
}

// UpdateTruckOutput represents the output of truck updates.
type UpdateTruckOutput struct {
	Truck *entity.Truck
}

// UpdateTruckUseCase handles truck update logic, including recording a
// completed maintenance.
type UpdateTruckUseCase struct {
	truckRepo adapter.TruckRepository
}

// NewUpdateTruckUseCase creates a new UpdateTruckUseCase instance.
func NewUpdateTruckUseCase(truckRepo adapter.TruckRepository) *UpdateTruckUseCase {
	return &UpdateTruckUseCase{truckRepo: truckRepo}
}

// Execute performs the truck update.
func (uc *UpdateTruckUseCase) Execute(ctx context.Context, input UpdateTruckInput) (*UpdateTruckOutput, error) {
	truck, err := uc.truckRepo.FindByID(ctx, input.Scope, input.TruckID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		truck.Name = *input.Name
	}
	if input.Drivers != nil {
		truck.Drivers = input.Drivers
	}
	if input.CurrentMeterReading != nil {
		truck.CurrentMeterReading = *input.CurrentMeterReading
	}
	if input.MaintenanceInterval != nil {
		truck.MaintenanceInterval = *input.MaintenanceInterval
	}
	if input.LastMaintenanceKm != nil {
		truck.LastMaintenanceKm = *input.LastMaintenanceKm
	}
	if input.LastMaintenanceDate != nil {
		truck.LastMaintenanceDate = input.LastMaintenanceDate
	}
	truck.UpdatedAt = time.Now().UTC()

	if err := uc.truckRepo.Update(ctx, truck); err != nil {
		return nil, err
	}

	return &UpdateTruckOutput{Truck: truck}, nil
}
