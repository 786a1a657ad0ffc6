package truck

import (
	"context"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// TruckWithStatus is a truck annotated with its derived maintenance status.
type TruckWithStatus struct {
	Truck             entity.Truck
	Status            entity.MaintenanceStatus
	NextMaintenanceKm int64
	KmsRemaining      int64
}

// ListTrucksInput represents the input for the truck listing.
type ListTrucksInput struct {
	Scope adapter.OwnerScope
}

// ListTrucksOutput represents the output of the truck listing.
type ListTrucksOutput struct {
	Trucks []TruckWithStatus
}

// ListTrucksUseCase handles the truck listing.
type ListTrucksUseCase struct {
	truckRepo adapter.TruckRepository
}

// NewListTrucksUseCase creates a new ListTrucksUseCase instance.
func NewListTrucksUseCase(truckRepo adapter.TruckRepository) *ListTrucksUseCase {
	return &ListTrucksUseCase{truckRepo: truckRepo}
}

// Execute lists trucks with maintenance status derived at read time.
func (uc *ListTrucksUseCase) Execute(ctx context.Context, input ListTrucksInput) (*ListTrucksOutput, error) {
	trucks, err := uc.truckRepo.List(ctx, input.Scope)
	if err != nil {
		return nil, err
	}

	annotated := make([]TruckWithStatus, 0, len(trucks))
	for _, t := range trucks {
		annotated = append(annotated, TruckWithStatus{
			Truck:             t,
			Status:            t.Status(),
			NextMaintenanceKm: t.NextMaintenanceKm(),
			KmsRemaining:      t.KmsRemaining(),
		})
	}

	return &ListTrucksOutput{Trucks: annotated}, nil
}
