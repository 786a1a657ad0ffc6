package carrier

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
)

// DeleteCarrierInput represents the input for carrier deletion.
type DeleteCarrierInput struct {
	Scope     adapter.OwnerScope
	CarrierID uuid.UUID
}

// DeleteCarrierUseCase handles carrier deletion.
type DeleteCarrierUseCase struct {
	carrierRepo adapter.CarrierRepository
}

// NewDeleteCarrierUseCase creates a new DeleteCarrierUseCase instance.
func NewDeleteCarrierUseCase(carrierRepo adapter.CarrierRepository) *DeleteCarrierUseCase {
	return &DeleteCarrierUseCase{carrierRepo: carrierRepo}
}

// Execute deletes the carrier and its cars.
func (uc *DeleteCarrierUseCase) Execute(ctx context.Context, input DeleteCarrierInput) error {
	if _, err := uc.carrierRepo.FindByID(ctx, input.Scope, input.CarrierID); err != nil {
		return err
	}
	return uc.carrierRepo.Delete(ctx, input.Scope, input.CarrierID)
}
