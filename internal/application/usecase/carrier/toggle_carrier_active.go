package carrier

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// ToggleCarrierActiveInput represents the input for the active toggle.
type ToggleCarrierActiveInput struct {
	Scope     adapter.OwnerScope
	CarrierID uuid.UUID
	Active    bool
}

// ToggleCarrierActiveOutput represents the output of the active toggle.
type ToggleCarrierActiveOutput struct {
	Carrier *entity.Carrier
}

// ToggleCarrierActiveUseCase flips a carrier's active flag. Toggling always
// writes an explicit value, so legacy carriers without a stored flag gain one
// the first time they are toggled.
type ToggleCarrierActiveUseCase struct {
	carrierRepo adapter.CarrierRepository
}

// NewToggleCarrierActiveUseCase creates a new ToggleCarrierActiveUseCase instance.
func NewToggleCarrierActiveUseCase(carrierRepo adapter.CarrierRepository) *ToggleCarrierActiveUseCase {
	return &ToggleCarrierActiveUseCase{carrierRepo: carrierRepo}
}

// Execute performs the toggle.
func (uc *ToggleCarrierActiveUseCase) Execute(ctx context.Context, input ToggleCarrierActiveInput) (*ToggleCarrierActiveOutput, error) {
	carrier, err := uc.carrierRepo.FindByID(ctx, input.Scope, input.CarrierID)
	if err != nil {
		return nil, err
	}

	if input.Active {
		carrier.Active = entity.ActiveStateActive
	} else {
		carrier.Active = entity.ActiveStateInactive
	}
	carrier.UpdatedAt = time.Now().UTC()

	if err := uc.carrierRepo.Update(ctx, carrier); err != nil {
		return nil, err
	}

	return &ToggleCarrierActiveOutput{Carrier: carrier}, nil
}
