package carrier

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// UpdateCarrierInput represents the input for carrier updates. Nil pointer
// fields are left unchanged.
type UpdateCarrierInput struct {
	Scope     adapter.OwnerScope
	CarrierID uuid.UUID

	TripNumber  *string
	Name        *string
	Date        *time.Time
	TruckID     *uuid.UUID
	CarrierName *string
	DriverName  *string
	Details     *string
	Notes       *string
}

// UpdateCarrierOutput represents the output of carrier updates.
type UpdateCarrierOutput struct {
	Carrier *entity.Carrier
}

// UpdateCarrierUseCase handles carrier update logic.
type UpdateCarrierUseCase struct {
	carrierRepo adapter.CarrierRepository
}

// NewUpdateCarrierUseCase creates a new UpdateCarrierUseCase instance.
func NewUpdateCarrierUseCase(carrierRepo adapter.CarrierRepository) *UpdateCarrierUseCase {
	return &UpdateCarrierUseCase{carrierRepo: carrierRepo}
}

// Execute performs the carrier update.
func (uc *UpdateCarrierUseCase) Execute(ctx context.Context, input UpdateCarrierInput) (*UpdateCarrierOutput, error) {
	carrier, err := uc.carrierRepo.FindByID(ctx, input.Scope, input.CarrierID)
	if err != nil {
		return nil, err
	}

	if input.TripNumber != nil && carrier.Type == entity.CarrierTypeTrip {
		tripNumber := strings.TrimSpace(*input.TripNumber)
		if tripNumber != "" && tripNumber != carrier.TripNumber {
			taken, err := uc.carrierRepo.ExistsByTripNumber(ctx, carrier.UserID, tripNumber)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domainerror.ErrTripNumberTaken
			}
		}
		carrier.TripNumber = tripNumber
	}
	if input.Name != nil && carrier.Type == entity.CarrierTypeCompany {
		carrier.Name = strings.TrimSpace(*input.Name)
	}
	if input.Date != nil {
		carrier.Date = *input.Date
	}
	if input.TruckID != nil {
		carrier.TruckID = input.TruckID
	}
	if input.CarrierName != nil {
		carrier.CarrierName = *input.CarrierName
	}
	if input.DriverName != nil {
		carrier.DriverName = *input.DriverName
	}
	if input.Details != nil {
		carrier.Details = *input.Details
	}
	if input.Notes != nil {
		carrier.Notes = *input.Notes
	}
	carrier.UpdatedAt = time.Now().UTC()

	if err := uc.carrierRepo.Update(ctx, carrier); err != nil {
		return nil, err
	}

	return &UpdateCarrierOutput{Carrier: carrier}, nil
}
