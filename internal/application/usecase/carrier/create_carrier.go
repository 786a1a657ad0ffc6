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

// CreateCarrierInput represents the input for carrier creation.
type CreateCarrierInput struct {
	UserID     uuid.UUID
	Type       entity.CarrierType
	TripNumber string
	Name       string
	Date       time.Time
	TruckID    *uuid.UUID

	CarrierName string
	DriverName  string
	Details     string
	Notes       string
}

// CreateCarrierOutput represents the output of carrier creation.
type CreateCarrierOutput struct {
	Carrier *entity.Carrier
}

// CreateCarrierUseCase handles carrier creation logic.
type CreateCarrierUseCase struct {
	carrierRepo adapter.CarrierRepository
	truckRepo   adapter.TruckRepository
}

// NewCreateCarrierUseCase creates a new CreateCarrierUseCase instance.
func NewCreateCarrierUseCase(carrierRepo adapter.CarrierRepository, truckRepo adapter.TruckRepository) *CreateCarrierUseCase {
	return &CreateCarrierUseCase{carrierRepo: carrierRepo, truckRepo: truckRepo}
}

// Execute performs the carrier creation. Trip numbers are unique per owner;
// company carriers are keyed by name instead.
func (uc *CreateCarrierUseCase) Execute(ctx context.Context, input CreateCarrierInput) (*CreateCarrierOutput, error) {
	var carrier *entity.Carrier

	switch input.Type {
	case entity.CarrierTypeTrip:
		tripNumber := strings.TrimSpace(input.TripNumber)
		if tripNumber != "" {
			taken, err := uc.carrierRepo.ExistsByTripNumber(ctx, input.UserID, tripNumber)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domainerror.ErrTripNumberTaken
			}
		}
		carrier = entity.NewTripCarrier(input.UserID, tripNumber, input.Date)
	case entity.CarrierTypeCompany:
		carrier = entity.NewCompanyCarrier(input.UserID, strings.TrimSpace(input.Name), input.Date)
	default:
		return nil, domainerror.ErrInvalidCarrierType
	}

	if input.TruckID != nil {
		scope := adapter.OwnerScope{UserID: input.UserID}
		if _, err := uc.truckRepo.FindByID(ctx, scope, *input.TruckID); err != nil {
			return nil, err
		}
		carrier.TruckID = input.TruckID
	}

	carrier.CarrierName = input.CarrierName
	carrier.DriverName = input.DriverName
	carrier.Details = input.Details
	carrier.Notes = input.Notes

	if err := uc.carrierRepo.Create(ctx, carrier); err != nil {
		return nil, err
	}

	return &CreateCarrierOutput{Carrier: carrier}, nil
}
