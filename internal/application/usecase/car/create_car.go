// Package car contains car-related use cases.
package car

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// CreateCarInput represents the input for car creation.
type CreateCarInput struct {
	Scope     adapter.OwnerScope
	CarrierID uuid.UUID

	StockNo     string
	Name        string
	Chassis     string
	Amount      decimal.Decimal
	CompanyName string
	Date        time.Time
}

// CreateCarOutput represents the output of car creation.
type CreateCarOutput struct {
	Car *entity.Car
}

// CreateCarUseCase handles car creation logic.
type CreateCarUseCase struct {
	carRepo     adapter.CarRepository
	carrierRepo adapter.CarrierRepository
}

// NewCreateCarUseCase creates a new CreateCarUseCase instance.
func NewCreateCarUseCase(carRepo adapter.CarRepository, carrierRepo adapter.CarrierRepository) *CreateCarUseCase {
	return &CreateCarUseCase{carRepo: carRepo, carrierRepo: carrierRepo}
}

// Execute performs the car creation. Cars attach to trip carriers only and
// inherit the carrier's owner.
func (uc *CreateCarUseCase) Execute(ctx context.Context, input CreateCarInput) (*CreateCarOutput, error) {
	carrier, err := uc.carrierRepo.FindByID(ctx, input.Scope, input.CarrierID)
	if err != nil {
		return nil, err
	}
	if carrier.Type != entity.CarrierTypeTrip {
		return nil, domainerror.ErrNotATripCarrier
	}

	car := entity.NewCar(carrier.ID, carrier.UserID, input.StockNo, input.Name, input.Chassis, input.CompanyName, input.Amount, input.Date)
	if err := uc.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	return &CreateCarOutput{Car: car}, nil
}
