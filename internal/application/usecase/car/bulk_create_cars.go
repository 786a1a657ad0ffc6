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

// BulkCarInput is a single car line in a bulk creation request.
type BulkCarInput struct {
	StockNo     string
	Name        string
	Chassis     string
	Amount      decimal.Decimal
	CompanyName string
	Date        time.Time
}

// BulkCreateCarsInput represents the input for bulk car creation.
type BulkCreateCarsInput struct {
	Scope     adapter.OwnerScope
	CarrierID uuid.UUID
	Cars      []BulkCarInput
}

// BulkCreateCarsOutput represents the output of bulk car creation.
type BulkCreateCarsOutput struct {
	Cars []entity.Car
}

// BulkCreateCarsUseCase creates several cars under a trip in one shot,
// typically from a pasted spreadsheet.
type BulkCreateCarsUseCase struct {
	carRepo     adapter.CarRepository
	carrierRepo adapter.CarrierRepository
}

// NewBulkCreateCarsUseCase creates a new BulkCreateCarsUseCase instance.
func NewBulkCreateCarsUseCase(carRepo adapter.CarRepository, carrierRepo adapter.CarrierRepository) *BulkCreateCarsUseCase {
	return &BulkCreateCarsUseCase{carRepo: carRepo, carrierRepo: carrierRepo}
}

// Execute creates all cars in one transaction. Either every car is created
// or none are.
func (uc *BulkCreateCarsUseCase) Execute(ctx context.Context, input BulkCreateCarsInput) (*BulkCreateCarsOutput, error) {
	carrier, err := uc.carrierRepo.FindByID(ctx, input.Scope, input.CarrierID)
	if err != nil {
		return nil, err
	}
	if carrier.Type != entity.CarrierTypeTrip {
		return nil, domainerror.ErrNotATripCarrier
	}

	cars := make([]entity.Car, 0, len(input.Cars))
	for _, c := range input.Cars {
		car := entity.NewCar(carrier.ID, carrier.UserID, c.StockNo, c.Name, c.Chassis, c.CompanyName, c.Amount, c.Date)
		cars = append(cars, *car)
	}

	if err := uc.carRepo.CreateBatch(ctx, cars); err != nil {
		return nil, err
	}

	return &BulkCreateCarsOutput{Cars: cars}, nil
}
