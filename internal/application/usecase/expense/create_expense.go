// Package expense contains trip and truck expense use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Scope    adapter.OwnerScope
	Category entity.ExpenseCategory

	CarrierID *uuid.UUID
	TruckID   *uuid.UUID

	Amount  decimal.Decimal
	Details string
	Date    time.Time

	Liters        *decimal.Decimal
	PricePerLiter *decimal.Decimal
	MeterReading  *int64
	DriverName    string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation. A trip expense adds its
// amount to the carrier's cached total; a truck maintenance expense can also
// advance the truck's meter reading.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	carrierRepo adapter.CarrierRepository
	truckRepo   adapter.TruckRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, carrierRepo adapter.CarrierRepository, truckRepo adapter.TruckRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		carrierRepo: carrierRepo,
		truckRepo:   truckRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	scope, err := uc.resolveScope(input)
	if err != nil {
		return nil, err
	}
	if !entity.ValidCategory(scope, input.Category) {
		return nil, domainerror.ErrInvalidExpenseCategory
	}

	expense := entity.NewExpense(input.Scope.UserID, scope, input.Category, input.Amount, input.Details, input.Date)
	expense.CarrierID = input.CarrierID
	expense.TruckID = input.TruckID
	expense.Liters = input.Liters
	expense.PricePerLiter = input.PricePerLiter
	expense.MeterReading = input.MeterReading
	expense.DriverName = input.DriverName
	expense.DeriveFuelAmount()

	switch scope {
	case entity.ExpenseScopeTrip:
		if err := uc.addToCarrierTotal(ctx, input.Scope, *input.CarrierID, expense.Amount); err != nil {
			return nil, err
		}
	case entity.ExpenseScopeTruck:
		if err := uc.advanceTruckMeter(ctx, input.Scope, *input.TruckID, expense); err != nil {
			return nil, err
		}
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}

func (uc *CreateExpenseUseCase) resolveScope(input CreateExpenseInput) (entity.ExpenseScope, error) {
	switch {
	case input.CarrierID != nil:
		return entity.ExpenseScopeTrip, nil
	case input.TruckID != nil:
		return entity.ExpenseScopeTruck, nil
	default:
		return "", domainerror.ErrExpenseParentMissing
	}
}

func (uc *CreateExpenseUseCase) addToCarrierTotal(ctx context.Context, scope adapter.OwnerScope, carrierID uuid.UUID, amount decimal.Decimal) error {
	carrier, err := uc.carrierRepo.FindByID(ctx, scope, carrierID)
	if err != nil {
		return err
	}
	carrier.TotalExpense = carrier.TotalExpense.Add(amount)
	carrier.UpdatedAt = time.Now().UTC()
	return uc.carrierRepo.Update(ctx, carrier)
}

func (uc *CreateExpenseUseCase) advanceTruckMeter(ctx context.Context, scope adapter.OwnerScope, truckID uuid.UUID, expense *entity.Expense) error {
	truck, err := uc.truckRepo.FindByID(ctx, scope, truckID)
	if err != nil {
		return err
	}
	if expense.MeterReading == nil || *expense.MeterReading <= truck.CurrentMeterReading {
		return nil
	}

	truck.CurrentMeterReading = *expense.MeterReading
	if expense.Category == entity.ExpenseCategoryMaintenance {
		truck.LastMaintenanceKm = *expense.MeterReading
		d := expense.Date
		truck.LastMaintenanceDate = &d
	}
	truck.UpdatedAt = time.Now().UTC()
	return uc.truckRepo.Update(ctx, truck)
}
