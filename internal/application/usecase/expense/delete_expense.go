package expense

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	Scope     adapter.OwnerScope
	ExpenseID uuid.UUID
}

// DeleteExpenseUseCase removes an expense and reverses its amount from the
// parent carrier's cached total.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	carrierRepo adapter.CarrierRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, carrierRepo adapter.CarrierRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo, carrierRepo: carrierRepo}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := uc.expenseRepo.FindByID(ctx, input.Scope, input.ExpenseID)
	if err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, input.Scope, expense.ID); err != nil {
		return err
	}

	if expense.Scope == entity.ExpenseScopeTrip && expense.CarrierID != nil {
		carrier, err := uc.carrierRepo.FindByID(ctx, input.Scope, *expense.CarrierID)
		if err != nil {
			return err
		}
		carrier.TotalExpense = carrier.TotalExpense.Sub(expense.Amount)
		carrier.UpdatedAt = time.Now().UTC()
		if err := uc.carrierRepo.Update(ctx, carrier); err != nil {
			return err
		}
	}

	return nil
}
