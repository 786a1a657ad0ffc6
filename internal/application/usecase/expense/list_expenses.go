package expense

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for the expense listing.
type ListExpensesInput struct {
	Scope     adapter.OwnerScope
	Type      *entity.ExpenseScope
	CarrierID *uuid.UUID
	TruckID   *uuid.UUID
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// ListExpensesOutput represents the output of the expense listing.
type ListExpensesOutput struct {
	Expenses   []entity.Expense
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListExpensesUseCase handles the expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists expenses newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}

	filter := adapter.ExpenseFilter{
		Scope:     input.Type,
		CarrierID: input.CarrierID,
		TruckID:   input.TruckID,
		Category:  input.Category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	expenses, total, err := uc.expenseRepo.List(ctx, input.Scope, filter, adapter.Pagination{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	return &ListExpensesOutput{
		Expenses:   expenses,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}
