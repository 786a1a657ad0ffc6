package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// ExpenseFilter defines filtering options for expense queries.
type ExpenseFilter struct {
	Scope     *entity.ExpenseScope
	CarrierID *uuid.UUID
	TruckID   *uuid.UUID
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by ID, scoped to the caller.
	FindByID(ctx context.Context, scope OwnerScope, id uuid.UUID) (*entity.Expense, error)

	// List retrieves a page of expenses with optional filtering, newest
	// first, along with the total count.
	List(ctx context.Context, scope OwnerScope, filter ExpenseFilter, pagination Pagination) ([]entity.Expense, int64, error)

	// SumByCarrier returns the expense total of a carrier.
	SumByCarrier(ctx context.Context, carrierID uuid.UUID) (decimal.Decimal, error)

	// Update updates an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense.
	Delete(ctx context.Context, scope OwnerScope, id uuid.UUID) error
}
