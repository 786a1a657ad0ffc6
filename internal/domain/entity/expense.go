package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseScope tells whether an expense belongs to a trip or a truck.
type ExpenseScope string

const (
	ExpenseScopeTrip  ExpenseScope = "trip"
	ExpenseScopeTruck ExpenseScope = "truck"
)

// ExpenseCategory categorizes an expense within its scope.
type ExpenseCategory string

// Trip expense categories.
const (
	ExpenseCategoryFuel       ExpenseCategory = "fuel"
	ExpenseCategoryDriverRent ExpenseCategory = "driver_rent"
	ExpenseCategoryTaxes      ExpenseCategory = "taxes"
	ExpenseCategoryToolTaxes  ExpenseCategory = "tool_taxes"
	ExpenseCategoryOnRoad     ExpenseCategory = "on_road"
	ExpenseCategoryOthers     ExpenseCategory = "others"
)

// Truck expense categories (fuel and others shared with trips).
const (
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategoryTyre        ExpenseCategory = "tyre"
)

// Expense represents a trip- or truck-scoped expense. Creating one adds its
// amount to the parent's cached total; deleting one must reverse that.
type Expense struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Scope    ExpenseScope
	Category ExpenseCategory

	CarrierID *uuid.UUID // set when Scope is trip
	TruckID   *uuid.UUID // set when Scope is truck

	Amount  decimal.Decimal
	Details string
	Date    time.Time

	// Category-specific fields.
	Liters        *decimal.Decimal // fuel
	PricePerLiter *decimal.Decimal // fuel
	MeterReading  *int64           // maintenance, tyre
	DriverName    string           // driver_rent

	CreatedAt time.Time
}

// NewExpense creates a new Expense entity. For fuel expenses with both liters
// and price per liter supplied, the amount is derived as liters x price.
func NewExpense(userID uuid.UUID, scope ExpenseScope, category ExpenseCategory, amount decimal.Decimal, details string, date time.Time) *Expense {
	return &Expense{
		ID:        uuid.New(),
		UserID:    userID,
		Scope:     scope,
		Category:  category,
		Amount:    amount,
		Details:   details,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

// DeriveFuelAmount recomputes the amount from liters x price per liter when
// both are present. It is a no-op otherwise.
func (e *Expense) DeriveFuelAmount() {
	if e.Category != ExpenseCategoryFuel {
		return
	}
	if e.Liters == nil || e.PricePerLiter == nil {
		return
	}
	e.Amount = e.Liters.Mul(*e.PricePerLiter)
}

// tripCategories and truckCategories define valid categories per scope.
var tripCategories = map[ExpenseCategory]bool{
	ExpenseCategoryFuel:       true,
	ExpenseCategoryDriverRent: true,
	ExpenseCategoryTaxes:      true,
	ExpenseCategoryToolTaxes:  true,
	ExpenseCategoryOnRoad:     true,
	ExpenseCategoryOthers:     true,
}

var truckCategories = map[ExpenseCategory]bool{
	ExpenseCategoryMaintenance: true,
	ExpenseCategoryFuel:        true,
	ExpenseCategoryTyre:        true,
	ExpenseCategoryOthers:      true,
}

// ValidCategory reports whether the category is allowed for the scope.
func ValidCategory(scope ExpenseScope, category ExpenseCategory) bool {
	switch scope {
	case ExpenseScopeTrip:
		return tripCategories[category]
	case ExpenseScopeTruck:
		return truckCategories[category]
	default:
		return false
	}
}
