package error

import "errors"

// Expense and truck domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseCategory is returned when a category is invalid for the scope.
	ErrInvalidExpenseCategory = errors.New("invalid expense category for scope")

	// ErrExpenseParentMissing is returned when neither carrier nor truck is set.
	ErrExpenseParentMissing = errors.New("expense must reference a carrier or a truck")

	// ErrTruckNotFound is returned when a truck is not found.
	ErrTruckNotFound = errors.New("truck not found")

	// ErrTruckNumberTaken is returned when a truck number already exists for the owner.
	ErrTruckNumberTaken = errors.New("a truck with this number already exists")
)
