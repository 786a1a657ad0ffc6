package error

import "errors"

// Company domain errors.
var (
	// ErrCompanyNotFound is returned when a company is not found.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyNameTaken is returned when a company name already exists for the owner.
	ErrCompanyNameTaken = errors.New("a company with this name already exists")

	// ErrNegativeCredit is returned when a credit override is negative.
	ErrNegativeCredit = errors.New("credit balance cannot be negative")
)
