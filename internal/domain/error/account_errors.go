package error

import "errors"

// Account and ledger domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountSlugTaken is returned when an account slug is already in use.
	ErrAccountSlugTaken = errors.New("an account with this slug already exists")

	// ErrInvalidStatementPeriod is returned when periodEnd precedes periodStart.
	ErrInvalidStatementPeriod = errors.New("statement period end precedes start")

	// ErrLedgerEntryNotFound is returned when a ledger entry is not found.
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")
)
