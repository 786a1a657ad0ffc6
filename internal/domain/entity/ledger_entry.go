package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry represents a single credit/debit movement on an account.
// Entries are immutable once created; statements are derived from them.
type LedgerEntry struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	Date           time.Time
	Details        string
	Credit         decimal.Decimal
	Debit          decimal.Decimal
	Destination    string // optional, set for transfers
	RateOfExchange *decimal.Decimal
	CreatedAt      time.Time
}

// NewLedgerEntry creates a new LedgerEntry entity.
func NewLedgerEntry(accountID uuid.UUID, date time.Time, details string, credit, debit decimal.Decimal) *LedgerEntry {
	return &LedgerEntry{
		ID:        uuid.New(),
		AccountID: accountID,
		Date:      date,
		Details:   details,
		Credit:    credit,
		Debit:     debit,
		CreatedAt: time.Now().UTC(),
	}
}

// Net returns credit - debit for this entry.
func (e *LedgerEntry) Net() decimal.Decimal {
	return e.Credit.Sub(e.Debit)
}
