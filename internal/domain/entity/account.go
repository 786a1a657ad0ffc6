package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a financial account against which ledger entries are
// recorded. CurrentBalance shifts by credit - debit for every entry.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Slug           string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Currency       string
	CurrencySymbol string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount creates a new Account entity. The current balance starts at the
// initial balance.
func NewAccount(userID uuid.UUID, title, slug, currency, currencySymbol string, initialBalance decimal.Decimal) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		Slug:           slug,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
		Currency:       currency,
		CurrencySymbol: currencySymbol,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
