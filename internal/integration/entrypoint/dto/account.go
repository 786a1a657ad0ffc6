package dto

import (
	"time"

	"github.com/freight-ledger/backend/internal/application/usecase/statement"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for creating an account.
type CreateAccountRequest struct {
	Title          string `json:"title" binding:"required,min=1,max=100"`
	InitialBalance string `json:"initial_balance"`
	Currency       string `json:"currency" binding:"required,min=1,max=10"`
	CurrencySymbol string `json:"currency_symbol" binding:"required,min=1,max=5"`
}

// CreateEntryRequest represents the request body for adding a ledger entry.
type CreateEntryRequest struct {
	Date           string `json:"date" binding:"required"`
	Details        string `json:"details" binding:"required,min=1,max=500"`
	Credit         string `json:"credit"`
	Debit          string `json:"debit"`
	Destination    string `json:"destination,omitempty"`
	RateOfExchange string `json:"rate_of_exchange,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	InitialBalance string    `json:"initial_balance"`
	CurrentBalance string    `json:"current_balance"`
	Currency       string    `json:"currency"`
	CurrencySymbol string    `json:"currency_symbol"`
	CreatedAt      time.Time `json:"created_at"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"account_id"`
	Date           time.Time `json:"date"`
	Details        string    `json:"details"`
	Credit         string    `json:"credit"`
	Debit          string    `json:"debit"`
	Destination    string    `json:"destination,omitempty"`
	RateOfExchange *string   `json:"rate_of_exchange,omitempty"`
	RunningBalance string    `json:"running_balance,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// StatementResponse represents an account statement in API responses.
type StatementResponse struct {
	Account        AccountResponse `json:"account"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	OpeningBalance string          `json:"opening_balance"`
	ClosingBalance string          `json:"closing_balance"`
	TotalCredit    string          `json:"total_credit"`
	TotalDebit     string          `json:"total_debit"`
	Entries        []EntryResponse `json:"entries"`
	Total          int64           `json:"total"`
	Page           int             `json:"page"`
	Limit          int             `json:"limit"`
	TotalPages     int             `json:"total_pages"`
}

// ToAccountResponse converts an Account entity to its API representation.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:             account.ID.String(),
		Title:          account.Title,
		Slug:           account.Slug,
		InitialBalance: account.InitialBalance.String(),
		CurrentBalance: account.CurrentBalance.String(),
		Currency:       account.Currency,
		CurrencySymbol: account.CurrencySymbol,
		CreatedAt:      account.CreatedAt,
	}
}

// ToEntryResponse converts a LedgerEntry entity to its API representation.
func ToEntryResponse(entry *entity.LedgerEntry) EntryResponse {
	resp := EntryResponse{
		ID:          entry.ID.String(),
		AccountID:   entry.AccountID.String(),
		Date:        entry.Date,
		Details:     entry.Details,
		Credit:      entry.Credit.String(),
		Debit:       entry.Debit.String(),
		Destination: entry.Destination,
		CreatedAt:   entry.CreatedAt,
	}
	if entry.RateOfExchange != nil {
		rate := entry.RateOfExchange.String()
		resp.RateOfExchange = &rate
	}
	return resp
}

// ToStatementEntryResponse converts an annotated statement entry to its API
// representation.
func ToStatementEntryResponse(e statement.EntryWithBalance) EntryResponse {
	resp := ToEntryResponse(&e.Entry)
	resp.RunningBalance = e.RunningBalance.String()
	return resp
}
