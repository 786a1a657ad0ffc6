package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CreateEntryInput represents the input for ledger entry creation.
type CreateEntryInput struct {
	Scope     adapter.OwnerScope
	AccountID uuid.UUID

	Date           time.Time
	Details        string
	Credit         decimal.Decimal
	Debit          decimal.Decimal
	Destination    string
	RateOfExchange *decimal.Decimal
}

// CreateEntryOutput represents the output of ledger entry creation.
type CreateEntryOutput struct {
	Entry *entity.LedgerEntry
}

// CreateEntryUseCase records a ledger entry against an account. The
// account's current balance shifts by credit - debit atomically with the
// insert.
type CreateEntryUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(accountRepo adapter.AccountRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{accountRepo: accountRepo}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.Scope, input.AccountID)
	if err != nil {
		return nil, err
	}

	entry := entity.NewLedgerEntry(account.ID, input.Date, input.Details, input.Credit, input.Debit)
	entry.Destination = input.Destination
	entry.RateOfExchange = input.RateOfExchange

	if err := uc.accountRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	return &CreateEntryOutput{Entry: entry}, nil
}
