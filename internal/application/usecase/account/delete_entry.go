package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
)

// DeleteEntryInput represents the input for ledger entry deletion.
type DeleteEntryInput struct {
	Scope   adapter.OwnerScope
	EntryID uuid.UUID
}

// DeleteEntryUseCase removes a ledger entry and reverses its effect on the
// account's current balance.
type DeleteEntryUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(accountRepo adapter.AccountRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{accountRepo: accountRepo}
}

// Execute performs the entry deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	return uc.accountRepo.DeleteEntry(ctx, input.Scope, input.EntryID)
}
