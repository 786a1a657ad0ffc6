package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// LedgerEntryFilter defines filtering options for ledger entry queries.
type LedgerEntryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// AccountRepository defines the interface for account and ledger entry
// persistence operations.
type AccountRepository interface {
	// Create creates a new account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by ID, scoped to the caller.
	FindByID(ctx context.Context, scope OwnerScope, id uuid.UUID) (*entity.Account, error)

	// FindBySlug retrieves an account by its slug, scoped to the caller.
	FindBySlug(ctx context.Context, scope OwnerScope, slug string) (*entity.Account, error)

	// ExistsBySlug checks whether a slug is already taken by the owner.
	ExistsBySlug(ctx context.Context, userID uuid.UUID, slug string) (bool, error)

	// List retrieves all accounts visible to the caller.
	List(ctx context.Context, scope OwnerScope) ([]entity.Account, error)

	// Update updates an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account and its entries.
	Delete(ctx context.Context, scope OwnerScope, id uuid.UUID) error

	// CreateEntry inserts a ledger entry and shifts the account's current
	// balance by the entry's net amount in the same transaction.
	CreateEntry(ctx context.Context, entry *entity.LedgerEntry) error

	// DeleteEntry removes a ledger entry and reverses its net amount from
	// the account's current balance in the same transaction.
	DeleteEntry(ctx context.Context, scope OwnerScope, id uuid.UUID) error

	// FindEntriesThrough retrieves all entries of an account dated on or
	// before end, ordered by date then creation time ascending.
	FindEntriesThrough(ctx context.Context, accountID uuid.UUID, end time.Time) ([]entity.LedgerEntry, error)

	// FindEntriesPage retrieves a page of entries for an account with
	// optional filtering, newest first, along with the total count.
	FindEntriesPage(ctx context.Context, accountID uuid.UUID, filter LedgerEntryFilter, pagination Pagination) ([]entity.LedgerEntry, int64, error)
}
