package account

import (
	"context"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for the account listing.
type ListAccountsInput struct {
	Scope adapter.OwnerScope
}

// ListAccountsOutput represents the output of the account listing.
type ListAccountsOutput struct {
	Accounts []entity.Account
}

// ListAccountsUseCase handles the account listing.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo}
}

// Execute lists the accounts visible to the caller.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.List(ctx, input.Scope)
	if err != nil {
		return nil, err
	}
	return &ListAccountsOutput{Accounts: accounts}, nil
}
