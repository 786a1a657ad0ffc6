// Package account contains account and ledger entry use cases.
package account

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from an account title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID         uuid.UUID
	Title          string
	InitialBalance decimal.Decimal
	Currency       string
	CurrencySymbol string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account creation. Slugs are derived from the title
// and unique per owner.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	slug := Slugify(input.Title)

	taken, err := uc.accountRepo.ExistsBySlug(ctx, input.UserID, slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerror.ErrAccountSlugTaken
	}

	account := entity.NewAccount(input.UserID, strings.TrimSpace(input.Title), slug, input.Currency, input.CurrencySymbol, input.InitialBalance)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return &CreateAccountOutput{Account: account}, nil
}
