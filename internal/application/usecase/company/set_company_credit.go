package company

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// SetCompanyCreditInput represents the input for a credit override.
type SetCompanyCreditInput struct {
	Scope         adapter.OwnerScope
	CompanyID     uuid.UUID
	CreditBalance decimal.Decimal
}

// SetCompanyCreditOutput represents the output of a credit override.
type SetCompanyCreditOutput struct {
	Company *entity.Company
}

// SetCompanyCreditUseCase overrides a company's cached credit balance. Used
// for manual corrections when the cache drifts from the invoice history.
type SetCompanyCreditUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewSetCompanyCreditUseCase creates a new SetCompanyCreditUseCase instance.
func NewSetCompanyCreditUseCase(companyRepo adapter.CompanyRepository) *SetCompanyCreditUseCase {
	return &SetCompanyCreditUseCase{companyRepo: companyRepo}
}

// Execute performs the credit override.
func (uc *SetCompanyCreditUseCase) Execute(ctx context.Context, input SetCompanyCreditInput) (*SetCompanyCreditOutput, error) {
	if input.CreditBalance.IsNegative() {
		return nil, domainerror.ErrNegativeCredit
	}

	company, err := uc.companyRepo.FindByID(ctx, input.Scope, input.CompanyID)
	if err != nil {
		return nil, err
	}

	company.CreditBalance = input.CreditBalance
	company.UpdatedAt = time.Now().UTC()

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	return &SetCompanyCreditOutput{Company: company}, nil
}
