package company

import (
	"context"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// ListCompaniesInput represents the input for the company listing.
type ListCompaniesInput struct {
	Scope  adapter.OwnerScope
	Search string
}

// ListCompaniesOutput represents the output of the company listing.
type ListCompaniesOutput struct {
	Companies []entity.Company
}

// ListCompaniesUseCase handles the company listing.
type ListCompaniesUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewListCompaniesUseCase creates a new ListCompaniesUseCase instance.
func NewListCompaniesUseCase(companyRepo adapter.CompanyRepository) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo}
}

// Execute lists the caller's companies.
func (uc *ListCompaniesUseCase) Execute(ctx context.Context, input ListCompaniesInput) (*ListCompaniesOutput, error) {
	companies, err := uc.companyRepo.List(ctx, input.Scope, input.Search)
	if err != nil {
		return nil, err
	}
	return &ListCompaniesOutput{Companies: companies}, nil
}
