// Package company contains client-company use cases.
package company

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// CreateCompanyInput represents the input for company creation.
type CreateCompanyInput struct {
	UserID  uuid.UUID
	Name    string
	Address string
}

// CreateCompanyOutput represents the output of company creation.
type CreateCompanyOutput struct {
	Company *entity.Company
}

// CreateCompanyUseCase handles company creation logic.
type CreateCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
}

// NewCreateCompanyUseCase creates a new CreateCompanyUseCase instance.
func NewCreateCompanyUseCase(companyRepo adapter.CompanyRepository) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{companyRepo: companyRepo}
}

// Execute performs the company creation. Names are unique per owner.
func (uc *CreateCompanyUseCase) Execute(ctx context.Context, input CreateCompanyInput) (*CreateCompanyOutput, error) {
	company := entity.NewCompany(input.UserID, input.Name, input.Address)

	existing, err := uc.companyRepo.FindByNameAndUser(ctx, input.UserID, company.Name)
	if err != nil && !errors.Is(err, domainerror.ErrCompanyNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerror.ErrCompanyNameTaken
	}

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return &CreateCompanyOutput{Company: company}, nil
}
