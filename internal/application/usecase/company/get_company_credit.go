package company

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// GetCompanyCreditInput represents the input for the credit computation.
type GetCompanyCreditInput struct {
	Scope     adapter.OwnerScope
	CompanyID uuid.UUID
}

// GetCompanyCreditOutput represents the output of the credit computation.
type GetCompanyCreditOutput struct {
	Company *entity.Company

	// ComputedCredit is derived from overpaid invoices and is the source
	// of truth. CachedCredit is the denormalized balance on the company.
	ComputedCredit decimal.Decimal
	CachedCredit   decimal.Decimal
}

// GetCompanyCreditUseCase derives a company's credit from its invoice
// payment history. An invoice whose remaining balance is negative has been
// overpaid; the sum of those overpayments is the company's credit.
type GetCompanyCreditUseCase struct {
	companyRepo adapter.CompanyRepository
	invoiceRepo adapter.InvoiceRepository
}

// NewGetCompanyCreditUseCase creates a new GetCompanyCreditUseCase instance.
func NewGetCompanyCreditUseCase(companyRepo adapter.CompanyRepository, invoiceRepo adapter.InvoiceRepository) *GetCompanyCreditUseCase {
	return &GetCompanyCreditUseCase{companyRepo: companyRepo, invoiceRepo: invoiceRepo}
}

// Execute computes the company's credit.
func (uc *GetCompanyCreditUseCase) Execute(ctx context.Context, input GetCompanyCreditInput) (*GetCompanyCreditOutput, error) {
	company, err := uc.companyRepo.FindByID(ctx, input.Scope, input.CompanyID)
	if err != nil {
		return nil, err
	}

	computed := decimal.Zero
	page := 1
	for {
		invoices, total, err := uc.invoiceRepo.List(ctx, input.Scope, adapter.InvoiceFilter{CompanyID: &company.ID}, adapter.Pagination{Page: page, Limit: 200})
		if err != nil {
			return nil, err
		}
		for _, inv := range invoices {
			remaining := inv.RemainingBalance()
			if remaining.IsNegative() {
				computed = computed.Add(remaining.Abs())
			}
		}
		if int64(page*200) >= total || len(invoices) == 0 {
			break
		}
		page++
	}

	return &GetCompanyCreditOutput{
		Company:        company,
		ComputedCredit: computed,
		CachedCredit:   company.CreditBalance,
	}, nil
}
