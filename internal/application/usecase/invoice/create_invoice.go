// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// invoiceNumberAttempts bounds the retry loop on invoice number collisions.
const invoiceNumberAttempts = 5

// CreateInvoiceInput represents the input for invoice creation.
type CreateInvoiceInput struct {
	UserID uuid.UUID

	SenderCompanyName    string
	SenderCompanyAddress string
	ClientCompanyName    string
	InvoiceDate          time.Time
	StartDate            time.Time
	EndDate              time.Time
	CarIDs               []uuid.UUID
	Subtotal             decimal.Decimal
	VATPercentage        decimal.Decimal
	Descriptions         []string
}

// CreateInvoiceOutput represents the output of invoice creation.
type CreateInvoiceOutput struct {
	Invoice *entity.Invoice
}

// CreateInvoiceUseCase handles invoice creation. Creating an invoice adds
// its total to the client company's due balance.
type CreateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	companyRepo adapter.CompanyRepository
}

// NewCreateInvoiceUseCase creates a new CreateInvoiceUseCase instance.
func NewCreateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository, companyRepo adapter.CompanyRepository) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{invoiceRepo: invoiceRepo, companyRepo: companyRepo}
}

// Execute performs the invoice creation with a sequential per-day number.
func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, input CreateInvoiceInput) (*CreateInvoiceOutput, error) {
	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now().UTC()
	}

	invoice, err := uc.createWithNumber(ctx, input, invoiceDate)
	if err != nil {
		return nil, err
	}

	if err := uc.addCompanyDue(ctx, invoice); err != nil {
		return nil, err
	}

	return &CreateInvoiceOutput{Invoice: invoice}, nil
}

func (uc *CreateInvoiceUseCase) createWithNumber(ctx context.Context, input CreateInvoiceInput, invoiceDate time.Time) (*entity.Invoice, error) {
	prefix := fmt.Sprintf("INV-%s-", invoiceDate.UTC().Format("20060102"))

	for attempt := 0; attempt < invoiceNumberAttempts; attempt++ {
		count, err := uc.invoiceRepo.CountByNumberPrefix(ctx, input.UserID, prefix)
		if err != nil {
			return nil, err
		}
		number := fmt.Sprintf("%s%03d", prefix, count+1+int64(attempt))

		invoice := entity.NewInvoice(
			input.UserID, number,
			input.SenderCompanyName, input.SenderCompanyAddress, input.ClientCompanyName,
			invoiceDate, input.StartDate, input.EndDate,
			input.CarIDs, input.Subtotal, input.VATPercentage, input.Descriptions,
		)
		err = uc.invoiceRepo.Create(ctx, invoice)
		if err == nil {
			return invoice, nil
		}
		if !errors.Is(err, domainerror.ErrInvoiceNumberTaken) {
			return nil, err
		}
	}

	return nil, domainerror.ErrInvoiceNumberTaken
}

func (uc *CreateInvoiceUseCase) addCompanyDue(ctx context.Context, invoice *entity.Invoice) error {
	company, err := uc.companyRepo.FindByNameAndUser(ctx, invoice.UserID, invoice.ClientCompanyName)
	if err != nil {
		if errors.Is(err, domainerror.ErrCompanyNotFound) {
			return nil
		}
		return err
	}
	company.AddDue(invoice.TotalAmount)
	return uc.companyRepo.Update(ctx, company)
}
