package invoice

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// GetInvoiceInput represents the input for fetching a single invoice.
type GetInvoiceInput struct {
	Scope     adapter.OwnerScope
	InvoiceID uuid.UUID
}

// GetInvoiceOutput represents the output of fetching a single invoice.
type GetInvoiceOutput struct {
	Invoice  *entity.Invoice
	Receipts []entity.Receipt
}

// GetInvoiceUseCase fetches an invoice with its payments and receipts.
type GetInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance.
func NewGetInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Execute fetches the invoice.
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, input GetInvoiceInput) (*GetInvoiceOutput, error) {
	invoice, err := uc.invoiceRepo.FindByID(ctx, input.Scope, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	receipts, err := uc.invoiceRepo.ListReceiptsByInvoice(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}

	return &GetInvoiceOutput{Invoice: invoice, Receipts: receipts}, nil
}
