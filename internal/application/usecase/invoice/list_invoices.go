package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// ListInvoicesInput represents the input for the invoice listing.
type ListInvoicesInput struct {
	Scope     adapter.OwnerScope
	CompanyID *uuid.UUID
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Page      int
	Limit     int
}

// ListInvoicesOutput represents the output of the invoice listing.
type ListInvoicesOutput struct {
	Invoices   []entity.Invoice
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListInvoicesUseCase handles the invoice listing.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo}
}

// Execute lists invoices newest first.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}

	filter := adapter.InvoiceFilter{
		CompanyID: input.CompanyID,
		Status:    input.Status,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Search:    input.Search,
	}
	invoices, total, err := uc.invoiceRepo.List(ctx, input.Scope, filter, adapter.Pagination{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	return &ListInvoicesOutput{
		Invoices:   invoices,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}
