package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// InvoiceFilter defines filtering options for invoice queries.
type InvoiceFilter struct {
	CompanyID *uuid.UUID
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// InvoiceRepository defines the interface for invoice, payment and receipt
// persistence operations.
type InvoiceRepository interface {
	// Create creates a new invoice with its payments.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// FindByID retrieves an invoice with its payments, scoped to the caller.
	FindByID(ctx context.Context, scope OwnerScope, id uuid.UUID) (*entity.Invoice, error)

	// List retrieves a page of invoices with optional filtering, newest
	// first, along with the total count.
	List(ctx context.Context, scope OwnerScope, filter InvoiceFilter, pagination Pagination) ([]entity.Invoice, int64, error)

	// Update persists invoice changes together with its payments.
	Update(ctx context.Context, invoice *entity.Invoice) error

	// Delete removes an invoice and its payments.
	Delete(ctx context.Context, scope OwnerScope, id uuid.UUID) error

	// CountByNumberPrefix returns how many invoice numbers start with the
	// given prefix, used to allocate sequential numbers.
	CountByNumberPrefix(ctx context.Context, userID uuid.UUID, prefix string) (int64, error)

	// CreateReceipt creates a receipt.
	CreateReceipt(ctx context.Context, receipt *entity.Receipt) error

	// FindReceiptByID retrieves a receipt by ID, scoped to the caller.
	FindReceiptByID(ctx context.Context, scope OwnerScope, id uuid.UUID) (*entity.Receipt, error)

	// ListReceiptsByInvoice retrieves all receipts of an invoice.
	ListReceiptsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Receipt, error)

	// UpdateReceipt updates an existing receipt.
	UpdateReceipt(ctx context.Context, receipt *entity.Receipt) error

	// CountReceiptsByNumberPrefix returns how many receipt numbers start
	// with the given prefix.
	CountReceiptsByNumberPrefix(ctx context.Context, userID uuid.UUID, prefix string) (int64, error)
}
