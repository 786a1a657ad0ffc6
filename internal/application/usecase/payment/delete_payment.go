package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// DeletePaymentInput represents the input for payment deletion.
type DeletePaymentInput struct {
	Scope        adapter.OwnerScope
	InvoiceID    uuid.UUID
	PaymentIndex int
}

// DeletePaymentOutput represents the output of payment deletion.
type DeletePaymentOutput struct {
	Invoice *entity.Invoice
}

// DeletePaymentUseCase removes a recorded payment and reverses its effect on
// the client company's balances.
type DeletePaymentUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	companyRepo adapter.CompanyRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(invoiceRepo adapter.InvoiceRepository, companyRepo adapter.CompanyRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{invoiceRepo: invoiceRepo, companyRepo: companyRepo}
}

// Execute removes the payment at the given index.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) (*DeletePaymentOutput, error) {
	invoice, err := uc.invoiceRepo.FindByID(ctx, input.Scope, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	if input.PaymentIndex < 0 || input.PaymentIndex >= len(invoice.Payments) {
		return nil, domainerror.ErrPaymentNotFound
	}
	removed := invoice.Payments[input.PaymentIndex]

	invoice.Payments = append(invoice.Payments[:input.PaymentIndex], invoice.Payments[input.PaymentIndex+1:]...)
	invoice.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if err := uc.reverseCompany(ctx, invoice, removed); err != nil {
		return nil, err
	}

	return &DeletePaymentOutput{Invoice: invoice}, nil
}

// reverseCompany undoes the balance reconciliation the payment caused. The
// credit balance never drops below zero even if it was adjusted manually in
// between.
func (uc *DeletePaymentUseCase) reverseCompany(ctx context.Context, invoice *entity.Invoice, removed entity.Payment) error {
	company, err := uc.companyRepo.FindByNameAndUser(ctx, invoice.UserID, invoice.ClientCompanyName)
	if err != nil {
		if errors.Is(err, domainerror.ErrCompanyNotFound) {
			return nil
		}
		return err
	}

	if removed.ExcessAmount.IsPositive() {
		company.CreditBalance = company.CreditBalance.Sub(removed.ExcessAmount)
		if company.CreditBalance.IsNegative() {
			company.CreditBalance = decimal.Zero
		}
	}
	company.AddDue(removed.Applied())

	return uc.companyRepo.Update(ctx, company)
}
