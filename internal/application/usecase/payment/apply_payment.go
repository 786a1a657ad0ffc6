// Package payment contains invoice payment use cases.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// receiptNumberAttempts bounds the retry loop on receipt number collisions.
const receiptNumberAttempts = 5

// ApplyPaymentInput represents the input for recording a payment.
type ApplyPaymentInput struct {
	Scope     adapter.OwnerScope
	InvoiceID uuid.UUID

	Amount        decimal.Decimal
	PaymentMethod string
	AccountInfo   string
	PaymentDate   time.Time
	Notes         string

	// NotifyEmail, when set, queues a receipt email to this address.
	NotifyEmail string
}

// ApplyPaymentOutput represents the output of recording a payment.
type ApplyPaymentOutput struct {
	Invoice      *entity.Invoice
	Payment      entity.Payment
	Receipt      *entity.Receipt
	ExcessAmount decimal.Decimal
}

// ApplyPaymentUseCase records a payment against an invoice and reconciles
// the client company's balances. The part of the payment that exceeds the
// invoice's remaining balance is recorded as excess and credited to the
// company; the applied part reduces the company's due balance, which is a
// cache clamped at zero.
type ApplyPaymentUseCase struct {
	invoiceRepo  adapter.InvoiceRepository
	companyRepo  adapter.CompanyRepository
	emailService adapter.EmailService
}

// NewApplyPaymentUseCase creates a new ApplyPaymentUseCase instance.
func NewApplyPaymentUseCase(invoiceRepo adapter.InvoiceRepository, companyRepo adapter.CompanyRepository, emailService adapter.EmailService) *ApplyPaymentUseCase {
	return &ApplyPaymentUseCase{
		invoiceRepo:  invoiceRepo,
		companyRepo:  companyRepo,
		emailService: emailService,
	}
}

// Execute performs the payment reconciliation.
func (uc *ApplyPaymentUseCase) Execute(ctx context.Context, input ApplyPaymentInput) (*ApplyPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.ErrInvalidPaymentAmount
	}

	invoice, err := uc.invoiceRepo.FindByID(ctx, input.Scope, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	remaining := invoice.RemainingBalance()
	excess := decimal.Zero
	if input.Amount.GreaterThan(remaining) {
		excess = input.Amount.Sub(remaining)
		if remaining.IsNegative() {
			// Already overpaid: the whole payment is excess.
			excess = input.Amount
		}
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	p := entity.Payment{
		Amount:        input.Amount,
		ExcessAmount:  excess,
		PaymentMethod: input.PaymentMethod,
		AccountInfo:   input.AccountInfo,
		PaymentDate:   paymentDate,
		Notes:         input.Notes,
		RecordedBy:    input.Scope.UserID,
	}
	invoice.Payments = append(invoice.Payments, p)
	invoice.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if err := uc.reconcileCompany(ctx, invoice, p); err != nil {
		return nil, err
	}

	receipt, err := uc.issueReceipt(ctx, invoice, len(invoice.Payments)-1)
	if err != nil {
		return nil, err
	}

	if input.NotifyEmail != "" {
		if err := uc.emailService.QueueReceiptEmail(ctx, receipt, input.NotifyEmail); err != nil {
			// Receipt delivery is best effort; the payment already stands.
			slog.Warn("failed to queue receipt email",
				"receipt_number", receipt.ReceiptNumber,
				"error", err)
		}
	}

	return &ApplyPaymentOutput{
		Invoice:      invoice,
		Payment:      p,
		Receipt:      receipt,
		ExcessAmount: excess,
	}, nil
}

func (uc *ApplyPaymentUseCase) reconcileCompany(ctx context.Context, invoice *entity.Invoice, p entity.Payment) error {
	company, err := uc.companyRepo.FindByNameAndUser(ctx, invoice.UserID, invoice.ClientCompanyName)
	if err != nil {
		if errors.Is(err, domainerror.ErrCompanyNotFound) {
			// No company record to reconcile against. The invoice keeps the
			// payment history either way.
			return nil
		}
		return err
	}

	if p.ExcessAmount.IsPositive() {
		company.AddCredit(p.ExcessAmount)
	}
	company.ReduceDue(p.Applied())

	return uc.companyRepo.Update(ctx, company)
}

// issueReceipt allocates a sequential receipt number and stores the receipt
// snapshot. Number collisions from concurrent writers are retried.
func (uc *ApplyPaymentUseCase) issueReceipt(ctx context.Context, invoice *entity.Invoice, paymentIndex int) (*entity.Receipt, error) {
	day := invoice.Payments[paymentIndex].PaymentDate.UTC()
	prefix := fmt.Sprintf("RCP-%s-", day.Format("20060102"))

	for attempt := 0; attempt < receiptNumberAttempts; attempt++ {
		count, err := uc.invoiceRepo.CountReceiptsByNumberPrefix(ctx, invoice.UserID, prefix)
		if err != nil {
			return nil, err
		}
		number := fmt.Sprintf("%s%03d", prefix, count+1+int64(attempt))

		receipt := entity.NewReceipt(number, invoice, paymentIndex)
		err = uc.invoiceRepo.CreateReceipt(ctx, receipt)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, domainerror.ErrReceiptNumberTaken) {
			return nil, err
		}
	}

	return nil, domainerror.ErrReceiptNumberTaken
}
