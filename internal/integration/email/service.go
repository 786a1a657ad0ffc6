package email

import (
	"context"
	"fmt"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{queue: queue}
}

// QueueReceiptEmail queues a payment receipt email for the client.
func (s *Service) QueueReceiptEmail(ctx context.Context, receipt *entity.Receipt, recipientEmail string) error {
	subject := fmt.Sprintf("Payment receipt %s for invoice %s", receipt.ReceiptNumber, receipt.InvoiceNumber)

	templateData := map[string]interface{}{
		"receipt_number": receipt.ReceiptNumber,
		"invoice_number": receipt.InvoiceNumber,
		"sender_company": receipt.SenderCompanyName,
		"client_company": receipt.ClientCompanyName,
		"amount":         receipt.Amount.StringFixed(2),
		"excess_amount":  receipt.ExcessAmount.StringFixed(2),
		"payment_method": receipt.PaymentMethod,
		"payment_date":   receipt.PaymentDate.Format("02 Jan 2006"),
	}

	job := entity.NewEmailJob(
		entity.TemplateReceiptIssued,
		recipientEmail,
		receipt.ClientCompanyName,
		subject,
		templateData,
	)

	if err := s.queue.Enqueue(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue receipt email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
