package adapter

import (
	"context"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email job persistence.
type EmailQueueRepository interface {
	// Enqueue adds a new email job to the queue.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// DequeueBatch claims up to limit pending jobs that are due for
	// processing and marks them as processing.
	DequeueBatch(ctx context.Context, limit int) ([]entity.EmailJob, error)

	// Update persists status changes made on a job.
	Update(ctx context.Context, job *entity.EmailJob) error
}

// SendEmailInput holds the content of an outgoing email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider response for a sent email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails through a provider.
type EmailSender interface {
	// Send delivers a single email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing domain emails.
type EmailService interface {
	// QueueReceiptEmail queues a receipt notification for delivery.
	QueueReceiptEmail(ctx context.Context, receipt *entity.Receipt, recipientEmail string) error
}
