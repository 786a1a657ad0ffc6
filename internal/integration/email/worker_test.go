package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
	"github.com/freight-ledger/backend/internal/integration/email/templates"
)

type fakeQueue struct {
	jobs    []*entity.EmailJob
	updates []*entity.EmailJob
}

func (q *fakeQueue) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) DequeueBatch(ctx context.Context, limit int) ([]entity.EmailJob, error) {
	out := make([]entity.EmailJob, 0, limit)
	for _, j := range q.jobs {
		if len(out) == limit {
			break
		}
		if j.Status == entity.EmailStatusPending {
			j.MarkProcessing()
			out = append(out, *j)
		}
	}
	return out, nil
}

func (q *fakeQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	copied := *job
	q.updates = append(q.updates, &copied)
	for i, j := range q.jobs {
		if j.ID == job.ID {
			q.jobs[i] = &copied
		}
	}
	return nil
}

type fakeSender struct {
	sent     []adapter.SendEmailInput
	failWith error
}

func (s *fakeSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: "re_123"}, nil
}

func receiptJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateReceiptIssued,
		"client@example.com",
		"ACME HAULAGE",
		"Payment receipt RCP-20240215-001 for invoice INV-20240201-003",
		map[string]interface{}{
			"receipt_number": "RCP-20240215-001",
			"invoice_number": "INV-20240201-003",
			"sender_company": "NORTHERN FREIGHT",
			"client_company": "ACME HAULAGE",
			"amount":         "1500.00",
			"excess_amount":  "0.00",
			"payment_method": "bank_transfer",
			"payment_date":   "15 Feb 2024",
		},
	)
}

func newTestWorker(t *testing.T, queue *fakeQueue, sender *fakeSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorkerProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("sends pending job and marks it sent", func(t *testing.T) {
		queue := &fakeQueue{jobs: []*entity.EmailJob{receiptJob()}}
		sender := &fakeSender{}
		worker := newTestWorker(t, queue, sender)

		worker.processBatch(ctx)

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email sent, got %d", len(sender.sent))
		}
		if sender.sent[0].To != "client@example.com" {
			t.Errorf("unexpected recipient %q", sender.sent[0].To)
		}
		if !strings.Contains(sender.sent[0].HTML, "RCP-20240215-001") {
			t.Error("rendered HTML should contain the receipt number")
		}
		if !strings.Contains(sender.sent[0].Text, "INV-20240201-003") {
			t.Error("rendered text should contain the invoice number")
		}

		final := queue.jobs[0]
		if final.Status != entity.EmailStatusSent {
			t.Errorf("expected status sent, got %s", final.Status)
		}
		if final.ResendID != "re_123" {
			t.Errorf("expected resend id recorded, got %q", final.ResendID)
		}
	})

	t.Run("temporary failure schedules a retry", func(t *testing.T) {
		queue := &fakeQueue{jobs: []*entity.EmailJob{receiptJob()}}
		sender := &fakeSender{
			failWith: domainerror.NewEmailError(
				domainerror.ErrCodeTemporaryEmailFailure,
				"temporary email failure",
				errors.New("429 too many requests"),
			),
		}
		worker := newTestWorker(t, queue, sender)

		worker.processBatch(ctx)

		final := queue.jobs[0]
		if final.Status != entity.EmailStatusPending {
			t.Fatalf("expected status pending for retry, got %s", final.Status)
		}
		if final.Attempts != 1 {
			t.Errorf("expected 1 attempt recorded, got %d", final.Attempts)
		}
	})

	t.Run("permanent failure marks the job failed", func(t *testing.T) {
		queue := &fakeQueue{jobs: []*entity.EmailJob{receiptJob()}}
		sender := &fakeSender{
			failWith: domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				errors.New("422 validation error"),
			),
		}
		worker := newTestWorker(t, queue, sender)

		worker.processBatch(ctx)

		final := queue.jobs[0]
		if final.Status != entity.EmailStatusFailed {
			t.Fatalf("expected status failed, got %s", final.Status)
		}
	})

	t.Run("unknown template is a permanent failure", func(t *testing.T) {
		job := receiptJob()
		job.TemplateType = entity.EmailTemplateType("no_such_template")
		queue := &fakeQueue{jobs: []*entity.EmailJob{job}}
		sender := &fakeSender{}
		worker := newTestWorker(t, queue, sender)

		worker.processBatch(ctx)

		if len(sender.sent) != 0 {
			t.Fatal("nothing should have been sent")
		}
		if queue.jobs[0].Status != entity.EmailStatusFailed {
			t.Fatalf("expected status failed, got %s", queue.jobs[0].Status)
		}
	})
}
