package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
	receipts []*entity.Receipt
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, scope adapter.OwnerScope, id uuid.UUID) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, domainerror.ErrInvoiceNotFound
	}
	if !scope.SuperAdmin && inv.UserID != scope.UserID {
		return nil, domainerror.ErrInvoiceNotFound
	}
	cp := *inv
	cp.Payments = append([]entity.Payment(nil), inv.Payments...)
	return &cp, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, _ adapter.OwnerScope, _ adapter.InvoiceFilter, _ adapter.Pagination) ([]entity.Invoice, int64, error) {
	return nil, 0, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, _ adapter.OwnerScope, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) CountByNumberPrefix(_ context.Context, _ uuid.UUID, _ string) (int64, error) {
	return 0, nil
}

func (r *fakeInvoiceRepo) CreateReceipt(_ context.Context, receipt *entity.Receipt) error {
	for _, existing := range r.receipts {
		if existing.ReceiptNumber == receipt.ReceiptNumber {
			return domainerror.ErrReceiptNumberTaken
		}
	}
	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *fakeInvoiceRepo) FindReceiptByID(_ context.Context, _ adapter.OwnerScope, _ uuid.UUID) (*entity.Receipt, error) {
	return nil, domainerror.ErrReceiptNotFound
}

func (r *fakeInvoiceRepo) ListReceiptsByInvoice(_ context.Context, _ uuid.UUID) ([]entity.Receipt, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) UpdateReceipt(_ context.Context, _ *entity.Receipt) error {
	return nil
}

func (r *fakeInvoiceRepo) CountReceiptsByNumberPrefix(_ context.Context, _ uuid.UUID, prefix string) (int64, error) {
	var n int64
	for _, existing := range r.receipts {
		if len(existing.ReceiptNumber) >= len(prefix) && existing.ReceiptNumber[:len(prefix)] == prefix {
			n++
		}
	}
	return n, nil
}

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, _ adapter.OwnerScope, id uuid.UUID) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, domainerror.ErrCompanyNotFound
	}
	return c, nil
}

func (r *fakeCompanyRepo) FindByNameAndUser(_ context.Context, userID uuid.UUID, name string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.UserID == userID && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domainerror.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) List(_ context.Context, _ adapter.OwnerScope, _ string) ([]entity.Company, error) {
	return nil, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, _ adapter.OwnerScope, id uuid.UUID) error {
	delete(r.companies, id)
	return nil
}

type noopEmailService struct{ queued int }

func (s *noopEmailService) QueueReceiptEmail(_ context.Context, _ *entity.Receipt, _ string) error {
	s.queued++
	return nil
}

func seedInvoice(t *testing.T, repo *fakeInvoiceRepo, userID uuid.UUID, total int64) *entity.Invoice {
	t.Helper()
	inv := entity.NewInvoice(
		userID, "INV-20240115-001",
		"FREIGHT CO", "Industrial Zone 4", "ACME MOTORS",
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC),
		nil, decimal.NewFromInt(total), decimal.Zero, nil,
	)
	if err := repo.Create(context.Background(), inv); err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return inv
}

func seedCompany(t *testing.T, repo *fakeCompanyRepo, userID uuid.UUID, due int64) *entity.Company {
	t.Helper()
	c := entity.NewCompany(userID, "ACME MOTORS", "")
	c.DueBalance = decimal.NewFromInt(due)
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return c
}

func TestApplyPayment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	scope := adapter.OwnerScope{UserID: userID}

	t.Run("exact payment settles invoice and reduces due", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		companyRepo := newFakeCompanyRepo()
		inv := seedInvoice(t, invoiceRepo, userID, 1000)
		company := seedCompany(t, companyRepo, userID, 1000)

		uc := NewApplyPaymentUseCase(invoiceRepo, companyRepo, &noopEmailService{})
		out, err := uc.Execute(ctx, ApplyPaymentInput{
			Scope:     scope,
			InvoiceID: inv.ID,
			Amount:    decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}

		if !out.ExcessAmount.IsZero() {
			t.Errorf("excess = %s, want 0", out.ExcessAmount)
		}
		if !out.Invoice.RemainingBalance().IsZero() {
			t.Errorf("remaining = %s, want 0", out.Invoice.RemainingBalance())
		}
		updated, _ := companyRepo.FindByID(ctx, scope, company.ID)
		if !updated.DueBalance.IsZero() {
			t.Errorf("due balance = %s, want 0", updated.DueBalance)
		}
		if !updated.CreditBalance.IsZero() {
			t.Errorf("credit balance = %s, want 0", updated.CreditBalance)
		}
	})

	t.Run("overpayment diverts excess to company credit", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		companyRepo := newFakeCompanyRepo()
		inv := seedInvoice(t, invoiceRepo, userID, 1000)
		company := seedCompany(t, companyRepo, userID, 1000)

		uc := NewApplyPaymentUseCase(invoiceRepo, companyRepo, &noopEmailService{})
		out, err := uc.Execute(ctx, ApplyPaymentInput{
			Scope:     scope,
			InvoiceID: inv.ID,
			Amount:    decimal.NewFromInt(1300),
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}

		if !out.ExcessAmount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("excess = %s, want 300", out.ExcessAmount)
		}
		if !out.Payment.Applied().Equal(decimal.NewFromInt(1000)) {
			t.Errorf("applied = %s, want 1000", out.Payment.Applied())
		}
		updated, _ := companyRepo.FindByID(ctx, scope, company.ID)
		if !updated.CreditBalance.Equal(decimal.NewFromInt(300)) {
			t.Errorf("credit balance = %s, want 300", updated.CreditBalance)
		}
		if !updated.DueBalance.IsZero() {
			t.Errorf("due balance = %s, want 0", updated.DueBalance)
		}
	})

	t.Run("due balance clamps at zero", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		companyRepo := newFakeCompanyRepo()
		inv := seedInvoice(t, invoiceRepo, userID, 1000)
		company := seedCompany(t, companyRepo, userID, 400)

		uc := NewApplyPaymentUseCase(invoiceRepo, companyRepo, &noopEmailService{})
		if _, err := uc.Execute(ctx, ApplyPaymentInput{
			Scope:     scope,
			InvoiceID: inv.ID,
			Amount:    decimal.NewFromInt(1000),
		}); err != nil {
			t.Fatalf("Execute: %v", err)
		}

		updated, _ := companyRepo.FindByID(ctx, scope, company.ID)
		if !updated.DueBalance.IsZero() {
			t.Errorf("due balance = %s, want clamped to 0", updated.DueBalance)
		}
	})

	t.Run("partial payments accumulate against remaining balance", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		companyRepo := newFakeCompanyRepo()
		inv := seedInvoice(t, invoiceRepo, userID, 1000)
		seedCompany(t, companyRepo, userID, 1000)

		uc := NewApplyPaymentUseCase(invoiceRepo, companyRepo, &noopEmailService{})
		for _, amount := range []int64{400, 400} {
			if _, err := uc.Execute(ctx, ApplyPaymentInput{
				Scope:     scope,
				InvoiceID: inv.ID,
				Amount:    decimal.NewFromInt(amount),
			}); err != nil {
				t.Fatalf("Execute: %v", err)
			}
		}

		out, err := uc.Execute(ctx, ApplyPaymentInput{
			Scope:     scope,
			InvoiceID: inv.ID,
			Amount:    decimal.NewFromInt(300),
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !out.ExcessAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("excess = %s, want 100", out.ExcessAmount)
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		companyRepo := newFakeCompanyRepo()
		inv := seedInvoice(t, invoiceRepo, userID, 1000)

		uc := NewApplyPaymentUseCase(invoiceRepo, companyRepo, &noopEmailService{})
		_, err := uc.Execute(ctx, ApplyPaymentInput{
			Scope:     scope,
			InvoiceID: inv.ID,
			Amount:    decimal.Zero,
		})
		if err != domainerror.ErrInvalidPaymentAmount {
			t.Errorf("err = %v, want ErrInvalidPaymentAmount", err)
		}
	})

	t.Run("issues sequential receipt numbers per day", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		companyRepo := newFakeCompanyRepo()
		inv := seedInvoice(t, invoiceRepo, userID, 1000)
		seedCompany(t, companyRepo, userID, 1000)

		uc := NewApplyPaymentUseCase(invoiceRepo, companyRepo, &noopEmailService{})
		day := time.Date(2024, time.February, 2, 10, 0, 0, 0, time.UTC)
		var numbers []string
		for i := 0; i < 3; i++ {
			out, err := uc.Execute(ctx, ApplyPaymentInput{
				Scope:       scope,
				InvoiceID:   inv.ID,
				Amount:      decimal.NewFromInt(100),
				PaymentDate: day,
			})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			numbers = append(numbers, out.Receipt.ReceiptNumber)
		}

		want := []string{"RCP-20240202-001", "RCP-20240202-002", "RCP-20240202-003"}
		for i, n := range numbers {
			if n != want[i] {
				t.Errorf("receipt number = %s, want %s", n, want[i])
			}
		}
	})

	t.Run("queues receipt email when requested", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		companyRepo := newFakeCompanyRepo()
		inv := seedInvoice(t, invoiceRepo, userID, 1000)
		emails := &noopEmailService{}

		uc := NewApplyPaymentUseCase(invoiceRepo, companyRepo, emails)
		if _, err := uc.Execute(ctx, ApplyPaymentInput{
			Scope:       scope,
			InvoiceID:   inv.ID,
			Amount:      decimal.NewFromInt(100),
			NotifyEmail: "billing@acme.example",
		}); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if emails.queued != 1 {
			t.Errorf("queued emails = %d, want 1", emails.queued)
		}
	})
}

func TestDeletePayment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	scope := adapter.OwnerScope{UserID: userID}

	t.Run("reverses company balances", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		companyRepo := newFakeCompanyRepo()
		inv := seedInvoice(t, invoiceRepo, userID, 1000)
		company := seedCompany(t, companyRepo, userID, 1000)

		apply := NewApplyPaymentUseCase(invoiceRepo, companyRepo, &noopEmailService{})
		if _, err := apply.Execute(ctx, ApplyPaymentInput{
			Scope:     scope,
			InvoiceID: inv.ID,
			Amount:    decimal.NewFromInt(1200),
		}); err != nil {
			t.Fatalf("Execute: %v", err)
		}

		del := NewDeletePaymentUseCase(invoiceRepo, companyRepo)
		out, err := del.Execute(ctx, DeletePaymentInput{
			Scope:        scope,
			InvoiceID:    inv.ID,
			PaymentIndex: 0,
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}

		if len(out.Invoice.Payments) != 0 {
			t.Errorf("payments = %d, want 0", len(out.Invoice.Payments))
		}
		updated, _ := companyRepo.FindByID(ctx, scope, company.ID)
		if !updated.CreditBalance.IsZero() {
			t.Errorf("credit balance = %s, want 0", updated.CreditBalance)
		}
		if !updated.DueBalance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("due balance = %s, want 1000", updated.DueBalance)
		}
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		companyRepo := newFakeCompanyRepo()
		inv := seedInvoice(t, invoiceRepo, userID, 1000)

		del := NewDeletePaymentUseCase(invoiceRepo, companyRepo)
		_, err := del.Execute(ctx, DeletePaymentInput{
			Scope:        scope,
			InvoiceID:    inv.ID,
			PaymentIndex: 2,
		})
		if err != domainerror.ErrPaymentNotFound {
			t.Errorf("err = %v, want ErrPaymentNotFound", err)
		}
	})
}
