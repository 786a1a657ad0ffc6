package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
	"github.com/freight-ledger/backend/internal/integration/persistence/model"
)

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create creates a new invoice with its payments.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceModelFromEntity(invoice)
	err := r.db.WithContext(ctx).Create(invoiceModel).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrInvoiceNumberTaken
	}
	return err
}

// FindByID retrieves an invoice with its payments, scoped to the caller.
func (r *invoiceRepository) FindByID(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) (*entity.Invoice, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var invoiceModel model.InvoiceModel
	result := query.Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// List retrieves a page of invoices with optional filtering, newest first,
// along with the total count.
func (r *invoiceRepository) List(ctx context.Context, scope adapter.OwnerScope, filter adapter.InvoiceFilter, pagination adapter.Pagination) ([]entity.Invoice, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.InvoiceModel{})
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	if filter.CompanyID != nil {
		// Invoices reference companies by denormalized name; resolve it.
		var companyModel model.CompanyModel
		if err := r.db.WithContext(ctx).Select("name").Where("id = ?", *filter.CompanyID).First(&companyModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, domainerror.ErrCompanyNotFound
			}
			return nil, 0, err
		}
		query = query.Where("client_company_name = ?", companyModel.Name)
	}
	if filter.Status != "" {
		query = query.Where("is_active = ?", filter.Status == "active")
	}
	if filter.StartDate != nil {
		query = query.Where("invoice_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("invoice_date <= ?", *filter.EndDate)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(invoice_number) LIKE ? OR LOWER(client_company_name) LIKE ?", pattern, pattern)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoiceModels []model.InvoiceModel
	result := query.
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("invoice_date DESC, created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&invoiceModels)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	invoices := make([]entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = *im.ToEntity()
	}
	return invoices, total, nil
}

// Update persists invoice changes together with its payments. Payments are
// replaced wholesale to keep their positions consistent.
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoiceModel := model.InvoiceModelFromEntity(invoice)

		result := tx.Model(&model.InvoiceModel{}).
			Where("id = ?", invoice.ID).
			Select("*").Omit("id", "created_at", "Payments").
			Updates(invoiceModel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrInvoiceNotFound
		}

		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&model.PaymentModel{}).Error; err != nil {
			return err
		}
		if len(invoiceModel.Payments) > 0 {
			if err := tx.Create(&invoiceModel.Payments).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an invoice and its payments.
func (r *invoiceRepository) Delete(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("id = ?", id)
		if !scope.SuperAdmin {
			query = query.Where("user_id = ?", scope.UserID)
		}

		result := query.Delete(&model.InvoiceModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrInvoiceNotFound
		}

		return tx.Where("invoice_id = ?", id).Delete(&model.PaymentModel{}).Error
	})
}

// CountByNumberPrefix returns how many invoice numbers start with the given
// prefix for the owner.
func (r *invoiceRepository) CountByNumberPrefix(ctx context.Context, userID uuid.UUID, prefix string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.InvoiceModel{}).
		Where("user_id = ? AND invoice_number LIKE ?", userID, prefix+"%").
		Count(&count).Error
	return count, err
}

// CreateReceipt creates a receipt.
func (r *invoiceRepository) CreateReceipt(ctx context.Context, receipt *entity.Receipt) error {
	userID, err := r.invoiceOwner(ctx, receipt.InvoiceID)
	if err != nil {
		return err
	}

	receiptModel := model.ReceiptModelFromEntity(userID, receipt)
	err = r.db.WithContext(ctx).Create(receiptModel).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrReceiptNumberTaken
	}
	return err
}

// FindReceiptByID retrieves a receipt by its ID, scoped to the caller.
func (r *invoiceRepository) FindReceiptByID(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) (*entity.Receipt, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var receiptModel model.ReceiptModel
	result := query.First(&receiptModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReceiptNotFound
		}
		return nil, result.Error
	}
	return receiptModel.ToEntity(), nil
}

// ListReceiptsByInvoice retrieves all receipts of an invoice.
func (r *invoiceRepository) ListReceiptsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Receipt, error) {
	var receiptModels []model.ReceiptModel
	result := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at ASC").
		Find(&receiptModels)
	if result.Error != nil {
		return nil, result.Error
	}

	receipts := make([]entity.Receipt, len(receiptModels))
	for i, rm := range receiptModels {
		receipts[i] = *rm.ToEntity()
	}
	return receipts, nil
}

// UpdateReceipt updates an existing receipt.
func (r *invoiceRepository) UpdateReceipt(ctx context.Context, receipt *entity.Receipt) error {
	result := r.db.WithContext(ctx).Model(&model.ReceiptModel{}).
		Where("id = ?", receipt.ID).
		Updates(map[string]interface{}{
			"status":     string(receipt.Status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrReceiptNotFound
	}
	return nil
}

// CountReceiptsByNumberPrefix returns how many receipt numbers start with
// the given prefix for the owner.
func (r *invoiceRepository) CountReceiptsByNumberPrefix(ctx context.Context, userID uuid.UUID, prefix string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ReceiptModel{}).
		Where("user_id = ? AND receipt_number LIKE ?", userID, prefix+"%").
		Count(&count).Error
	return count, err
}

func (r *invoiceRepository) invoiceOwner(ctx context.Context, invoiceID uuid.UUID) (uuid.UUID, error) {
	var invoiceModel model.InvoiceModel
	err := r.db.WithContext(ctx).Select("user_id").Where("id = ?", invoiceID).First(&invoiceModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domainerror.ErrInvoiceNotFound
		}
		return uuid.Nil, err
	}
	return invoiceModel.UserID, nil
}
