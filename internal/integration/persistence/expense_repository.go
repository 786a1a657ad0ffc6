package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
	"github.com/freight-ledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseModelFromEntity(expense)
	return r.db.WithContext(ctx).Create(expenseModel).Error
}

// FindByID retrieves an expense by its ID, scoped to the caller.
func (r *expenseRepository) FindByID(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) (*entity.Expense, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var expenseModel model.ExpenseModel
	result := query.First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// List retrieves a page of expenses with optional filtering, newest first,
// along with the total count.
func (r *expenseRepository) List(ctx context.Context, scope adapter.OwnerScope, filter adapter.ExpenseFilter, pagination adapter.Pagination) ([]entity.Expense, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	if filter.Scope != nil {
		query = query.Where("scope = ?", string(*filter.Scope))
	}
	if filter.CarrierID != nil {
		query = query.Where("carrier_id = ?", *filter.CarrierID)
	}
	if filter.TruckID != nil {
		query = query.Where("truck_id = ?", *filter.TruckID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenseModels []model.ExpenseModel
	result := query.
		Order("date DESC, created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	expenses := make([]entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = *em.ToEntity()
	}
	return expenses, total, nil
}

// SumByCarrier returns the expense total of a carrier.
func (r *expenseRepository) SumByCarrier(ctx context.Context, carrierID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).
		Select("SUM(amount)").
		Where("carrier_id = ?", carrierID).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// Update updates an existing expense.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseModelFromEntity(expense)
	result := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Select("*").Omit("id", "created_at").
		Updates(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense.
func (r *expenseRepository) Delete(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) error {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	result := query.Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}
