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

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{db: db}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountModelFromEntity(account)
	err := r.db.WithContext(ctx).Create(accountModel).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrAccountSlugTaken
	}
	return err
}

// FindByID retrieves an account by its ID, scoped to the caller.
func (r *accountRepository) FindByID(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) (*entity.Account, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var accountModel model.AccountModel
	result := query.First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindBySlug retrieves an account by its slug, scoped to the caller.
func (r *accountRepository) FindBySlug(ctx context.Context, scope adapter.OwnerScope, slug string) (*entity.Account, error) {
	query := r.db.WithContext(ctx).Where("slug = ?", slug)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var accountModel model.AccountModel
	result := query.First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// ExistsBySlug checks whether a slug is already taken by the owner.
func (r *accountRepository) ExistsBySlug(ctx context.Context, userID uuid.UUID, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("user_id = ? AND slug = ?", userID, slug).
		Count(&count).Error
	return count > 0, err
}

// List retrieves all accounts visible to the caller.
func (r *accountRepository) List(ctx context.Context, scope adapter.OwnerScope) ([]entity.Account, error) {
	query := r.db.WithContext(ctx)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var accountModels []model.AccountModel
	result := query.Order("created_at ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = *am.ToEntity()
	}
	return accounts, nil
}

// Update updates an existing account.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountModelFromEntity(account)
	result := r.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Select("*").Omit("id", "created_at").
		Updates(accountModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// Delete removes an account and its entries.
func (r *accountRepository) Delete(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("id = ?", id)
		if !scope.SuperAdmin {
			query = query.Where("user_id = ?", scope.UserID)
		}

		result := query.Delete(&model.AccountModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrAccountNotFound
		}

		return tx.Where("account_id = ?", id).Delete(&model.LedgerEntryModel{}).Error
	})
}

// CreateEntry inserts a ledger entry and shifts the account's current
// balance by the entry's net amount in the same transaction.
func (r *accountRepository) CreateEntry(ctx context.Context, entry *entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entryModel := model.LedgerEntryModelFromEntity(entry)
		if err := tx.Create(entryModel).Error; err != nil {
			return err
		}

		return tx.Model(&model.AccountModel{}).
			Where("id = ?", entry.AccountID).
			Updates(map[string]interface{}{
				"current_balance": gorm.Expr("current_balance + ?", entry.Net()),
				"updated_at":      time.Now().UTC(),
			}).Error
	})
}

// DeleteEntry removes a ledger entry and reverses its net amount from the
// account's current balance in the same transaction.
func (r *accountRepository) DeleteEntry(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entryModel model.LedgerEntryModel
		query := tx.Where("ledger_entries.id = ?", id)
		if !scope.SuperAdmin {
			query = query.Joins("JOIN accounts ON accounts.id = ledger_entries.account_id").
				Where("accounts.user_id = ?", scope.UserID)
		}
		if err := query.First(&entryModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrLedgerEntryNotFound
			}
			return err
		}

		if err := tx.Where("id = ?", entryModel.ID).Delete(&model.LedgerEntryModel{}).Error; err != nil {
			return err
		}

		net := entryModel.Credit.Sub(entryModel.Debit)
		return tx.Model(&model.AccountModel{}).
			Where("id = ?", entryModel.AccountID).
			Updates(map[string]interface{}{
				"current_balance": gorm.Expr("current_balance - ?", net),
				"updated_at":      time.Now().UTC(),
			}).Error
	})
}

// FindEntriesThrough retrieves all entries of an account dated on or before
// end, ordered by date then creation time ascending.
func (r *accountRepository) FindEntriesThrough(ctx context.Context, accountID uuid.UUID, end time.Time) ([]entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND date <= ?", accountID, end).
		Order("date ASC, created_at ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = *em.ToEntity()
	}
	return entries, nil
}

// FindEntriesPage retrieves a page of entries for an account with optional
// filtering, newest first, along with the total count.
func (r *accountRepository) FindEntriesPage(ctx context.Context, accountID uuid.UUID, filter adapter.LedgerEntryFilter, pagination adapter.Pagination) ([]entity.LedgerEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.LedgerEntryModel{}).
		Where("account_id = ?", accountID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(details) LIKE ?", pattern)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entryModels []model.LedgerEntryModel
	result := query.
		Order("date DESC, created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	entries := make([]entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = *em.ToEntity()
	}
	return entries, total, nil
}
