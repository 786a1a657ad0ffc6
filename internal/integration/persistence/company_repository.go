package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
	"github.com/freight-ledger/backend/internal/integration/persistence/model"
)

// companyRepository implements the adapter.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance.
func NewCompanyRepository(db *gorm.DB) adapter.CompanyRepository {
	return &companyRepository{db: db}
}

// Create creates a new company in the database.
func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyModel := model.CompanyModelFromEntity(company)
	err := r.db.WithContext(ctx).Create(companyModel).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrCompanyNameTaken
	}
	return err
}

// FindByID retrieves a company by its ID, scoped to the caller.
func (r *companyRepository) FindByID(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) (*entity.Company, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var companyModel model.CompanyModel
	result := query.First(&companyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCompanyNotFound
		}
		return nil, result.Error
	}
	return companyModel.ToEntity(), nil
}

// FindByNameAndUser retrieves a company by name for a given owner. Names are
// stored uppercase, so matching is case-insensitive by construction.
func (r *companyRepository) FindByNameAndUser(ctx context.Context, userID uuid.UUID, name string) (*entity.Company, error) {
	var companyModel model.CompanyModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, strings.ToUpper(strings.TrimSpace(name))).
		First(&companyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCompanyNotFound
		}
		return nil, result.Error
	}
	return companyModel.ToEntity(), nil
}

// List retrieves all companies visible to the caller.
func (r *companyRepository) List(ctx context.Context, scope adapter.OwnerScope, search string) ([]entity.Company, error) {
	query := r.db.WithContext(ctx)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+strings.ToUpper(search)+"%")
	}

	var companyModels []model.CompanyModel
	result := query.Order("name ASC").Find(&companyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	companies := make([]entity.Company, len(companyModels))
	for i, cm := range companyModels {
		companies[i] = *cm.ToEntity()
	}
	return companies, nil
}

// Update updates an existing company.
func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	companyModel := model.CompanyModelFromEntity(company)
	result := r.db.WithContext(ctx).Model(&model.CompanyModel{}).
		Where("id = ?", company.ID).
		Select("*").Omit("id", "created_at").
		Updates(companyModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCompanyNotFound
	}
	return nil
}

// Delete removes a company.
func (r *companyRepository) Delete(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) error {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	result := query.Delete(&model.CompanyModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCompanyNotFound
	}
	return nil
}
