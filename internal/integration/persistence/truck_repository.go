package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
	"github.com/freight-ledger/backend/internal/integration/persistence/model"
)

// truckRepository implements the adapter.TruckRepository interface.
type truckRepository struct {
	db *gorm.DB
}

// NewTruckRepository creates a new truck repository instance.
func NewTruckRepository(db *gorm.DB) adapter.TruckRepository {
	return &truckRepository{db: db}
}

// Create creates a new truck in the database.
func (r *truckRepository) Create(ctx context.Context, truck *entity.Truck) error {
	truckModel := model.TruckModelFromEntity(truck)
	err := r.db.WithContext(ctx).Create(truckModel).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrTruckNumberTaken
	}
	return err
}

// FindByID retrieves a truck by its ID, scoped to the caller.
func (r *truckRepository) FindByID(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) (*entity.Truck, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var truckModel model.TruckModel
	result := query.First(&truckModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTruckNotFound
		}
		return nil, result.Error
	}
	return truckModel.ToEntity(), nil
}

// ExistsByNumber checks whether a truck number is taken by the owner.
func (r *truckRepository) ExistsByNumber(ctx context.Context, userID uuid.UUID, truckNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TruckModel{}).
		Where("user_id = ? AND number = ?", userID, truckNumber).
		Count(&count).Error
	return count > 0, err
}

// List retrieves all trucks visible to the caller.
func (r *truckRepository) List(ctx context.Context, scope adapter.OwnerScope) ([]entity.Truck, error) {
	query := r.db.WithContext(ctx)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var truckModels []model.TruckModel
	result := query.Order("created_at ASC").Find(&truckModels)
	if result.Error != nil {
		return nil, result.Error
	}

	trucks := make([]entity.Truck, len(truckModels))
	for i, tm := range truckModels {
		trucks[i] = *tm.ToEntity()
	}
	return trucks, nil
}

// Update updates an existing truck.
func (r *truckRepository) Update(ctx context.Context, truck *entity.Truck) error {
	truckModel := model.TruckModelFromEntity(truck)
	result := r.db.WithContext(ctx).Model(&model.TruckModel{}).
		Where("id = ?", truck.ID).
		Select("*").Omit("id", "created_at").
		Updates(truckModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTruckNotFound
	}
	return nil
}

// Delete removes a truck.
func (r *truckRepository) Delete(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) error {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	result := query.Delete(&model.TruckModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTruckNotFound
	}
	return nil
}
