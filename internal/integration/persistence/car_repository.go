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

// carRepository implements the adapter.CarRepository interface.
type carRepository struct {
	db *gorm.DB
}

// NewCarRepository creates a new car repository instance.
func NewCarRepository(db *gorm.DB) adapter.CarRepository {
	return &carRepository{db: db}
}

// Create creates a new car in the database.
func (r *carRepository) Create(ctx context.Context, car *entity.Car) error {
	carModel := model.CarModelFromEntity(car)
	return r.db.WithContext(ctx).Create(carModel).Error
}

// CreateBatch creates several cars in one transaction.
func (r *carRepository) CreateBatch(ctx context.Context, cars []entity.Car) error {
	if len(cars) == 0 {
		return nil
	}

	carModels := make([]model.CarModel, len(cars))
	for i := range cars {
		carModels[i] = *model.CarModelFromEntity(&cars[i])
	}
	return r.db.WithContext(ctx).Create(&carModels).Error
}

// FindByID retrieves a car by its ID.
func (r *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	var carModel model.CarModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&carModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCarNotFound
		}
		return nil, result.Error
	}
	return carModel.ToEntity(), nil
}

// FindByCarrier retrieves all cars of a carrier.
func (r *carRepository) FindByCarrier(ctx context.Context, carrierID uuid.UUID) ([]entity.Car, error) {
	var carModels []model.CarModel
	result := r.db.WithContext(ctx).
		Where("carrier_id = ?", carrierID).
		Order("date ASC, created_at ASC").
		Find(&carModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cars := make([]entity.Car, len(carModels))
	for i, cm := range carModels {
		cars[i] = *cm.ToEntity()
	}
	return cars, nil
}

// Update updates an existing car.
func (r *carRepository) Update(ctx context.Context, car *entity.Car) error {
	carModel := model.CarModelFromEntity(car)
	result := r.db.WithContext(ctx).Model(&model.CarModel{}).
		Where("id = ?", car.ID).
		Select("*").Omit("id", "created_at").
		Updates(carModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCarNotFound
	}
	return nil
}

// Delete removes a car.
func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CarModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCarNotFound
	}
	return nil
}
