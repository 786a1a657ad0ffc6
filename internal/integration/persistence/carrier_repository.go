// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
	"github.com/freight-ledger/backend/internal/integration/persistence/model"
)

// carrierRepository implements the adapter.CarrierRepository interface.
type carrierRepository struct {
	db *gorm.DB
}

// NewCarrierRepository creates a new carrier repository instance.
func NewCarrierRepository(db *gorm.DB) adapter.CarrierRepository {
	return &carrierRepository{db: db}
}

// Create creates a new carrier in the database.
func (r *carrierRepository) Create(ctx context.Context, carrier *entity.Carrier) error {
	carrierModel := model.CarrierModelFromEntity(carrier)
	return r.db.WithContext(ctx).Create(carrierModel).Error
}

// FindByID retrieves a carrier by its ID, scoped to the caller.
func (r *carrierRepository) FindByID(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) (*entity.Carrier, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	var carrierModel model.CarrierModel
	result := query.First(&carrierModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCarrierNotFound
		}
		return nil, result.Error
	}
	return carrierModel.ToEntity(), nil
}

// ExistsByTripNumber checks whether a trip number is taken by the owner.
func (r *carrierRepository) ExistsByTripNumber(ctx context.Context, userID uuid.UUID, tripNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CarrierModel{}).
		Where("user_id = ? AND trip_number = ?", userID, tripNumber).
		Count(&count).Error
	return count > 0, err
}

// ListWithAggregates retrieves a page of carriers with their matching cars
// and read-time aggregates. When a car-level filter (company and/or date
// range) is present, carriers without at least one matching car are excluded
// entirely, and only the matching cars are attached.
func (r *carrierRepository) ListWithAggregates(ctx context.Context, scope adapter.OwnerScope, filter adapter.CarrierFilter, pagination adapter.Pagination) (*entity.CarrierListResult, error) {
	query := r.applyCarrierFilter(r.db.WithContext(ctx).Model(&model.CarrierModel{}), scope, filter)

	if filter.HasCarFilter() {
		carrierIDs, err := r.matchingCarrierIDs(ctx, scope, filter)
		if err != nil {
			return nil, err
		}
		// A car filter that matches nothing yields an empty page, not
		// "all carriers with zero cars".
		if len(carrierIDs) == 0 {
			return emptyListResult(pagination), nil
		}
		query = query.Where("id IN ?", carrierIDs)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var carrierModels []model.CarrierModel
	result := query.
		Order("date DESC, created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&carrierModels)
	if result.Error != nil {
		return nil, result.Error
	}

	carriers, err := r.enrich(ctx, scope, carrierModels, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return &entity.CarrierListResult{
		Carriers:   carriers,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// applyCarrierFilter applies ownership scoping and the carrier-level filters.
// Both the count and the page query go through here so they can never drift.
func (r *carrierRepository) applyCarrierFilter(query *gorm.DB, scope adapter.OwnerScope, filter adapter.CarrierFilter) *gorm.DB {
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	if filter.Active != nil {
		switch *filter.Active {
		case entity.ActiveStateActive:
			// Legacy rows without a stored flag behave as active.
			query = query.Where("is_active = ? OR is_active IS NULL", true)
		case entity.ActiveStateInactive:
			query = query.Where("is_active = ?", false)
		}
	}

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(trip_number) LIKE ? OR LOWER(name) LIKE ? OR LOWER(carrier_name) LIKE ? OR LOWER(driver_name) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	return query
}

// matchingCarrierIDs computes the distinct parent IDs of cars matching the
// car-level filter, restricted to cars the caller is allowed to see.
func (r *carrierRepository) matchingCarrierIDs(ctx context.Context, scope adapter.OwnerScope, filter adapter.CarrierFilter) ([]uuid.UUID, error) {
	query := r.db.WithContext(ctx).Model(&model.CarModel{}).Distinct("carrier_id")
	if !scope.SuperAdmin {
		query = query.Where("user_id = ?", scope.UserID)
	}
	query = r.applyCarFilter(query, filter)

	var ids []uuid.UUID
	if err := query.Pluck("carrier_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// applyCarFilter applies the car-level filter conditions. Shared between the
// cascade and the car attachment so both see the same car set.
func (r *carrierRepository) applyCarFilter(query *gorm.DB, filter adapter.CarrierFilter) *gorm.DB {
	if filter.Company != "" {
		query = query.Where("UPPER(company_name) = ?", strings.ToUpper(strings.TrimSpace(filter.Company)))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return query
}

// enrich loads each carrier's matching cars and derives the aggregates from
// current child data rather than any cached counter. Cars carry the same
// ownership scoping as the cascade, so a car row owned by someone else can
// never attach to a carrier the cascade would not have matched through.
func (r *carrierRepository) enrich(ctx context.Context, scope adapter.OwnerScope, carrierModels []model.CarrierModel, filter adapter.CarrierFilter) ([]*entity.CarrierWithStats, error) {
	carriers := make([]*entity.CarrierWithStats, 0, len(carrierModels))
	if len(carrierModels) == 0 {
		return carriers, nil
	}

	carrierIDs := make([]uuid.UUID, len(carrierModels))
	for i, cm := range carrierModels {
		carrierIDs[i] = cm.ID
	}

	carQuery := r.db.WithContext(ctx).Where("carrier_id IN ?", carrierIDs)
	if !scope.SuperAdmin {
		carQuery = carQuery.Where("user_id = ?", scope.UserID)
	}
	if filter.HasCarFilter() {
		carQuery = r.applyCarFilter(carQuery, filter)
	}

	var carModels []model.CarModel
	if err := carQuery.Order("date ASC, created_at ASC").Find(&carModels).Error; err != nil {
		return nil, err
	}

	carsByCarrier := make(map[uuid.UUID][]*entity.Car, len(carrierModels))
	for i := range carModels {
		car := carModels[i].ToEntity()
		carsByCarrier[car.CarrierID] = append(carsByCarrier[car.CarrierID], car)
	}

	for i := range carrierModels {
		carrier := carrierModels[i].ToEntity()
		cars := carsByCarrier[carrier.ID]

		totalAmount := decimal.Zero
		for _, car := range cars {
			totalAmount = totalAmount.Add(car.Amount)
		}

		carriers = append(carriers, &entity.CarrierWithStats{
			Carrier:     carrier,
			Cars:        cars,
			CarCount:    len(cars),
			TotalAmount: totalAmount,
			Profit:      totalAmount.Sub(carrier.TotalExpense),
		})
	}

	return carriers, nil
}

func emptyListResult(pagination adapter.Pagination) *entity.CarrierListResult {
	return &entity.CarrierListResult{
		Carriers:   []*entity.CarrierWithStats{},
		Total:      0,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}
}

// Update updates an existing carrier.
func (r *carrierRepository) Update(ctx context.Context, carrier *entity.Carrier) error {
	carrierModel := model.CarrierModelFromEntity(carrier)
	result := r.db.WithContext(ctx).Model(&model.CarrierModel{}).
		Where("id = ?", carrier.ID).
		Select("*").Omit("id", "created_at", "Cars").
		Updates(carrierModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCarrierNotFound
	}
	return nil
}

// Delete removes a carrier and its cars.
func (r *carrierRepository) Delete(ctx context.Context, scope adapter.OwnerScope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("id = ?", id)
		if !scope.SuperAdmin {
			query = query.Where("user_id = ?", scope.UserID)
		}

		result := query.Delete(&model.CarrierModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCarrierNotFound
		}

		return tx.Where("carrier_id = ?", id).Delete(&model.CarModel{}).Error
	})
}
