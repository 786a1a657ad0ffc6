package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	"github.com/freight-ledger/backend/internal/integration/persistence/model"
)

func newCarrierTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.CarrierModel{}, &model.CarModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedTrip(t *testing.T, db *gorm.DB, userID uuid.UUID, tripNumber string, day time.Time) *entity.Carrier {
	t.Helper()

	trip := entity.NewTripCarrier(userID, tripNumber, day)
	if err := db.Create(model.CarrierModelFromEntity(trip)).Error; err != nil {
		t.Fatalf("failed to seed carrier %s: %v", tripNumber, err)
	}
	return trip
}

func seedCar(t *testing.T, db *gorm.DB, carrier *entity.Carrier, stockNo, company string, amount int64, day time.Time) *entity.Car {
	t.Helper()

	car := entity.NewCar(carrier.ID, carrier.UserID, stockNo, stockNo, "", company, decimal.NewFromInt(amount), day)
	if err := db.Create(model.CarModelFromEntity(car)).Error; err != nil {
		t.Fatalf("failed to seed car %s: %v", stockNo, err)
	}
	return car
}

func TestCarrierRepositoryListWithAggregates(t *testing.T) {
	ctx := context.Background()
	jan := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	page := adapter.Pagination{Page: 1, Limit: 20}

	t.Run("aggregates are derived from cars at read time", func(t *testing.T) {
		db := newCarrierTestDB(t)
		repo := NewCarrierRepository(db)
		userID := uuid.New()
		scope := adapter.OwnerScope{UserID: userID}

		trip := seedTrip(t, db, userID, "TRIP-001", jan)
		seedCar(t, db, trip, "S-100", "Acme Haulage", 2500, jan)
		seedCar(t, db, trip, "S-101", "Acme Haulage", 1500, jan)

		result, err := repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 1 {
			t.Fatalf("got %d carriers, want 1", len(result.Carriers))
		}
		got := result.Carriers[0]
		if got.CarCount != 2 {
			t.Errorf("car count = %d, want 2", got.CarCount)
		}
		if !got.TotalAmount.Equal(decimal.NewFromInt(4000)) {
			t.Errorf("total amount = %s, want 4000", got.TotalAmount)
		}
		if !got.Profit.Equal(decimal.NewFromInt(4000)) {
			t.Errorf("profit = %s, want 4000", got.Profit)
		}
	})

	t.Run("company filter cascades to carriers", func(t *testing.T) {
		db := newCarrierTestDB(t)
		repo := NewCarrierRepository(db)
		userID := uuid.New()
		scope := adapter.OwnerScope{UserID: userID}

		tripA := seedTrip(t, db, userID, "TRIP-001", jan)
		seedCar(t, db, tripA, "S-100", "Acme Haulage", 2500, jan)
		tripB := seedTrip(t, db, userID, "TRIP-002", feb)
		seedCar(t, db, tripB, "S-200", "Globex Motors", 4000, feb)

		result, err := repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{Company: " acme haulage "}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 1 {
			t.Fatalf("got %d carriers, want 1", len(result.Carriers))
		}
		if result.Carriers[0].Carrier.TripNumber != "TRIP-001" {
			t.Errorf("trip number = %s, want TRIP-001", result.Carriers[0].Carrier.TripNumber)
		}
		if result.Total != 1 {
			t.Errorf("total = %d, want 1", result.Total)
		}
	})

	t.Run("car filter matching nothing yields empty page", func(t *testing.T) {
		db := newCarrierTestDB(t)
		repo := NewCarrierRepository(db)
		userID := uuid.New()
		scope := adapter.OwnerScope{UserID: userID}

		trip := seedTrip(t, db, userID, "TRIP-001", jan)
		seedCar(t, db, trip, "S-100", "Acme Haulage", 2500, jan)

		result, err := repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{Company: "Nonexistent"}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 0 {
			t.Errorf("got %d carriers, want 0", len(result.Carriers))
		}
		if result.Total != 0 {
			t.Errorf("total = %d, want 0", result.Total)
		}
	})

	t.Run("date filter applies at car level and attaches only matching cars", func(t *testing.T) {
		db := newCarrierTestDB(t)
		repo := NewCarrierRepository(db)
		userID := uuid.New()
		scope := adapter.OwnerScope{UserID: userID}

		trip := seedTrip(t, db, userID, "TRIP-001", jan)
		seedCar(t, db, trip, "S-100", "Acme Haulage", 2500, jan)
		seedCar(t, db, trip, "S-101", "Acme Haulage", 1500, feb)

		start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.February, 28, 23, 59, 59, 0, time.UTC)
		result, err := repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{StartDate: &start, EndDate: &end}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 1 {
			t.Fatalf("got %d carriers, want 1", len(result.Carriers))
		}
		got := result.Carriers[0]
		if got.CarCount != 1 {
			t.Errorf("car count = %d, want 1 matching car", got.CarCount)
		}
		if !got.TotalAmount.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("total amount = %s, want 1500", got.TotalAmount)
		}
	})

	t.Run("rows timestamped within the end day match a whole-day bound", func(t *testing.T) {
		db := newCarrierTestDB(t)
		repo := NewCarrierRepository(db)
		userID := uuid.New()
		scope := adapter.OwnerScope{UserID: userID}

		endDay := time.Date(2024, time.February, 28, 12, 0, 0, 0, time.UTC)
		trip := seedTrip(t, db, userID, "TRIP-001", endDay)
		seedCar(t, db, trip, "S-100", "Acme Haulage", 2500, endDay)

		start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.February, 28, 23, 59, 59, 999999999, time.UTC)
		result, err := repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{StartDate: &start, EndDate: &end}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 1 {
			t.Fatalf("got %d carriers, want 1 for a car dated noon on the end day", len(result.Carriers))
		}
		if result.Carriers[0].CarCount != 1 {
			t.Errorf("car count = %d, want 1", result.Carriers[0].CarCount)
		}
	})

	t.Run("cars owned by someone else neither cascade nor attach", func(t *testing.T) {
		db := newCarrierTestDB(t)
		repo := NewCarrierRepository(db)
		owner := uuid.New()
		other := uuid.New()
		scope := adapter.OwnerScope{UserID: owner}

		trip := seedTrip(t, db, owner, "TRIP-001", jan)
		seedCar(t, db, trip, "S-100", "Acme Haulage", 2500, jan)

		foreign := entity.NewCar(trip.ID, other, "S-900", "S-900", "", "Globex Motors", decimal.NewFromInt(9000), jan)
		if err := db.Create(model.CarModelFromEntity(foreign)).Error; err != nil {
			t.Fatalf("failed to seed foreign car: %v", err)
		}

		result, err := repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 1 {
			t.Fatalf("got %d carriers, want 1", len(result.Carriers))
		}
		got := result.Carriers[0]
		if got.CarCount != 1 {
			t.Errorf("car count = %d, want 1 without the foreign car", got.CarCount)
		}
		if !got.TotalAmount.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("total amount = %s, want 2500", got.TotalAmount)
		}

		// Filtering by the foreign car's company must not surface the carrier.
		result, err = repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{Company: "Globex Motors"}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 0 {
			t.Errorf("got %d carriers, want 0 when only a foreign car matches", len(result.Carriers))
		}

		// Super admins see across owners, so the foreign car attaches for them.
		result, err = repo.ListWithAggregates(ctx, adapter.OwnerScope{SuperAdmin: true}, adapter.CarrierFilter{}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 1 || result.Carriers[0].CarCount != 2 {
			t.Errorf("super admin car count = %d, want 2", result.Carriers[0].CarCount)
		}
	})

	t.Run("legacy rows with no stored flag behave as active", func(t *testing.T) {
		db := newCarrierTestDB(t)
		repo := NewCarrierRepository(db)
		userID := uuid.New()
		scope := adapter.OwnerScope{UserID: userID}

		legacy := entity.NewTripCarrier(userID, "TRIP-OLD", jan)
		legacyModel := model.CarrierModelFromEntity(legacy)
		legacyModel.IsActive = nil
		if err := db.Create(legacyModel).Error; err != nil {
			t.Fatalf("failed to seed legacy carrier: %v", err)
		}

		inactive := entity.NewTripCarrier(userID, "TRIP-OFF", jan)
		inactive.Active = entity.ActiveStateInactive
		if err := db.Create(model.CarrierModelFromEntity(inactive)).Error; err != nil {
			t.Fatalf("failed to seed inactive carrier: %v", err)
		}

		active := entity.ActiveStateActive
		result, err := repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{Active: &active}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 1 || result.Carriers[0].Carrier.TripNumber != "TRIP-OLD" {
			t.Fatalf("active filter should include only the legacy row, got %d carriers", len(result.Carriers))
		}
		if result.Carriers[0].Carrier.Active != entity.ActiveStateLegacyUnset {
			t.Errorf("legacy active state = %s, want %s", result.Carriers[0].Carrier.Active, entity.ActiveStateLegacyUnset)
		}

		inactiveState := entity.ActiveStateInactive
		result, err = repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{Active: &inactiveState}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 1 || result.Carriers[0].Carrier.TripNumber != "TRIP-OFF" {
			t.Fatalf("inactive filter should exclude the legacy row, got %d carriers", len(result.Carriers))
		}
	})

	t.Run("ownership scoping hides other users", func(t *testing.T) {
		db := newCarrierTestDB(t)
		repo := NewCarrierRepository(db)
		owner := uuid.New()
		other := uuid.New()

		seedTrip(t, db, owner, "TRIP-001", jan)
		seedTrip(t, db, other, "TRIP-002", jan)

		result, err := repo.ListWithAggregates(ctx, adapter.OwnerScope{UserID: owner}, adapter.CarrierFilter{}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 1 || result.Carriers[0].Carrier.TripNumber != "TRIP-001" {
			t.Fatalf("scoped listing leaked other users' carriers")
		}

		result, err = repo.ListWithAggregates(ctx, adapter.OwnerScope{SuperAdmin: true}, adapter.CarrierFilter{}, page)
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if len(result.Carriers) != 2 {
			t.Fatalf("super admin should see all carriers, got %d", len(result.Carriers))
		}
	})

	t.Run("pagination keeps count and pages consistent", func(t *testing.T) {
		db := newCarrierTestDB(t)
		repo := NewCarrierRepository(db)
		userID := uuid.New()
		scope := adapter.OwnerScope{UserID: userID}

		for i := 0; i < 5; i++ {
			seedTrip(t, db, userID, "TRIP-00"+string(rune('1'+i)), jan.AddDate(0, 0, i))
		}

		result, err := repo.ListWithAggregates(ctx, scope, adapter.CarrierFilter{}, adapter.Pagination{Page: 2, Limit: 2})
		if err != nil {
			t.Fatalf("ListWithAggregates() error = %v", err)
		}
		if result.Total != 5 {
			t.Errorf("total = %d, want 5", result.Total)
		}
		if result.TotalPages != 3 {
			t.Errorf("total pages = %d, want 3", result.TotalPages)
		}
		if len(result.Carriers) != 2 {
			t.Errorf("page size = %d, want 2", len(result.Carriers))
		}
	})
}
