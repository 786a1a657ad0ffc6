package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CarrierFilter defines filtering options for carrier queries. Company and
// the date range cascade through cars: a carrier matches only when at least
// one of its cars matches, and only those cars are attached to the result.
// Search matches carrier-level fields only.
type CarrierFilter struct {
	Type      *entity.CarrierType
	Active    *entity.ActiveState
	StartDate *time.Time
	EndDate   *time.Time
	Company   string
	Search    string
}

// HasCarFilter reports whether the filter needs the car-level cascade.
func (f CarrierFilter) HasCarFilter() bool {
	return f.Company != "" || f.StartDate != nil || f.EndDate != nil
}

// CarrierRepository defines the interface for carrier persistence operations.
type CarrierRepository interface {
	// Create creates a new carrier.
	Create(ctx context.Context, carrier *entity.Carrier) error

	// FindByID retrieves a carrier by ID, scoped to the caller.
	FindByID(ctx context.Context, scope OwnerScope, id uuid.UUID) (*entity.Carrier, error)

	// ExistsByTripNumber checks whether a trip number is taken by the owner.
	ExistsByTripNumber(ctx context.Context, userID uuid.UUID, tripNumber string) (bool, error)

	// ListWithAggregates retrieves a page of carriers with their cars and
	// read-time aggregates (car count, total amount, profit) applied after
	// filtering. The returned total count reflects the same filter.
	ListWithAggregates(ctx context.Context, scope OwnerScope, filter CarrierFilter, pagination Pagination) (*entity.CarrierListResult, error)

	// Update updates an existing carrier.
	Update(ctx context.Context, carrier *entity.Carrier) error

	// Delete removes a carrier and its cars.
	Delete(ctx context.Context, scope OwnerScope, id uuid.UUID) error
}
