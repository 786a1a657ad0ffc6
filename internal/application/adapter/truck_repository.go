package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// TruckRepository defines the interface for truck persistence operations.
type TruckRepository interface {
	// Create creates a new truck.
	Create(ctx context.Context, truck *entity.Truck) error

	// FindByID retrieves a truck by ID, scoped to the caller.
	FindByID(ctx context.Context, scope OwnerScope, id uuid.UUID) (*entity.Truck, error)

	// ExistsByNumber checks whether a truck number is taken by the owner.
	ExistsByNumber(ctx context.Context, userID uuid.UUID, truckNumber string) (bool, error)

	// List retrieves all trucks visible to the caller.
	List(ctx context.Context, scope OwnerScope) ([]entity.Truck, error)

	// Update updates an existing truck.
	Update(ctx context.Context, truck *entity.Truck) error

	// Delete removes a truck.
	Delete(ctx context.Context, scope OwnerScope, id uuid.UUID) error
}
