package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CarRepository defines the interface for car persistence operations.
type CarRepository interface {
	// Create creates a new car.
	Create(ctx context.Context, car *entity.Car) error

	// CreateBatch creates several cars in one transaction.
	CreateBatch(ctx context.Context, cars []entity.Car) error

	// FindByID retrieves a car by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)

	// FindByCarrier retrieves all cars of a carrier.
	FindByCarrier(ctx context.Context, carrierID uuid.UUID) ([]entity.Car, error)

	// Update updates an existing car.
	Update(ctx context.Context, car *entity.Car) error

	// Delete removes a car.
	Delete(ctx context.Context, id uuid.UUID) error
}
