package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CompanyRepository defines the interface for company persistence operations.
type CompanyRepository interface {
	// Create creates a new company.
	Create(ctx context.Context, company *entity.Company) error

	// FindByID retrieves a company by ID, scoped to the caller.
	FindByID(ctx context.Context, scope OwnerScope, id uuid.UUID) (*entity.Company, error)

	// FindByNameAndUser retrieves a company by name for a given owner.
	// Name matching is case-insensitive.
	FindByNameAndUser(ctx context.Context, userID uuid.UUID, name string) (*entity.Company, error)

	// List retrieves all companies visible to the caller, with an optional
	// name search.
	List(ctx context.Context, scope OwnerScope, search string) ([]entity.Company, error)

	// Update updates an existing company.
	Update(ctx context.Context, company *entity.Company) error

	// Delete removes a company.
	Delete(ctx context.Context, scope OwnerScope, id uuid.UUID) error
}
