// Package carrier contains carrier-related use cases.
package carrier

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

const (
	// DefaultPageLimit is used when no limit is supplied.
	DefaultPageLimit = 20
	// MaxPageLimit caps the page size for carrier listings.
	MaxPageLimit = 100
)

// ListCarriersInput represents the input for the carrier listing.
type ListCarriersInput struct {
	Scope     adapter.OwnerScope
	Type      *entity.CarrierType
	Active    *entity.ActiveState
	StartDate *time.Time
	EndDate   *time.Time
	Company   string
	Search    string
	Page      int
	Limit     int
}

// ListCarriersOutput represents the output of the carrier listing.
type ListCarriersOutput struct {
	Result *entity.CarrierListResult
}

// ListCarriersUseCase handles the filtered, aggregated carrier listing.
type ListCarriersUseCase struct {
	carrierRepo adapter.CarrierRepository
	userRepo    adapter.UserRepository
}

// NewListCarriersUseCase creates a new ListCarriersUseCase instance.
func NewListCarriersUseCase(carrierRepo adapter.CarrierRepository, userRepo adapter.UserRepository) *ListCarriersUseCase {
	return &ListCarriersUseCase{carrierRepo: carrierRepo, userRepo: userRepo}
}

// Execute lists carriers with their matching cars and read-time aggregates.
// Super admin listings are additionally annotated with each owner's name.
func (uc *ListCarriersUseCase) Execute(ctx context.Context, input ListCarriersInput) (*ListCarriersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	filter := adapter.CarrierFilter{
		Type:      input.Type,
		Active:    input.Active,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Company:   input.Company,
		Search:    input.Search,
	}

	result, err := uc.carrierRepo.ListWithAggregates(ctx, input.Scope, filter, adapter.Pagination{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	if input.Scope.SuperAdmin && len(result.Carriers) > 0 {
		if err := uc.annotateOwners(ctx, result.Carriers); err != nil {
			return nil, err
		}
	}

	return &ListCarriersOutput{Result: result}, nil
}

func (uc *ListCarriersUseCase) annotateOwners(ctx context.Context, carriers []*entity.CarrierWithStats) error {
	seen := make(map[string]bool, len(carriers))
	ids := make([]uuid.UUID, 0, len(carriers))
	for _, c := range carriers {
		key := c.Carrier.UserID.String()
		if !seen[key] {
			seen[key] = true
			ids = append(ids, c.Carrier.UserID)
		}
	}

	names, err := uc.userRepo.FindNamesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, c := range carriers {
		c.OwnerName = names[c.Carrier.UserID]
	}
	return nil
}
