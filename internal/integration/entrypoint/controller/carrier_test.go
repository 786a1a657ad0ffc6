package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/application/usecase/carrier"
	"github.com/freight-ledger/backend/internal/domain/entity"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/middleware"
)

type capturingCarrierRepo struct {
	filter adapter.CarrierFilter
}

func (r *capturingCarrierRepo) Create(_ context.Context, _ *entity.Carrier) error {
	return nil
}

func (r *capturingCarrierRepo) FindByID(_ context.Context, _ adapter.OwnerScope, _ uuid.UUID) (*entity.Carrier, error) {
	return nil, nil
}

func (r *capturingCarrierRepo) ExistsByTripNumber(_ context.Context, _ uuid.UUID, _ string) (bool, error) {
	return false, nil
}

func (r *capturingCarrierRepo) ListWithAggregates(_ context.Context, _ adapter.OwnerScope, filter adapter.CarrierFilter, pagination adapter.Pagination) (*entity.CarrierListResult, error) {
	r.filter = filter
	return &entity.CarrierListResult{
		Carriers:   []*entity.CarrierWithStats{},
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (r *capturingCarrierRepo) Update(_ context.Context, _ *entity.Carrier) error {
	return nil
}

func (r *capturingCarrierRepo) Delete(_ context.Context, _ adapter.OwnerScope, _ uuid.UUID) error {
	return nil
}

func newCarrierListRouter(repo adapter.CarrierRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	listUseCase := carrier.NewListCarriersUseCase(repo, nil)
	carrierController := NewCarrierController(listUseCase, nil, nil, nil, nil, nil, nil, nil)

	engine := gin.New()
	engine.GET("/carriers", func(ctx *gin.Context) {
		ctx.Set(string(middleware.UserIDKey), uuid.New())
		ctx.Set(string(middleware.UserRoleKey), entity.RoleUser)
	}, carrierController.List)
	return engine
}

func listCarriers(t *testing.T, engine *gin.Engine, query string) {
	t.Helper()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/carriers"+query, nil)
	engine.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("GET /carriers%s status = %d, want 200", query, recorder.Code)
	}
}

func TestCarrierListDateFilterCoversWholeDays(t *testing.T) {
	repo := &capturingCarrierRepo{}
	engine := newCarrierListRouter(repo)

	listCarriers(t, engine, "?startDate=2024-02-01&endDate=2024-02-28")

	if repo.filter.StartDate == nil || repo.filter.EndDate == nil {
		t.Fatal("date filters were not forwarded")
	}

	wantStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !repo.filter.StartDate.Equal(wantStart) {
		t.Errorf("start date = %v, want %v", repo.filter.StartDate, wantStart)
	}

	// A row timestamped during the end day must fall inside the range.
	noon := time.Date(2024, time.February, 28, 12, 0, 0, 0, time.UTC)
	if repo.filter.EndDate.Before(noon) {
		t.Errorf("end date = %v excludes rows timestamped within the end day", repo.filter.EndDate)
	}
	nextDay := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !repo.filter.EndDate.Before(nextDay) {
		t.Errorf("end date = %v spills into the next day", repo.filter.EndDate)
	}
}

func TestCarrierListActiveFilterParsing(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  *entity.ActiveState
	}{
		{
			name:  "true selects active",
			query: "?active=true",
			want:  activeStatePtr(entity.ActiveStateActive),
		},
		{
			name:  "false selects inactive",
			query: "?active=false",
			want:  activeStatePtr(entity.ActiveStateInactive),
		},
		{
			name:  "garbage is ignored",
			query: "?active=banana",
			want:  nil,
		},
		{
			name:  "absent stays unset",
			query: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &capturingCarrierRepo{}
			engine := newCarrierListRouter(repo)

			listCarriers(t, engine, tt.query)

			got := repo.filter.Active
			if tt.want == nil {
				if got != nil {
					t.Fatalf("active filter = %v, want unset", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("active filter unset, want %v", *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("active filter = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func activeStatePtr(state entity.ActiveState) *entity.ActiveState {
	return &state
}
