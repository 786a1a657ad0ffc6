package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/usecase/truck"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/middleware"
)

// TruckController handles truck endpoints.
type TruckController struct {
	createUseCase *truck.CreateTruckUseCase
	listUseCase   *truck.ListTrucksUseCase
	updateUseCase *truck.UpdateTruckUseCase
}

// NewTruckController creates a new truck controller instance.
func NewTruckController(
	createUseCase *truck.CreateTruckUseCase,
	listUseCase *truck.ListTrucksUseCase,
	updateUseCase *truck.UpdateTruckUseCase,
) *TruckController {
	return &TruckController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
	}
}

// Create handles POST /trucks requests.
func (c *TruckController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTruckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), truck.CreateTruckInput{
		UserID:              userID,
		Name:                req.Name,
		Number:              req.Number,
		Drivers:             req.Drivers,
		CurrentMeterReading: req.CurrentMeterReading,
		MaintenanceInterval: req.MaintenanceInterval,
		LastMaintenanceKm:   req.LastMaintenanceKm,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTruckResponse(output.Truck))
}

// List handles GET /trucks requests. Each truck carries its derived
// maintenance status.
func (c *TruckController) List(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), truck.ListTrucksInput{Scope: scope})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	trucks := make([]dto.TruckResponse, len(output.Trucks))
	for i, tws := range output.Trucks {
		trucks[i] = dto.ToTruckWithStatusResponse(tws)
	}
	ctx.JSON(http.StatusOK, gin.H{"trucks": trucks})
}

// Update handles PATCH /trucks/:id requests.
func (c *TruckController) Update(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	truckID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid truck ID"})
		return
	}

	var req dto.UpdateTruckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := truck.UpdateTruckInput{
		Scope:               scope,
		TruckID:             truckID,
		Name:                req.Name,
		Drivers:             req.Drivers,
		CurrentMeterReading: req.CurrentMeterReading,
		MaintenanceInterval: req.MaintenanceInterval,
		LastMaintenanceKm:   req.LastMaintenanceKm,
	}
	if req.LastMaintenanceDate != nil {
		date, err := parseDate(*req.LastMaintenanceDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid last maintenance date"})
			return
		}
		input.LastMaintenanceDate = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTruckResponse(output.Truck))
}
