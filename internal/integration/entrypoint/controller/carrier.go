package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/usecase/car"
	"github.com/freight-ledger/backend/internal/application/usecase/carrier"
	"github.com/freight-ledger/backend/internal/domain/entity"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/middleware"
)

// CarrierController handles carrier and car endpoints.
type CarrierController struct {
	listUseCase       *carrier.ListCarriersUseCase
	createUseCase     *carrier.CreateCarrierUseCase
	updateUseCase     *carrier.UpdateCarrierUseCase
	toggleUseCase     *carrier.ToggleCarrierActiveUseCase
	deleteUseCase     *carrier.DeleteCarrierUseCase
	createCarUseCase  *car.CreateCarUseCase
	bulkCarsUseCase   *car.BulkCreateCarsUseCase
	deleteCarUseCase  *car.DeleteCarUseCase
}

// NewCarrierController creates a new carrier controller instance.
func NewCarrierController(
	listUseCase *carrier.ListCarriersUseCase,
	createUseCase *carrier.CreateCarrierUseCase,
	updateUseCase *carrier.UpdateCarrierUseCase,
	toggleUseCase *carrier.ToggleCarrierActiveUseCase,
	deleteUseCase *carrier.DeleteCarrierUseCase,
	createCarUseCase *car.CreateCarUseCase,
	bulkCarsUseCase *car.BulkCreateCarsUseCase,
	deleteCarUseCase *car.DeleteCarUseCase,
) *CarrierController {
	return &CarrierController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		toggleUseCase:    toggleUseCase,
		deleteUseCase:    deleteUseCase,
		createCarUseCase: createCarUseCase,
		bulkCarsUseCase:  bulkCarsUseCase,
		deleteCarUseCase: deleteCarUseCase,
	}
}

// List handles GET /carriers requests. Company and date range filters apply
// at the car level and cascade to the carrier listing.
func (c *CarrierController) List(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := carrier.ListCarriersInput{
		Scope:     scope,
		StartDate: parseOptionalDayStart(ctx.Query("startDate")),
		EndDate:   parseOptionalDayEnd(ctx.Query("endDate")),
		Company:   ctx.Query("company"),
		Search:    ctx.Query("search"),
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		carrierType := entity.CarrierType(typeStr)
		input.Type = &carrierType
	}
	// Anything other than an explicit true/false leaves the filter unset.
	switch ctx.Query("active") {
	case "true":
		state := entity.ActiveStateActive
		input.Active = &state
	case "false":
		state := entity.ActiveStateInactive
		input.Active = &state
	}
	input.Page, input.Limit = parsePagination(ctx)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCarrierListResponse(output.Result))
}

// Create handles POST /carriers requests.
func (c *CarrierController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCarrierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date"})
		return
	}

	input := carrier.CreateCarrierInput{
		UserID:      userID,
		Type:        entity.CarrierType(req.Type),
		TripNumber:  req.TripNumber,
		Name:        req.Name,
		Date:        date,
		CarrierName: req.CarrierName,
		DriverName:  req.DriverName,
		Details:     req.Details,
		Notes:       req.Notes,
	}
	if req.TruckID != "" {
		truckID, err := uuid.Parse(req.TruckID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid truck ID"})
			return
		}
		input.TruckID = &truckID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCarrierResponse(output.Carrier))
}

// Update handles PATCH /carriers/:id requests.
func (c *CarrierController) Update(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	carrierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid carrier ID"})
		return
	}

	var req dto.UpdateCarrierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := carrier.UpdateCarrierInput{
		Scope:       scope,
		CarrierID:   carrierID,
		TripNumber:  req.TripNumber,
		Name:        req.Name,
		CarrierName: req.CarrierName,
		DriverName:  req.DriverName,
		Details:     req.Details,
		Notes:       req.Notes,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date"})
			return
		}
		input.Date = &date
	}
	if req.TruckID != nil {
		truckID, err := uuid.Parse(*req.TruckID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid truck ID"})
			return
		}
		input.TruckID = &truckID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCarrierResponse(output.Carrier))
}

// ToggleActive handles PATCH /carriers/:id/active requests.
func (c *CarrierController) ToggleActive(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	carrierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid carrier ID"})
		return
	}

	var req dto.ToggleCarrierActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Active == nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), carrier.ToggleCarrierActiveInput{
		Scope:     scope,
		CarrierID: carrierID,
		Active:    *req.Active,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCarrierResponse(output.Carrier))
}

// Delete handles DELETE /carriers/:id requests.
func (c *CarrierController) Delete(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	carrierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid carrier ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), carrier.DeleteCarrierInput{
		Scope:     scope,
		CarrierID: carrierID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Carrier deleted"})
}

// CreateCar handles POST /carriers/:id/cars requests.
func (c *CarrierController) CreateCar(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	carrierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid carrier ID"})
		return
	}

	var req dto.CreateCarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid car amount"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid car date"})
		return
	}

	output, err := c.createCarUseCase.Execute(ctx.Request.Context(), car.CreateCarInput{
		Scope:       scope,
		CarrierID:   carrierID,
		StockNo:     req.StockNo,
		Name:        req.Name,
		Chassis:     req.Chassis,
		Amount:      amount,
		CompanyName: req.CompanyName,
		Date:        date,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCarResponse(output.Car))
}

// BulkCreateCars handles POST /carriers/:id/cars/bulk requests. All cars are
// created in one transaction.
func (c *CarrierController) BulkCreateCars(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	carrierID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid carrier ID"})
		return
	}

	var req dto.BulkCreateCarsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := car.BulkCreateCarsInput{
		Scope:     scope,
		CarrierID: carrierID,
		Cars:      make([]car.BulkCarInput, 0, len(req.Cars)),
	}
	for _, carReq := range req.Cars {
		amount, err := parseAmount(carReq.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid car amount"})
			return
		}
		date, err := parseDate(carReq.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid car date"})
			return
		}
		input.Cars = append(input.Cars, car.BulkCarInput{
			StockNo:     carReq.StockNo,
			Name:        carReq.Name,
			Chassis:     carReq.Chassis,
			Amount:      amount,
			CompanyName: carReq.CompanyName,
			Date:        date,
		})
	}

	output, err := c.bulkCarsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	cars := make([]dto.CarResponse, len(output.Cars))
	for i := range output.Cars {
		cars[i] = dto.ToCarResponse(&output.Cars[i])
	}
	ctx.JSON(http.StatusCreated, gin.H{"cars": cars})
}

// DeleteCar handles DELETE /cars/:carId requests.
func (c *CarrierController) DeleteCar(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	carID, err := uuid.Parse(ctx.Param("carId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid car ID"})
		return
	}

	if err := c.deleteCarUseCase.Execute(ctx.Request.Context(), car.DeleteCarInput{
		Scope: scope,
		CarID: carID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Car deleted"})
}
