package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/usecase/expense"
	"github.com/freight-ledger/backend/internal/domain/entity"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase  *expense.CreateExpenseUseCase
	listUseCase    *expense.ListExpensesUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
	suggestUseCase *expense.SuggestCategoryUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	suggestUseCase *expense.SuggestCategoryUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date"})
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid amount"})
		return
	}
	liters, err := parseOptionalAmount(req.Liters)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid liters"})
		return
	}
	pricePerLiter, err := parseOptionalAmount(req.PricePerLiter)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid price per liter"})
		return
	}

	input := expense.CreateExpenseInput{
		Scope:         scope,
		Category:      entity.ExpenseCategory(req.Category),
		Amount:        amount,
		Details:       req.Details,
		Date:          date,
		Liters:        liters,
		PricePerLiter: pricePerLiter,
		MeterReading:  req.MeterReading,
		DriverName:    req.DriverName,
	}
	if req.CarrierID != "" {
		carrierID, err := uuid.Parse(req.CarrierID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid carrier ID"})
			return
		}
		input.CarrierID = &carrierID
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

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := expense.ListExpensesInput{
		Scope:     scope,
		Category:  ctx.Query("category"),
		StartDate: parseOptionalDayStart(ctx.Query("startDate")),
		EndDate:   parseOptionalDayEnd(ctx.Query("endDate")),
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		expenseScope := entity.ExpenseScope(typeStr)
		input.Type = &expenseScope
	}
	if carrierIDStr := ctx.Query("carrierId"); carrierIDStr != "" {
		if carrierID, err := uuid.Parse(carrierIDStr); err == nil {
			input.CarrierID = &carrierID
		}
	}
	if truckIDStr := ctx.Query("truckId"); truckIDStr != "" {
		if truckID, err := uuid.Parse(truckIDStr); err == nil {
			input.TruckID = &truckID
		}
	}
	input.Page, input.Limit = parsePagination(ctx)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	expenses := make([]dto.ExpenseResponse, len(output.Expenses))
	for i := range output.Expenses {
		expenses[i] = dto.ToExpenseResponse(&output.Expenses[i])
	}
	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses:   expenses,
		Total:      output.Total,
		Page:       output.Page,
		Limit:      output.Limit,
		TotalPages: output.TotalPages,
	})
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid expense ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		Scope:     scope,
		ExpenseID: expenseID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted"})
}

// SuggestCategory handles POST /expenses/suggest-category requests.
func (c *ExpenseController) SuggestCategory(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), expense.SuggestCategoryInput{
		Type:        entity.ExpenseScope(req.Type),
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   string(output.Category),
		Confidence: output.Confidence,
	})
}
