package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/usecase/company"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/middleware"
)

// CompanyController handles client company endpoints.
type CompanyController struct {
	createUseCase    *company.CreateCompanyUseCase
	listUseCase      *company.ListCompaniesUseCase
	getCreditUseCase *company.GetCompanyCreditUseCase
	setCreditUseCase *company.SetCompanyCreditUseCase
}

// NewCompanyController creates a new company controller instance.
func NewCompanyController(
	createUseCase *company.CreateCompanyUseCase,
	listUseCase *company.ListCompaniesUseCase,
	getCreditUseCase *company.GetCompanyCreditUseCase,
	setCreditUseCase *company.SetCompanyCreditUseCase,
) *CompanyController {
	return &CompanyController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		getCreditUseCase: getCreditUseCase,
		setCreditUseCase: setCreditUseCase,
	}
}

// Create handles POST /companies requests.
func (c *CompanyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), company.CreateCompanyInput{
		UserID:  userID,
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCompanyResponse(output.Company))
}

// List handles GET /companies requests.
func (c *CompanyController) List(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), company.ListCompaniesInput{
		Scope:  scope,
		Search: ctx.Query("search"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	companies := make([]dto.CompanyResponse, len(output.Companies))
	for i := range output.Companies {
		companies[i] = dto.ToCompanyResponse(&output.Companies[i])
	}
	ctx.JSON(http.StatusOK, gin.H{"companies": companies})
}

// GetCredit handles GET /companies/:id/credit requests. The response carries
// both the cached balance and the value recomputed from overpaid invoices.
func (c *CompanyController) GetCredit(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
		return
	}

	output, err := c.getCreditUseCase.Execute(ctx.Request.Context(), company.GetCompanyCreditInput{
		Scope:     scope,
		CompanyID: companyID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CompanyCreditResponse{
		Company:        dto.ToCompanyResponse(output.Company),
		ComputedCredit: output.ComputedCredit.String(),
		CachedCredit:   output.CachedCredit.String(),
	})
}

// SetCredit handles PATCH /companies/:id/credit requests.
func (c *CompanyController) SetCredit(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
		return
	}

	var req dto.SetCompanyCreditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	creditBalance, err := decimal.NewFromString(req.CreditBalance)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid credit balance"})
		return
	}

	output, err := c.setCreditUseCase.Execute(ctx.Request.Context(), company.SetCompanyCreditInput{
		Scope:         scope,
		CompanyID:     companyID,
		CreditBalance: creditBalance,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(output.Company))
}
