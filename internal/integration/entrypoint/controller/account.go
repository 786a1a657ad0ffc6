package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/usecase/account"
	"github.com/freight-ledger/backend/internal/application/usecase/statement"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/middleware"
)

// AccountController handles ledger account endpoints.
type AccountController struct {
	createUseCase      *account.CreateAccountUseCase
	listUseCase        *account.ListAccountsUseCase
	createEntryUseCase *account.CreateEntryUseCase
	deleteEntryUseCase *account.DeleteEntryUseCase
	statementUseCase   *statement.ComputeStatementUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	createEntryUseCase *account.CreateEntryUseCase,
	deleteEntryUseCase *account.DeleteEntryUseCase,
	statementUseCase *statement.ComputeStatementUseCase,
) *AccountController {
	return &AccountController{
		createUseCase:      createUseCase,
		listUseCase:        listUseCase,
		createEntryUseCase: createEntryUseCase,
		deleteEntryUseCase: deleteEntryUseCase,
		statementUseCase:   statementUseCase,
	}
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	initialBalance, err := parseAmount(req.InitialBalance)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid initial balance"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		UserID:         userID,
		Title:          req.Title,
		InitialBalance: initialBalance,
		Currency:       req.Currency,
		CurrencySymbol: req.CurrencySymbol,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{Scope: scope})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	accounts := make([]dto.AccountResponse, len(output.Accounts))
	for i := range output.Accounts {
		accounts[i] = dto.ToAccountResponse(&output.Accounts[i])
	}
	ctx.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// CreateEntry handles POST /accounts/:id/entries requests.
func (c *AccountController) CreateEntry(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID"})
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date"})
		return
	}
	credit, err := parseAmount(req.Credit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid credit amount"})
		return
	}
	debit, err := parseAmount(req.Debit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid debit amount"})
		return
	}
	rate, err := parseOptionalAmount(req.RateOfExchange)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid rate of exchange"})
		return
	}

	output, err := c.createEntryUseCase.Execute(ctx.Request.Context(), account.CreateEntryInput{
		Scope:          scope,
		AccountID:      accountID,
		Date:           date,
		Details:        req.Details,
		Credit:         credit,
		Debit:          debit,
		Destination:    req.Destination,
		RateOfExchange: rate,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// DeleteEntry handles DELETE /accounts/entries/:entryId requests.
func (c *AccountController) DeleteEntry(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("entryId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid entry ID"})
		return
	}

	if err := c.deleteEntryUseCase.Execute(ctx.Request.Context(), account.DeleteEntryInput{
		Scope:   scope,
		EntryID: entryID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Entry deleted"})
}

// Statement handles GET /accounts/:id/statement requests. The period bounds
// are required; search and pagination shape the displayed page without
// affecting the balance computation.
func (c *AccountController) Statement(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID"})
		return
	}

	startDate, err := parseDate(ctx.Query("startDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing startDate"})
		return
	}
	endDate, err := parseDate(ctx.Query("endDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or missing endDate"})
		return
	}

	page, limit := parsePagination(ctx)

	output, err := c.statementUseCase.Execute(ctx.Request.Context(), statement.ComputeStatementInput{
		Scope:     scope,
		AccountID: accountID,
		StartDate: startDate,
		EndDate:   endDate,
		Search:    ctx.Query("search"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	entries := make([]dto.EntryResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = dto.ToStatementEntryResponse(e)
	}

	ctx.JSON(http.StatusOK, dto.StatementResponse{
		Account:        dto.ToAccountResponse(output.Account),
		StartDate:      startDate.Format(dateLayout),
		EndDate:        endDate.Format(dateLayout),
		OpeningBalance: output.OpeningBalance.String(),
		ClosingBalance: output.ClosingBalance.String(),
		TotalCredit:    output.TotalCredit.String(),
		TotalDebit:     output.TotalDebit.String(),
		Entries:        entries,
		Total:          output.Total,
		Page:           output.Page,
		Limit:          output.Limit,
		TotalPages:     output.TotalPages,
	})
}
