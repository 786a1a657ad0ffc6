package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-ledger/backend/internal/application/usecase/invoice"
	"github.com/freight-ledger/backend/internal/application/usecase/payment"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/middleware"
)

// InvoiceController handles invoice and payment endpoints.
type InvoiceController struct {
	createUseCase        *invoice.CreateInvoiceUseCase
	listUseCase          *invoice.ListInvoicesUseCase
	getUseCase           *invoice.GetInvoiceUseCase
	applyPaymentUseCase  *payment.ApplyPaymentUseCase
	deletePaymentUseCase *payment.DeletePaymentUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	createUseCase *invoice.CreateInvoiceUseCase,
	listUseCase *invoice.ListInvoicesUseCase,
	getUseCase *invoice.GetInvoiceUseCase,
	applyPaymentUseCase *payment.ApplyPaymentUseCase,
	deletePaymentUseCase *payment.DeletePaymentUseCase,
) *InvoiceController {
	return &InvoiceController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		applyPaymentUseCase:  applyPaymentUseCase,
		deletePaymentUseCase: deletePaymentUseCase,
	}
}

// Create handles POST /invoices requests.
func (c *InvoiceController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start date"})
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end date"})
		return
	}
	var invoiceDate time.Time
	if req.InvoiceDate != "" {
		invoiceDate, err = parseDate(req.InvoiceDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid invoice date"})
			return
		}
	}
	subtotal, err := parseAmount(req.Subtotal)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid subtotal"})
		return
	}
	vatPercentage, err := parseAmount(req.VATPercentage)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid VAT percentage"})
		return
	}

	carIDs := make([]uuid.UUID, 0, len(req.CarIDs))
	for _, idStr := range req.CarIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid car ID"})
			return
		}
		carIDs = append(carIDs, id)
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), invoice.CreateInvoiceInput{
		UserID:               userID,
		SenderCompanyName:    req.SenderCompanyName,
		SenderCompanyAddress: req.SenderCompanyAddress,
		ClientCompanyName:    req.ClientCompanyName,
		InvoiceDate:          invoiceDate,
		StartDate:            startDate,
		EndDate:              endDate,
		CarIDs:               carIDs,
		Subtotal:             subtotal,
		VATPercentage:        vatPercentage,
		Descriptions:         req.Descriptions,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(output.Invoice))
}

// List handles GET /invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := invoice.ListInvoicesInput{
		Scope:     scope,
		Status:    ctx.Query("status"),
		StartDate: parseOptionalDayStart(ctx.Query("startDate")),
		EndDate:   parseOptionalDayEnd(ctx.Query("endDate")),
		Search:    ctx.Query("search"),
	}
	if companyIDStr := ctx.Query("companyId"); companyIDStr != "" {
		companyID, err := uuid.Parse(companyIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
			return
		}
		input.CompanyID = &companyID
	}
	input.Page, input.Limit = parsePagination(ctx)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	invoices := make([]dto.InvoiceResponse, len(output.Invoices))
	for i := range output.Invoices {
		invoices[i] = dto.ToInvoiceResponse(&output.Invoices[i])
	}
	ctx.JSON(http.StatusOK, dto.InvoiceListResponse{
		Invoices:   invoices,
		Total:      output.Total,
		Page:       output.Page,
		Limit:      output.Limit,
		TotalPages: output.TotalPages,
	})
}

// Get handles GET /invoices/:id requests, returning the invoice with its
// receipts.
func (c *InvoiceController) Get(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid invoice ID"})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), invoice.GetInvoiceInput{
		Scope:     scope,
		InvoiceID: invoiceID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	receipts := make([]dto.ReceiptResponse, len(output.Receipts))
	for i := range output.Receipts {
		receipts[i] = dto.ToReceiptResponse(&output.Receipts[i])
	}
	ctx.JSON(http.StatusOK, dto.InvoiceDetailResponse{
		Invoice:  dto.ToInvoiceResponse(output.Invoice),
		Receipts: receipts,
	})
}

// ApplyPayment handles POST /invoices/:id/payments requests.
func (c *InvoiceController) ApplyPayment(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid invoice ID"})
		return
	}

	var req dto.ApplyPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payment amount"})
		return
	}
	var paymentDate time.Time
	if req.PaymentDate != "" {
		paymentDate, err = parseDate(req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payment date"})
			return
		}
	}

	output, err := c.applyPaymentUseCase.Execute(ctx.Request.Context(), payment.ApplyPaymentInput{
		Scope:         scope,
		InvoiceID:     invoiceID,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		AccountInfo:   req.AccountInfo,
		PaymentDate:   paymentDate,
		Notes:         req.Notes,
		NotifyEmail:   req.NotifyEmail,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ApplyPaymentResponse{
		Invoice:      dto.ToInvoiceResponse(output.Invoice),
		Payment:      dto.ToPaymentResponse(output.Payment),
		Receipt:      dto.ToReceiptResponse(output.Receipt),
		ExcessAmount: output.ExcessAmount.String(),
	})
}

// DeletePayment handles DELETE /invoices/:id/payments/:index requests.
func (c *InvoiceController) DeletePayment(ctx *gin.Context) {
	scope, ok := middleware.GetOwnerScopeFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid invoice ID"})
		return
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || index < 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payment index"})
		return
	}

	output, err := c.deletePaymentUseCase.Execute(ctx.Request.Context(), payment.DeletePaymentInput{
		Scope:        scope,
		InvoiceID:    invoiceID,
		PaymentIndex: index,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}
