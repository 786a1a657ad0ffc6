package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/freight-ledger/backend/internal/domain/error"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/dto"
)

// sentinelStatus maps domain sentinel errors to HTTP status codes.
var sentinelStatus = []struct {
	err    error
	status int
}{
	{domainerror.ErrAccountNotFound, http.StatusNotFound},
	{domainerror.ErrLedgerEntryNotFound, http.StatusNotFound},
	{domainerror.ErrCarrierNotFound, http.StatusNotFound},
	{domainerror.ErrCarNotFound, http.StatusNotFound},
	{domainerror.ErrTruckNotFound, http.StatusNotFound},
	{domainerror.ErrExpenseNotFound, http.StatusNotFound},
	{domainerror.ErrCompanyNotFound, http.StatusNotFound},
	{domainerror.ErrInvoiceNotFound, http.StatusNotFound},
	{domainerror.ErrPaymentNotFound, http.StatusNotFound},
	{domainerror.ErrReceiptNotFound, http.StatusNotFound},
	{domainerror.ErrUserNotFound, http.StatusNotFound},

	{domainerror.ErrAccountSlugTaken, http.StatusConflict},
	{domainerror.ErrTripNumberTaken, http.StatusConflict},
	{domainerror.ErrTruckNumberTaken, http.StatusConflict},
	{domainerror.ErrCompanyNameTaken, http.StatusConflict},
	{domainerror.ErrInvoiceNumberTaken, http.StatusConflict},
	{domainerror.ErrReceiptNumberTaken, http.StatusConflict},

	{domainerror.ErrInvalidStatementPeriod, http.StatusBadRequest},
	{domainerror.ErrNotATripCarrier, http.StatusBadRequest},
	{domainerror.ErrInvalidCarrierType, http.StatusBadRequest},
	{domainerror.ErrInvalidExpenseCategory, http.StatusBadRequest},
	{domainerror.ErrExpenseParentMissing, http.StatusBadRequest},
	{domainerror.ErrNegativeCredit, http.StatusBadRequest},
	{domainerror.ErrInvalidPaymentAmount, http.StatusBadRequest},

	{domainerror.ErrNotCarrierOwner, http.StatusForbidden},
	{domainerror.ErrForbidden, http.StatusForbidden},
}

// handleDomainError maps a use case error to an HTTP response. Coded auth
// errors keep their code; plain sentinels map through sentinelStatus.
func handleDomainError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthCode(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	for _, m := range sentinelStatus {
		if errors.Is(err, m.err) {
			ctx.JSON(m.status, dto.ErrorResponse{
				Error: m.err.Error(),
			})
			return
		}
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondUnauthenticated writes the response for a request whose auth
// context is missing.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondInvalidBody writes the response for an unparseable request body.
func respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
	})
}

// statusForAuthCode maps auth error codes to HTTP status codes.
func statusForAuthCode(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeWeakPassword:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeInvalidRefresh:
		return http.StatusUnauthorized
	case domainerror.ErrCodeForbidden:
		return http.StatusForbidden
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
