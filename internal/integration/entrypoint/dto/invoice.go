package dto

import (
	"time"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CreateInvoiceRequest represents the request body for creating an invoice.
type CreateInvoiceRequest struct {
	SenderCompanyName    string   `json:"sender_company_name" binding:"required,min=1,max=200"`
	SenderCompanyAddress string   `json:"sender_company_address,omitempty" binding:"omitempty,max=500"`
	ClientCompanyName    string   `json:"client_company_name" binding:"required,min=1,max=200"`
	InvoiceDate          string   `json:"invoice_date,omitempty"`
	StartDate            string   `json:"start_date" binding:"required"`
	EndDate              string   `json:"end_date" binding:"required"`
	CarIDs               []string `json:"car_ids,omitempty"`
	Subtotal             string   `json:"subtotal" binding:"required"`
	VATPercentage        string   `json:"vat_percentage"`
	Descriptions         []string `json:"descriptions,omitempty"`
}

// ApplyPaymentRequest represents the request body for recording a payment
// against an invoice.
type ApplyPaymentRequest struct {
	Amount        string `json:"amount" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,min=1,max=50"`
	AccountInfo   string `json:"account_info,omitempty" binding:"omitempty,max=200"`
	PaymentDate   string `json:"payment_date,omitempty"`
	Notes         string `json:"notes,omitempty" binding:"omitempty,max=500"`
	NotifyEmail   string `json:"notify_email,omitempty" binding:"omitempty,email"`
}

// PaymentResponse represents a recorded payment in API responses.
type PaymentResponse struct {
	Amount        string    `json:"amount"`
	ExcessAmount  string    `json:"excess_amount"`
	AppliedAmount string    `json:"applied_amount"`
	PaymentMethod string    `json:"payment_method"`
	AccountInfo   string    `json:"account_info,omitempty"`
	PaymentDate   time.Time `json:"payment_date"`
	Notes         string    `json:"notes,omitempty"`
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	ID                   string            `json:"id"`
	InvoiceNumber        string            `json:"invoice_number"`
	SenderCompanyName    string            `json:"sender_company_name"`
	SenderCompanyAddress string            `json:"sender_company_address,omitempty"`
	ClientCompanyName    string            `json:"client_company_name"`
	InvoiceDate          time.Time         `json:"invoice_date"`
	StartDate            time.Time         `json:"start_date"`
	EndDate              time.Time         `json:"end_date"`
	CarIDs               []string          `json:"car_ids"`
	Subtotal             string            `json:"subtotal"`
	VATPercentage        string            `json:"vat_percentage"`
	VATAmount            string            `json:"vat_amount"`
	TotalAmount          string            `json:"total_amount"`
	RemainingBalance     string            `json:"remaining_balance"`
	Descriptions         []string          `json:"descriptions"`
	IsActive             bool              `json:"is_active"`
	Payments             []PaymentResponse `json:"payments"`
	CreatedAt            time.Time         `json:"created_at"`
}

// InvoiceListResponse represents a paginated invoice listing.
type InvoiceListResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// ReceiptResponse represents a payment receipt in API responses.
type ReceiptResponse struct {
	ID                string    `json:"id"`
	ReceiptNumber     string    `json:"receipt_number"`
	InvoiceID         string    `json:"invoice_id"`
	InvoiceNumber     string    `json:"invoice_number"`
	SenderCompanyName string    `json:"sender_company_name"`
	ClientCompanyName string    `json:"client_company_name"`
	Amount            string    `json:"amount"`
	ExcessAmount      string    `json:"excess_amount"`
	PaymentMethod     string    `json:"payment_method"`
	PaymentDate       time.Time `json:"payment_date"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// ApplyPaymentResponse represents the result of recording a payment.
type ApplyPaymentResponse struct {
	Invoice      InvoiceResponse `json:"invoice"`
	Payment      PaymentResponse `json:"payment"`
	Receipt      ReceiptResponse `json:"receipt"`
	ExcessAmount string          `json:"excess_amount"`
}

// InvoiceDetailResponse represents an invoice with its receipts.
type InvoiceDetailResponse struct {
	Invoice  InvoiceResponse   `json:"invoice"`
	Receipts []ReceiptResponse `json:"receipts"`
}

// ToPaymentResponse converts a Payment value to its API representation.
func ToPaymentResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{
		Amount:        p.Amount.String(),
		ExcessAmount:  p.ExcessAmount.String(),
		AppliedAmount: p.Applied().String(),
		PaymentMethod: p.PaymentMethod,
		AccountInfo:   p.AccountInfo,
		PaymentDate:   p.PaymentDate,
		Notes:         p.Notes,
	}
}

// ToInvoiceResponse converts an Invoice entity to its API representation.
func ToInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	carIDs := make([]string, len(inv.CarIDs))
	for i, id := range inv.CarIDs {
		carIDs[i] = id.String()
	}

	payments := make([]PaymentResponse, len(inv.Payments))
	for i, p := range inv.Payments {
		payments[i] = ToPaymentResponse(p)
	}

	descriptions := inv.Descriptions
	if descriptions == nil {
		descriptions = []string{}
	}

	return InvoiceResponse{
		ID:                   inv.ID.String(),
		InvoiceNumber:        inv.InvoiceNumber,
		SenderCompanyName:    inv.SenderCompanyName,
		SenderCompanyAddress: inv.SenderCompanyAddress,
		ClientCompanyName:    inv.ClientCompanyName,
		InvoiceDate:          inv.InvoiceDate,
		StartDate:            inv.StartDate,
		EndDate:              inv.EndDate,
		CarIDs:               carIDs,
		Subtotal:             inv.Subtotal.String(),
		VATPercentage:        inv.VATPercentage.String(),
		VATAmount:            inv.VATAmount.String(),
		TotalAmount:          inv.TotalAmount.String(),
		RemainingBalance:     inv.RemainingBalance().String(),
		Descriptions:         descriptions,
		IsActive:             inv.IsActive,
		Payments:             payments,
		CreatedAt:            inv.CreatedAt,
	}
}

// ToReceiptResponse converts a Receipt entity to its API representation.
func ToReceiptResponse(r *entity.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:                r.ID.String(),
		ReceiptNumber:     r.ReceiptNumber,
		InvoiceID:         r.InvoiceID.String(),
		InvoiceNumber:     r.InvoiceNumber,
		SenderCompanyName: r.SenderCompanyName,
		ClientCompanyName: r.ClientCompanyName,
		Amount:            r.Amount.String(),
		ExcessAmount:      r.ExcessAmount.String(),
		PaymentMethod:     r.PaymentMethod,
		PaymentDate:       r.PaymentDate,
		Status:            string(r.Status),
		CreatedAt:         r.CreatedAt,
	}
}
