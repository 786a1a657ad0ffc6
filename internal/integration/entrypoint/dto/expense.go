package dto

import (
	"time"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for recording an expense.
// Exactly one of carrier_id or truck_id must be set.
type CreateExpenseRequest struct {
	Category  string `json:"category" binding:"required"`
	CarrierID string `json:"carrier_id,omitempty"`
	TruckID   string `json:"truck_id,omitempty"`

	Amount  string `json:"amount"`
	Details string `json:"details,omitempty" binding:"omitempty,max=500"`
	Date    string `json:"date" binding:"required"`

	Liters        string `json:"liters,omitempty"`
	PricePerLiter string `json:"price_per_liter,omitempty"`
	MeterReading  *int64 `json:"meter_reading,omitempty" binding:"omitempty,min=0"`
	DriverName    string `json:"driver_name,omitempty"`
}

// SuggestCategoryRequest represents the request body for an AI category
// suggestion.
type SuggestCategoryRequest struct {
	Type        string `json:"type" binding:"required,oneof=trip truck"`
	Description string `json:"description" binding:"required,min=1,max=500"`
}

// SuggestCategoryResponse represents a category suggestion.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID       string `json:"id"`
	Scope    string `json:"scope"`
	Category string `json:"category"`

	CarrierID *string `json:"carrier_id,omitempty"`
	TruckID   *string `json:"truck_id,omitempty"`

	Amount  string    `json:"amount"`
	Details string    `json:"details,omitempty"`
	Date    time.Time `json:"date"`

	Liters        *string `json:"liters,omitempty"`
	PricePerLiter *string `json:"price_per_liter,omitempty"`
	MeterReading  *int64  `json:"meter_reading,omitempty"`
	DriverName    string  `json:"driver_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ExpenseListResponse represents a paginated expense listing.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// ToExpenseResponse converts an Expense entity to its API representation.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:           e.ID.String(),
		Scope:        string(e.Scope),
		Category:     string(e.Category),
		Amount:       e.Amount.String(),
		Details:      e.Details,
		Date:         e.Date,
		MeterReading: e.MeterReading,
		DriverName:   e.DriverName,
		CreatedAt:    e.CreatedAt,
	}
	if e.CarrierID != nil {
		id := e.CarrierID.String()
		resp.CarrierID = &id
	}
	if e.TruckID != nil {
		id := e.TruckID.String()
		resp.TruckID = &id
	}
	if e.Liters != nil {
		liters := e.Liters.String()
		resp.Liters = &liters
	}
	if e.PricePerLiter != nil {
		price := e.PricePerLiter.String()
		resp.PricePerLiter = &price
	}
	return resp
}
