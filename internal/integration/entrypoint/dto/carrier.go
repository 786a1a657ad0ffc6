package dto

import (
	"time"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CreateCarrierRequest represents the request body for creating a carrier.
type CreateCarrierRequest struct {
	Type       string `json:"type" binding:"required,oneof=trip company"`
	TripNumber string `json:"trip_number"`
	Name       string `json:"name" binding:"required,min=1,max=200"`
	Date       string `json:"date" binding:"required"`
	TruckID    string `json:"truck_id,omitempty"`

	CarrierName string `json:"carrier_name,omitempty"`
	DriverName  string `json:"driver_name,omitempty"`
	Details     string `json:"details,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateCarrierRequest represents the request body for updating a carrier.
// Absent fields are left untouched.
type UpdateCarrierRequest struct {
	TripNumber  *string `json:"trip_number,omitempty"`
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Date        *string `json:"date,omitempty"`
	TruckID     *string `json:"truck_id,omitempty"`
	CarrierName *string `json:"carrier_name,omitempty"`
	DriverName  *string `json:"driver_name,omitempty"`
	Details     *string `json:"details,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ToggleCarrierActiveRequest represents the request body for toggling a
// carrier's active flag.
type ToggleCarrierActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// CarrierResponse represents a carrier in API responses.
type CarrierResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	TripNumber   string    `json:"trip_number,omitempty"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	TotalExpense string    `json:"total_expense"`
	Active       bool      `json:"active"`
	TruckID      *string   `json:"truck_id,omitempty"`
	CarrierName  string    `json:"carrier_name,omitempty"`
	DriverName   string    `json:"driver_name,omitempty"`
	Details      string    `json:"details,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CarrierWithStatsResponse represents a carrier with its cars and read-time
// aggregates.
type CarrierWithStatsResponse struct {
	CarrierResponse
	OwnerName   string        `json:"owner_name,omitempty"`
	Cars        []CarResponse `json:"cars"`
	CarCount    int           `json:"car_count"`
	TotalAmount string        `json:"total_amount"`
	Profit      string        `json:"profit"`
}

// CarrierListResponse represents a paginated carrier listing.
type CarrierListResponse struct {
	Carriers   []CarrierWithStatsResponse `json:"carriers"`
	Total      int64                      `json:"total"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
	TotalPages int                        `json:"total_pages"`
}

// CreateCarRequest represents the request body for adding a car to a trip.
type CreateCarRequest struct {
	StockNo     string `json:"stock_no" binding:"required,min=1,max=50"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Chassis     string `json:"chassis,omitempty"`
	Amount      string `json:"amount" binding:"required"`
	CompanyName string `json:"company_name" binding:"required,min=1,max=200"`
	Date        string `json:"date" binding:"required"`
}

// BulkCreateCarsRequest represents the request body for adding several cars
// in one call.
type BulkCreateCarsRequest struct {
	Cars []CreateCarRequest `json:"cars" binding:"required,min=1,dive"`
}

// CarResponse represents a car in API responses.
type CarResponse struct {
	ID          string    `json:"id"`
	CarrierID   string    `json:"carrier_id"`
	StockNo     string    `json:"stock_no"`
	Name        string    `json:"name"`
	Chassis     string    `json:"chassis,omitempty"`
	Amount      string    `json:"amount"`
	CompanyName string    `json:"company_name"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCarrierResponse converts a Carrier entity to its API representation.
func ToCarrierResponse(carrier *entity.Carrier) CarrierResponse {
	resp := CarrierResponse{
		ID:           carrier.ID.String(),
		Type:         string(carrier.Type),
		TripNumber:   carrier.TripNumber,
		Name:         carrier.Name,
		Date:         carrier.Date,
		TotalExpense: carrier.TotalExpense.String(),
		Active:       carrier.Active.IsActive(),
		CarrierName:  carrier.CarrierName,
		DriverName:   carrier.DriverName,
		Details:      carrier.Details,
		Notes:        carrier.Notes,
		CreatedAt:    carrier.CreatedAt,
	}
	if carrier.TruckID != nil {
		truckID := carrier.TruckID.String()
		resp.TruckID = &truckID
	}
	return resp
}

// ToCarResponse converts a Car entity to its API representation.
func ToCarResponse(car *entity.Car) CarResponse {
	return CarResponse{
		ID:          car.ID.String(),
		CarrierID:   car.CarrierID.String(),
		StockNo:     car.StockNo,
		Name:        car.Name,
		Chassis:     car.Chassis,
		Amount:      car.Amount.String(),
		CompanyName: car.CompanyName,
		Date:        car.Date,
		CreatedAt:   car.CreatedAt,
	}
}

// ToCarrierListResponse converts a carrier listing result to its API
// representation.
func ToCarrierListResponse(result *entity.CarrierListResult) CarrierListResponse {
	carriers := make([]CarrierWithStatsResponse, len(result.Carriers))
	for i, cws := range result.Carriers {
		cars := make([]CarResponse, len(cws.Cars))
		for j, car := range cws.Cars {
			cars[j] = ToCarResponse(car)
		}
		carriers[i] = CarrierWithStatsResponse{
			CarrierResponse: ToCarrierResponse(cws.Carrier),
			OwnerName:       cws.OwnerName,
			Cars:            cars,
			CarCount:        cws.CarCount,
			TotalAmount:     cws.TotalAmount.String(),
			Profit:          cws.Profit.String(),
		}
	}
	return CarrierListResponse{
		Carriers:   carriers,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}
