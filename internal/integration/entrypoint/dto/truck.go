package dto

import (
	"time"

	"github.com/freight-ledger/backend/internal/application/usecase/truck"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CreateTruckRequest represents the request body for registering a truck.
type CreateTruckRequest struct {
	Name                string   `json:"name" binding:"required,min=1,max=100"`
	Number              string   `json:"number" binding:"required,min=1,max=50"`
	Drivers             []string `json:"drivers,omitempty"`
	CurrentMeterReading int64    `json:"current_meter_reading" binding:"min=0"`
	MaintenanceInterval int64    `json:"maintenance_interval" binding:"required,min=1"`
	LastMaintenanceKm   int64    `json:"last_maintenance_km" binding:"min=0"`
}

// UpdateTruckRequest represents the request body for updating a truck.
// Absent fields are left untouched.
type UpdateTruckRequest struct {
	Name                *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Drivers             []string `json:"drivers,omitempty"`
	CurrentMeterReading *int64   `json:"current_meter_reading,omitempty" binding:"omitempty,min=0"`
	MaintenanceInterval *int64   `json:"maintenance_interval,omitempty" binding:"omitempty,min=1"`
	LastMaintenanceKm   *int64   `json:"last_maintenance_km,omitempty" binding:"omitempty,min=0"`
	LastMaintenanceDate *string  `json:"last_maintenance_date,omitempty"`
}

// TruckResponse represents a truck with its maintenance status in API
// responses.
type TruckResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Number              string     `json:"number"`
	Drivers             []string   `json:"drivers"`
	CurrentMeterReading int64      `json:"current_meter_reading"`
	MaintenanceInterval int64      `json:"maintenance_interval"`
	LastMaintenanceKm   int64      `json:"last_maintenance_km"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date,omitempty"`
	Status              string     `json:"status,omitempty"`
	NextMaintenanceKm   int64      `json:"next_maintenance_km,omitempty"`
	KmsRemaining        int64      `json:"kms_remaining,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// ToTruckResponse converts a Truck entity to its API representation.
func ToTruckResponse(t *entity.Truck) TruckResponse {
	drivers := t.Drivers
	if drivers == nil {
		drivers = []string{}
	}
	return TruckResponse{
		ID:                  t.ID.String(),
		Name:                t.Name,
		Number:              t.Number,
		Drivers:             drivers,
		CurrentMeterReading: t.CurrentMeterReading,
		MaintenanceInterval: t.MaintenanceInterval,
		LastMaintenanceKm:   t.LastMaintenanceKm,
		LastMaintenanceDate: t.LastMaintenanceDate,
		CreatedAt:           t.CreatedAt,
	}
}

// ToTruckWithStatusResponse converts a truck with derived maintenance status
// to its API representation.
func ToTruckWithStatusResponse(tws truck.TruckWithStatus) TruckResponse {
	resp := ToTruckResponse(&tws.Truck)
	resp.Status = string(tws.Status)
	resp.NextMaintenanceKm = tws.NextMaintenanceKm
	resp.KmsRemaining = tws.KmsRemaining
	return resp
}
