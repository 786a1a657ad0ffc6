package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceStatus represents the derived maintenance state of a truck.
type MaintenanceStatus string

const (
	MaintenanceStatusOK      MaintenanceStatus = "ok"
	MaintenanceStatusDueSoon MaintenanceStatus = "due_soon"
	MaintenanceStatusOverdue MaintenanceStatus = "overdue"
)

// dueSoonThresholdKm is the remaining distance below which a truck is
// reported as due for maintenance soon.
const dueSoonThresholdKm = 500

// Truck represents a fleet truck with its maintenance bookkeeping.
type Truck struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	Number              string
	Drivers             []string
	CurrentMeterReading int64
	MaintenanceInterval int64
	LastMaintenanceKm   int64
	LastMaintenanceDate *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewTruck creates a new Truck entity.
func NewTruck(userID uuid.UUID, name, number string, drivers []string, currentMeterReading, maintenanceInterval, lastMaintenanceKm int64) *Truck {
	now := time.Now().UTC()
	return &Truck{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                name,
		Number:              number,
		Drivers:             drivers,
		CurrentMeterReading: currentMeterReading,
		MaintenanceInterval: maintenanceInterval,
		LastMaintenanceKm:   lastMaintenanceKm,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// NextMaintenanceKm returns the odometer reading at which the next
// maintenance is due.
func (t *Truck) NextMaintenanceKm() int64 {
	return t.LastMaintenanceKm + t.MaintenanceInterval
}

// KmsRemaining returns the distance left before the next maintenance.
// Negative values mean the truck is overdue.
func (t *Truck) KmsRemaining() int64 {
	return t.NextMaintenanceKm() - t.CurrentMeterReading
}

// Status derives the maintenance status from the meter readings.
func (t *Truck) Status() MaintenanceStatus {
	remaining := t.KmsRemaining()
	switch {
	case remaining <= 0:
		return MaintenanceStatusOverdue
	case remaining <= dueSoonThresholdKm:
		return MaintenanceStatusDueSoon
	default:
		return MaintenanceStatusOK
	}
}
