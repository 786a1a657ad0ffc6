package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// TruckModel represents the trucks table in the database.
type TruckModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_trucks_user_number"`
	Name                string         `gorm:"type:varchar(100);not null"`
	Number              string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_trucks_user_number"`
	Drivers             pq.StringArray `gorm:"type:text[]"`
	CurrentMeterReading int64          `gorm:"not null;default:0"`
	MaintenanceInterval int64          `gorm:"not null;default:0"`
	LastMaintenanceKm   int64          `gorm:"not null;default:0"`
	LastMaintenanceDate sql.NullTime
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the TruckModel.
func (TruckModel) TableName() string {
	return "trucks"
}

// ToEntity converts a TruckModel to a domain Truck entity.
func (m *TruckModel) ToEntity() *entity.Truck {
	var lastMaintenanceDate *time.Time
	if m.LastMaintenanceDate.Valid {
		lastMaintenanceDate = &m.LastMaintenanceDate.Time
	}

	return &entity.Truck{
		ID:                  m.ID,
		UserID:              m.UserID,
		Name:                m.Name,
		Number:              m.Number,
		Drivers:             []string(m.Drivers),
		CurrentMeterReading: m.CurrentMeterReading,
		MaintenanceInterval: m.MaintenanceInterval,
		LastMaintenanceKm:   m.LastMaintenanceKm,
		LastMaintenanceDate: lastMaintenanceDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// TruckModelFromEntity creates a TruckModel from a domain Truck entity.
func TruckModelFromEntity(truck *entity.Truck) *TruckModel {
	var lastMaintenanceDate sql.NullTime
	if truck.LastMaintenanceDate != nil {
		lastMaintenanceDate = sql.NullTime{Time: *truck.LastMaintenanceDate, Valid: true}
	}

	return &TruckModel{
		ID:                  truck.ID,
		UserID:              truck.UserID,
		Name:                truck.Name,
		Number:              truck.Number,
		Drivers:             pq.StringArray(truck.Drivers),
		CurrentMeterReading: truck.CurrentMeterReading,
		MaintenanceInterval: truck.MaintenanceInterval,
		LastMaintenanceKm:   truck.LastMaintenanceKm,
		LastMaintenanceDate: lastMaintenanceDate,
		CreatedAt:           truck.CreatedAt,
		UpdatedAt:           truck.UpdatedAt,
	}
}
