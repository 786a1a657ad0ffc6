package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CarrierModel represents the carriers table in the database. IsActive is
// nullable: rows written before the flag existed carry NULL and are treated
// as active by the filters.
type CarrierModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(10);not null;index"`
	TripNumber   string          `gorm:"type:varchar(50);index"`
	Name         string          `gorm:"type:varchar(255);index"`
	Date         time.Time       `gorm:"not null;index"`
	TotalExpense decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IsActive     *bool           `gorm:"index"`
	TruckID      *uuid.UUID      `gorm:"type:uuid;index"`
	CarrierName  string          `gorm:"type:varchar(255)"`
	DriverName   string          `gorm:"type:varchar(255)"`
	Details      string          `gorm:"type:text"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	Cars []CarModel `gorm:"foreignKey:CarrierID;references:ID"`
}

// TableName returns the table name for the CarrierModel.
func (CarrierModel) TableName() string {
	return "carriers"
}

// ToEntity converts a CarrierModel to a domain Carrier entity.
func (m *CarrierModel) ToEntity() *entity.Carrier {
	return &entity.Carrier{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.CarrierType(m.Type),
		TripNumber:   m.TripNumber,
		Name:         m.Name,
		Date:         m.Date,
		TotalExpense: m.TotalExpense,
		Active:       entity.ActiveStateFromPtr(m.IsActive),
		TruckID:      m.TruckID,
		CarrierName:  m.CarrierName,
		DriverName:   m.DriverName,
		Details:      m.Details,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CarrierModelFromEntity creates a CarrierModel from a domain Carrier entity.
func CarrierModelFromEntity(carrier *entity.Carrier) *CarrierModel {
	return &CarrierModel{
		ID:           carrier.ID,
		UserID:       carrier.UserID,
		Type:         string(carrier.Type),
		TripNumber:   carrier.TripNumber,
		Name:         carrier.Name,
		Date:         carrier.Date,
		TotalExpense: carrier.TotalExpense,
		IsActive:     carrier.Active.Ptr(),
		TruckID:      carrier.TruckID,
		CarrierName:  carrier.CarrierName,
		DriverName:   carrier.DriverName,
		Details:      carrier.Details,
		Notes:        carrier.Notes,
		CreatedAt:    carrier.CreatedAt,
		UpdatedAt:    carrier.UpdatedAt,
	}
}

// CarModel represents the cars table in the database.
type CarModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CarrierID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockNo     string          `gorm:"type:varchar(50);index"`
	Name        string          `gorm:"type:varchar(255)"`
	Chassis     string          `gorm:"type:varchar(100);index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CompanyName string          `gorm:"type:varchar(255);index"`
	Date        time.Time       `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CarModel.
func (CarModel) TableName() string {
	return "cars"
}

// ToEntity converts a CarModel to a domain Car entity.
func (m *CarModel) ToEntity() *entity.Car {
	return &entity.Car{
		ID:          m.ID,
		CarrierID:   m.CarrierID,
		UserID:      m.UserID,
		StockNo:     m.StockNo,
		Name:        m.Name,
		Chassis:     m.Chassis,
		Amount:      m.Amount,
		CompanyName: m.CompanyName,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// CarModelFromEntity creates a CarModel from a domain Car entity.
func CarModelFromEntity(car *entity.Car) *CarModel {
	return &CarModel{
		ID:          car.ID,
		CarrierID:   car.CarrierID,
		UserID:      car.UserID,
		StockNo:     car.StockNo,
		Name:        car.Name,
		Chassis:     car.Chassis,
		Amount:      car.Amount,
		CompanyName: car.CompanyName,
		Date:        car.Date,
		CreatedAt:   car.CreatedAt,
	}
}
