package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Scope    string    `gorm:"type:varchar(10);not null;index"`
	Category string    `gorm:"type:varchar(30);not null;index"`

	CarrierID *uuid.UUID `gorm:"type:uuid;index"`
	TruckID   *uuid.UUID `gorm:"type:uuid;index"`

	Amount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Details string          `gorm:"type:text"`
	Date    time.Time       `gorm:"not null;index"`

	Liters        *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PricePerLiter *decimal.Decimal `gorm:"type:decimal(10,3)"`
	MeterReading  *int64
	DriverName    string `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		UserID:        m.UserID,
		Scope:         entity.ExpenseScope(m.Scope),
		Category:      entity.ExpenseCategory(m.Category),
		CarrierID:     m.CarrierID,
		TruckID:       m.TruckID,
		Amount:        m.Amount,
		Details:       m.Details,
		Date:          m.Date,
		Liters:        m.Liters,
		PricePerLiter: m.PricePerLiter,
		MeterReading:  m.MeterReading,
		DriverName:    m.DriverName,
		CreatedAt:     m.CreatedAt,
	}
}

// ExpenseModelFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseModelFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		UserID:        expense.UserID,
		Scope:         string(expense.Scope),
		Category:      string(expense.Category),
		CarrierID:     expense.CarrierID,
		TruckID:       expense.TruckID,
		Amount:        expense.Amount,
		Details:       expense.Details,
		Date:          expense.Date,
		Liters:        expense.Liters,
		PricePerLiter: expense.PricePerLiter,
		MeterReading:  expense.MeterReading,
		DriverName:    expense.DriverName,
		CreatedAt:     expense.CreatedAt,
	}
}
