package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Car is a vehicle-transport line item billed to a company under a trip.
// CompanyName is a denormalized uppercase copy, not a Company reference.
type Car struct {
	ID          uuid.UUID
	CarrierID   uuid.UUID
	UserID      uuid.UUID
	StockNo     string
	Name        string
	Chassis     string
	Amount      decimal.Decimal
	CompanyName string
	Date        time.Time
	CreatedAt   time.Time
}

// NewCar creates a new Car entity under a trip carrier. The company name is
// normalized to uppercase on creation.
func NewCar(carrierID, userID uuid.UUID, stockNo, name, chassis, companyName string, amount decimal.Decimal, date time.Time) *Car {
	return &Car{
		ID:          uuid.New(),
		CarrierID:   carrierID,
		UserID:      userID,
		StockNo:     stockNo,
		Name:        name,
		Chassis:     chassis,
		Amount:      amount,
		CompanyName: strings.ToUpper(strings.TrimSpace(companyName)),
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
