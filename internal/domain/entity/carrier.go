package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarrierType discriminates trip records from client-company groupings.
type CarrierType string

const (
	CarrierTypeTrip    CarrierType = "trip"
	CarrierTypeCompany CarrierType = "company"
)

// ActiveState models the backward-compatible tri-state active flag. Carriers
// created before the flag existed have no stored value; those must behave as
// active under the Active filter and never match the Inactive filter.
type ActiveState string

const (
	ActiveStateActive      ActiveState = "active"
	ActiveStateInactive    ActiveState = "inactive"
	ActiveStateLegacyUnset ActiveState = "legacy_unset"
)

// ActiveStateFromPtr converts a nullable stored flag to an ActiveState.
func ActiveStateFromPtr(v *bool) ActiveState {
	switch {
	case v == nil:
		return ActiveStateLegacyUnset
	case *v:
		return ActiveStateActive
	default:
		return ActiveStateInactive
	}
}

// Ptr converts the state back to the nullable stored representation.
func (s ActiveState) Ptr() *bool {
	switch s {
	case ActiveStateActive:
		v := true
		return &v
	case ActiveStateInactive:
		v := false
		return &v
	default:
		return nil
	}
}

// IsActive reports whether the state behaves as active. LegacyUnset coerces
// to active.
func (s ActiveState) IsActive() bool {
	return s != ActiveStateInactive
}

// Carrier represents a freight trip or a client-company grouping. Despite the
// name it has nothing to do with network carriers.
type Carrier struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         CarrierType
	TripNumber   string // trips only; unique per owner when set
	Name         string // companies only
	Date         time.Time
	TotalExpense decimal.Decimal
	Active       ActiveState
	TruckID      *uuid.UUID

	// Legacy free-text fields carried over from older records.
	CarrierName string
	DriverName  string
	Details     string
	Notes       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTripCarrier creates a new trip-type Carrier owned by userID.
func NewTripCarrier(userID uuid.UUID, tripNumber string, date time.Time) *Carrier {
	now := time.Now().UTC()
	return &Carrier{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       CarrierTypeTrip,
		TripNumber: tripNumber,
		Date:       date,
		Active:     ActiveStateActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewCompanyCarrier creates a new company-type Carrier owned by userID.
func NewCompanyCarrier(userID uuid.UUID, name string, date time.Time) *Carrier {
	now := time.Now().UTC()
	return &Carrier{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      CarrierTypeCompany,
		Name:      name,
		Date:      date,
		Active:    ActiveStateActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CarrierWithStats is a carrier annotated with its matching cars and the
// aggregates derived from them at read time.
type CarrierWithStats struct {
	Carrier     *Carrier
	OwnerName   string // populated for super admin listings only
	Cars        []*Car
	CarCount    int
	TotalAmount decimal.Decimal
	Profit      decimal.Decimal
}

// CarrierListResult represents the result of an aggregated carrier listing.
type CarrierListResult struct {
	Carriers   []*CarrierWithStats
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
