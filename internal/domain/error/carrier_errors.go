package error

import "errors"

// Carrier and car domain errors.
var (
	// ErrCarrierNotFound is returned when a carrier is not found.
	ErrCarrierNotFound = errors.New("carrier not found")

	// ErrTripNumberTaken is returned when a trip number already exists for the owner.
	ErrTripNumberTaken = errors.New("a trip with this number already exists")

	// ErrNotATripCarrier is returned when a car is attached to a non-trip carrier.
	ErrNotATripCarrier = errors.New("cars can only be added to trip carriers")

	// ErrCarNotFound is returned when a car is not found.
	ErrCarNotFound = errors.New("car not found")

	// ErrNotCarrierOwner is returned when a non-owner modifies someone else's carrier.
	ErrNotCarrierOwner = errors.New("not authorized to modify carrier")

	// ErrInvalidCarrierType is returned when the carrier type is unrecognized.
	ErrInvalidCarrierType = errors.New("invalid carrier type")
)
