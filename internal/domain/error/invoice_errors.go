package error

import "errors"

// Invoice, payment and receipt domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvoiceNumberTaken is returned when an invoice number collides.
	ErrInvoiceNumberTaken = errors.New("an invoice with this number already exists")

	// ErrInvalidPaymentAmount is returned when a payment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrPaymentNotFound is returned when a payment index is out of range.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrReceiptNotFound is returned when a receipt is not found.
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrReceiptNumberTaken is returned when a receipt number collides.
	ErrReceiptNumberTaken = errors.New("a receipt with this number already exists")
)
