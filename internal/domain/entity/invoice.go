package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is a single payment recorded against an invoice. ExcessAmount is
// the part of Amount that exceeded the invoice's remaining balance at the
// time of payment; it is diverted to the client company's credit balance.
type Payment struct {
	Amount        decimal.Decimal
	ExcessAmount  decimal.Decimal
	PaymentMethod string
	AccountInfo   string
	PaymentDate   time.Time
	Notes         string
	RecordedBy    uuid.UUID
}

// Applied returns the part of the payment that settled invoice balance.
func (p Payment) Applied() decimal.Decimal {
	return p.Amount.Sub(p.ExcessAmount)
}

// Invoice represents a client invoice over a set of transported cars.
// InvoiceNumber follows INV-YYYYMMDD-NNN, sequential per day.
type Invoice struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	InvoiceNumber        string
	SenderCompanyName    string
	SenderCompanyAddress string
	ClientCompanyName    string
	InvoiceDate          time.Time
	StartDate            time.Time
	EndDate              time.Time
	CarIDs               []uuid.UUID
	Subtotal             decimal.Decimal
	VATPercentage        decimal.Decimal
	VATAmount            decimal.Decimal
	TotalAmount          decimal.Decimal
	Descriptions         []string
	IsActive             bool
	Payments             []Payment
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewInvoice creates a new Invoice entity. VAT amount and total are derived
// from the subtotal and VAT percentage.
func NewInvoice(userID uuid.UUID, invoiceNumber, senderName, senderAddress, clientName string, invoiceDate, startDate, endDate time.Time, carIDs []uuid.UUID, subtotal, vatPercentage decimal.Decimal, descriptions []string) *Invoice {
	now := time.Now().UTC()
	vatAmount := subtotal.Mul(vatPercentage).Div(decimal.NewFromInt(100))
	return &Invoice{
		ID:                   uuid.New(),
		UserID:               userID,
		InvoiceNumber:        invoiceNumber,
		SenderCompanyName:    senderName,
		SenderCompanyAddress: senderAddress,
		ClientCompanyName:    clientName,
		InvoiceDate:          invoiceDate,
		StartDate:            startDate,
		EndDate:              endDate,
		CarIDs:               carIDs,
		Subtotal:             subtotal,
		VATPercentage:        vatPercentage,
		VATAmount:            vatAmount,
		TotalAmount:          subtotal.Add(vatAmount),
		Descriptions:         descriptions,
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// RemainingBalance returns totalAmount minus the applied portion of every
// payment. A negative result means the invoice is overpaid.
func (i *Invoice) RemainingBalance() decimal.Decimal {
	remaining := i.TotalAmount
	for _, p := range i.Payments {
		remaining = remaining.Sub(p.Applied())
	}
	return remaining
}
