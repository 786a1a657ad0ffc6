package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptStatus represents the lifecycle of a generated receipt.
type ReceiptStatus string

const (
	ReceiptStatusGenerated ReceiptStatus = "generated"
	ReceiptStatusSent      ReceiptStatus = "sent"
	ReceiptStatusArchived  ReceiptStatus = "archived"
)

// Receipt is a denormalized snapshot of a payment at the time it was
// recorded. ReceiptNumber follows RCP-YYYYMMDD-NNN, sequential per day.
type Receipt struct {
	ID            uuid.UUID
	ReceiptNumber string
	InvoiceID     uuid.UUID
	PaymentIndex  int

	SenderCompanyName string
	ClientCompanyName string
	InvoiceNumber     string
	Amount            decimal.Decimal
	ExcessAmount      decimal.Decimal
	PaymentMethod     string
	PaymentDate       time.Time

	Status    ReceiptStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReceipt creates a receipt snapshot for the payment at paymentIndex.
func NewReceipt(receiptNumber string, invoice *Invoice, paymentIndex int) *Receipt {
	now := time.Now().UTC()
	p := invoice.Payments[paymentIndex]
	return &Receipt{
		ID:                uuid.New(),
		ReceiptNumber:     receiptNumber,
		InvoiceID:         invoice.ID,
		PaymentIndex:      paymentIndex,
		SenderCompanyName: invoice.SenderCompanyName,
		ClientCompanyName: invoice.ClientCompanyName,
		InvoiceNumber:     invoice.InvoiceNumber,
		Amount:            p.Amount,
		ExcessAmount:      p.ExcessAmount,
		PaymentMethod:     p.PaymentMethod,
		PaymentDate:       p.PaymentDate,
		Status:            ReceiptStatusGenerated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// MarkSent marks the receipt as delivered to the client.
func (r *Receipt) MarkSent() {
	r.Status = ReceiptStatusSent
	r.UpdatedAt = time.Now().UTC()
}
