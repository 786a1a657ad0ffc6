package model

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database.
type InvoiceModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_user_number"`
	InvoiceNumber        string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_user_number"`
	SenderCompanyName    string    `gorm:"type:varchar(255)"`
	SenderCompanyAddress string    `gorm:"type:text"`
	ClientCompanyName    string    `gorm:"type:varchar(255);not null;index"`
	InvoiceDate          time.Time `gorm:"not null;index"`
	StartDate            time.Time
	EndDate              time.Time
	CarIDs               pq.StringArray  `gorm:"type:text[]"`
	Subtotal             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	VATPercentage        decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	VATAmount            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalAmount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Descriptions         pq.StringArray  `gorm:"type:text[]"`
	IsActive             bool            `gorm:"not null;default:true"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`

	Payments []PaymentModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToEntity converts an InvoiceModel to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	carIDs := make([]uuid.UUID, 0, len(m.CarIDs))
	for _, raw := range m.CarIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			slog.Warn("skipping malformed car id on invoice", "invoice_id", m.ID, "value", raw)
			continue
		}
		carIDs = append(carIDs, id)
	}

	payments := make([]entity.Payment, 0, len(m.Payments))
	for _, p := range m.Payments {
		payments = append(payments, p.ToEntity())
	}

	return &entity.Invoice{
		ID:                   m.ID,
		UserID:               m.UserID,
		InvoiceNumber:        m.InvoiceNumber,
		SenderCompanyName:    m.SenderCompanyName,
		SenderCompanyAddress: m.SenderCompanyAddress,
		ClientCompanyName:    m.ClientCompanyName,
		InvoiceDate:          m.InvoiceDate,
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
		CarIDs:               carIDs,
		Subtotal:             m.Subtotal,
		VATPercentage:        m.VATPercentage,
		VATAmount:            m.VATAmount,
		TotalAmount:          m.TotalAmount,
		Descriptions:         []string(m.Descriptions),
		IsActive:             m.IsActive,
		Payments:             payments,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// InvoiceModelFromEntity creates an InvoiceModel from a domain Invoice entity.
func InvoiceModelFromEntity(invoice *entity.Invoice) *InvoiceModel {
	carIDs := make(pq.StringArray, 0, len(invoice.CarIDs))
	for _, id := range invoice.CarIDs {
		carIDs = append(carIDs, id.String())
	}

	payments := make([]PaymentModel, 0, len(invoice.Payments))
	for i, p := range invoice.Payments {
		payments = append(payments, PaymentModelFromEntity(invoice.ID, i, p))
	}

	return &InvoiceModel{
		ID:                   invoice.ID,
		UserID:               invoice.UserID,
		InvoiceNumber:        invoice.InvoiceNumber,
		SenderCompanyName:    invoice.SenderCompanyName,
		SenderCompanyAddress: invoice.SenderCompanyAddress,
		ClientCompanyName:    invoice.ClientCompanyName,
		InvoiceDate:          invoice.InvoiceDate,
		StartDate:            invoice.StartDate,
		EndDate:              invoice.EndDate,
		CarIDs:               carIDs,
		Subtotal:             invoice.Subtotal,
		VATPercentage:        invoice.VATPercentage,
		VATAmount:            invoice.VATAmount,
		TotalAmount:          invoice.TotalAmount,
		Descriptions:         pq.StringArray(invoice.Descriptions),
		IsActive:             invoice.IsActive,
		Payments:             payments,
		CreatedAt:            invoice.CreatedAt,
		UpdatedAt:            invoice.UpdatedAt,
	}
}

// PaymentModel represents the invoice_payments table in the database.
// Position preserves the order payments were recorded in.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position      int             `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ExcessAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	AccountInfo   string          `gorm:"type:varchar(255)"`
	PaymentDate   time.Time       `gorm:"not null"`
	Notes         string          `gorm:"type:text"`
	RecordedBy    uuid.UUID       `gorm:"type:uuid"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "invoice_payments"
}

// ToEntity converts a PaymentModel to a domain Payment value.
func (m *PaymentModel) ToEntity() entity.Payment {
	return entity.Payment{
		Amount:        m.Amount,
		ExcessAmount:  m.ExcessAmount,
		PaymentMethod: m.PaymentMethod,
		AccountInfo:   m.AccountInfo,
		PaymentDate:   m.PaymentDate,
		Notes:         m.Notes,
		RecordedBy:    m.RecordedBy,
	}
}

// PaymentModelFromEntity creates a PaymentModel from a domain Payment value.
func PaymentModelFromEntity(invoiceID uuid.UUID, position int, p entity.Payment) PaymentModel {
	return PaymentModel{
		ID:            uuid.New(),
		InvoiceID:     invoiceID,
		Position:      position,
		Amount:        p.Amount,
		ExcessAmount:  p.ExcessAmount,
		PaymentMethod: p.PaymentMethod,
		AccountInfo:   p.AccountInfo,
		PaymentDate:   p.PaymentDate,
		Notes:         p.Notes,
		RecordedBy:    p.RecordedBy,
		CreatedAt:     time.Now().UTC(),
	}
}

// ReceiptModel represents the receipts table in the database.
type ReceiptModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReceiptNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_receipts_user_number"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_receipts_user_number"`
	InvoiceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentIndex  int       `gorm:"not null"`

	SenderCompanyName string          `gorm:"type:varchar(255)"`
	ClientCompanyName string          `gorm:"type:varchar(255)"`
	InvoiceNumber     string          `gorm:"type:varchar(50)"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ExcessAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PaymentMethod     string          `gorm:"type:varchar(50)"`
	PaymentDate       time.Time       `gorm:"not null"`

	Status    string    `gorm:"type:varchar(20);not null;default:'generated'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ReceiptModel.
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToEntity converts a ReceiptModel to a domain Receipt entity.
func (m *ReceiptModel) ToEntity() *entity.Receipt {
	return &entity.Receipt{
		ID:                m.ID,
		ReceiptNumber:     m.ReceiptNumber,
		InvoiceID:         m.InvoiceID,
		PaymentIndex:      m.PaymentIndex,
		SenderCompanyName: m.SenderCompanyName,
		ClientCompanyName: m.ClientCompanyName,
		InvoiceNumber:     m.InvoiceNumber,
		Amount:            m.Amount,
		ExcessAmount:      m.ExcessAmount,
		PaymentMethod:     m.PaymentMethod,
		PaymentDate:       m.PaymentDate,
		Status:            entity.ReceiptStatus(m.Status),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ReceiptModelFromEntity creates a ReceiptModel from a domain Receipt entity.
func ReceiptModelFromEntity(userID uuid.UUID, receipt *entity.Receipt) *ReceiptModel {
	return &ReceiptModel{
		ID:                receipt.ID,
		ReceiptNumber:     receipt.ReceiptNumber,
		UserID:            userID,
		InvoiceID:         receipt.InvoiceID,
		PaymentIndex:      receipt.PaymentIndex,
		SenderCompanyName: receipt.SenderCompanyName,
		ClientCompanyName: receipt.ClientCompanyName,
		InvoiceNumber:     receipt.InvoiceNumber,
		Amount:            receipt.Amount,
		ExcessAmount:      receipt.ExcessAmount,
		PaymentMethod:     receipt.PaymentMethod,
		PaymentDate:       receipt.PaymentDate,
		Status:            string(receipt.Status),
		CreatedAt:         receipt.CreatedAt,
		UpdatedAt:         receipt.UpdatedAt,
	}
}
