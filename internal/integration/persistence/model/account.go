package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_accounts_user_slug"`
	Title          string          `gorm:"type:varchar(100);not null"`
	Slug           string          `gorm:"type:varchar(120);not null;uniqueIndex:idx_accounts_user_slug"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency       string          `gorm:"type:varchar(10);not null;default:'AED'"`
	CurrencySymbol string          `gorm:"type:varchar(10)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:             m.ID,
		UserID:         m.UserID,
		Title:          m.Title,
		Slug:           m.Slug,
		InitialBalance: m.InitialBalance,
		CurrentBalance: m.CurrentBalance,
		Currency:       m.Currency,
		CurrencySymbol: m.CurrencySymbol,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// AccountModelFromEntity creates an AccountModel from a domain Account entity.
func AccountModelFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:             account.ID,
		UserID:         account.UserID,
		Title:          account.Title,
		Slug:           account.Slug,
		InitialBalance: account.InitialBalance,
		CurrentBalance: account.CurrentBalance,
		Currency:       account.Currency,
		CurrencySymbol: account.CurrencySymbol,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

// LedgerEntryModel represents the ledger_entries table in the database.
type LedgerEntryModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Date           time.Time        `gorm:"not null;index"`
	Details        string           `gorm:"type:text"`
	Credit         decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Debit          decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Destination    string           `gorm:"type:varchar(255)"`
	RateOfExchange *decimal.Decimal `gorm:"type:decimal(15,6)"`
	CreatedAt      time.Time        `gorm:"not null"`

	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:             m.ID,
		AccountID:      m.AccountID,
		Date:           m.Date,
		Details:        m.Details,
		Credit:         m.Credit,
		Debit:          m.Debit,
		Destination:    m.Destination,
		RateOfExchange: m.RateOfExchange,
		CreatedAt:      m.CreatedAt,
	}
}

// LedgerEntryModelFromEntity creates a LedgerEntryModel from a domain entity.
func LedgerEntryModelFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:             entry.ID,
		AccountID:      entry.AccountID,
		Date:           entry.Date,
		Details:        entry.Details,
		Credit:         entry.Credit,
		Debit:          entry.Debit,
		Destination:    entry.Destination,
		RateOfExchange: entry.RateOfExchange,
		CreatedAt:      entry.CreatedAt,
	}
}
