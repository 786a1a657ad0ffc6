package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CompanyModel represents the companies table in the database.
type CompanyModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_companies_user_name"`
	Name          string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_companies_user_name"`
	Address       string          `gorm:"type:text"`
	CreditBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DueBalance    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CompanyModel.
func (CompanyModel) TableName() string {
	return "companies"
}

// ToEntity converts a CompanyModel to a domain Company entity.
func (m *CompanyModel) ToEntity() *entity.Company {
	return &entity.Company{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Address:       m.Address,
		CreditBalance: m.CreditBalance,
		DueBalance:    m.DueBalance,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CompanyModelFromEntity creates a CompanyModel from a domain Company entity.
func CompanyModelFromEntity(company *entity.Company) *CompanyModel {
	return &CompanyModel{
		ID:            company.ID,
		UserID:        company.UserID,
		Name:          company.Name,
		Address:       company.Address,
		CreditBalance: company.CreditBalance,
		DueBalance:    company.DueBalance,
		CreatedAt:     company.CreatedAt,
		UpdatedAt:     company.UpdatedAt,
	}
}
