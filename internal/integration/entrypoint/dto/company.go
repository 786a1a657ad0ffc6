package dto

import (
	"time"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// CreateCompanyRequest represents the request body for creating a company.
type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address,omitempty" binding:"omitempty,max=500"`
}

// SetCompanyCreditRequest represents the request body for overriding a
// company's credit balance.
type SetCompanyCreditRequest struct {
	CreditBalance string `json:"credit_balance" binding:"required"`
}

// CompanyResponse represents a company in API responses.
type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	CreditBalance string    `json:"credit_balance"`
	DueBalance    string    `json:"due_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// CompanyCreditResponse represents a company's credit with both the cached
// balance and the value recomputed from overpaid invoices.
type CompanyCreditResponse struct {
	Company        CompanyResponse `json:"company"`
	ComputedCredit string          `json:"computed_credit"`
	CachedCredit   string          `json:"cached_credit"`
}

// ToCompanyResponse converts a Company entity to its API representation.
func ToCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Address:       c.Address,
		CreditBalance: c.CreditBalance.String(),
		DueBalance:    c.DueBalance.String(),
		CreatedAt:     c.CreatedAt,
	}
}
