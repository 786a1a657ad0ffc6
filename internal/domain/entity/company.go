package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company represents a client company billed through invoices. Name is stored
// uppercase and is unique per owning user. CreditBalance and DueBalance are
// maintained caches; the invoice payment history is the source of truth.
type Company struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Address       string
	CreditBalance decimal.Decimal
	DueBalance    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCompany creates a new Company entity with zero balances.
func NewCompany(userID uuid.UUID, name, address string) *Company {
	now := time.Now().UTC()
	return &Company{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.ToUpper(strings.TrimSpace(name)),
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddCredit increases the company's credit balance by amount.
func (c *Company) AddCredit(amount decimal.Decimal) {
	c.CreditBalance = c.CreditBalance.Add(amount)
	c.UpdatedAt = time.Now().UTC()
}

// ReduceDue decreases the due balance by amount, clamping at zero. DueBalance
// is a cache and must never go negative.
func (c *Company) ReduceDue(amount decimal.Decimal) {
	c.DueBalance = c.DueBalance.Sub(amount)
	if c.DueBalance.IsNegative() {
		c.DueBalance = decimal.Zero
	}
	c.UpdatedAt = time.Now().UTC()
}

// AddDue increases the due balance by amount.
func (c *Company) AddDue(amount decimal.Decimal) {
	c.DueBalance = c.DueBalance.Add(amount)
	c.UpdatedAt = time.Now().UTC()
}
