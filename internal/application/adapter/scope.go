// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/google/uuid"

// OwnerScope carries the caller's visibility over stored records. Repositories
// restrict queries to the caller's userId unless SuperAdmin is set.
type OwnerScope struct {
	UserID     uuid.UUID
	SuperAdmin bool
}

// Pagination defines offset/limit pagination options.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
