package adapter

import (
	"context"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

// SuggestionService defines the interface for AI-assisted categorization.
type SuggestionService interface {
	// SuggestExpenseCategory suggests a category for an expense based on
	// its description. Returns the suggested category and a confidence
	// score between 0 and 1.
	SuggestExpenseCategory(ctx context.Context, scope entity.ExpenseScope, description string) (entity.ExpenseCategory, float64, error)
}
