package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

type stubSuggestionService struct {
	category   entity.ExpenseCategory
	confidence float64
	err        error
}

func (s *stubSuggestionService) SuggestExpenseCategory(_ context.Context, _ entity.ExpenseScope, _ string) (entity.ExpenseCategory, float64, error) {
	return s.category, s.confidence, s.err
}

func TestSuggestCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("uses service suggestion when valid", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&stubSuggestionService{
			category:   entity.ExpenseCategoryFuel,
			confidence: 0.92,
		})
		out, err := uc.Execute(ctx, SuggestCategoryInput{
			Type:        entity.ExpenseScopeTrip,
			Description: "filled up at the border station",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.Category != entity.ExpenseCategoryFuel {
			t.Errorf("category = %s, want fuel", out.Category)
		}
		if out.Confidence != 0.92 {
			t.Errorf("confidence = %f, want 0.92", out.Confidence)
		}
	})

	t.Run("falls back to keywords when service fails", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&stubSuggestionService{err: errors.New("quota exceeded")})
		out, err := uc.Execute(ctx, SuggestCategoryInput{
			Type:        entity.ExpenseScopeTruck,
			Description: "new tyres for the front axle",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.Category != entity.ExpenseCategoryTyre {
			t.Errorf("category = %s, want tyre", out.Category)
		}
	})

	t.Run("rejects service suggestion invalid for scope", func(t *testing.T) {
		// Maintenance is not a trip category, so the fallback must run.
		uc := NewSuggestCategoryUseCase(&stubSuggestionService{
			category:   entity.ExpenseCategoryMaintenance,
			confidence: 0.99,
		})
		out, err := uc.Execute(ctx, SuggestCategoryInput{
			Type:        entity.ExpenseScopeTrip,
			Description: "paid the toll gate",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.Category != entity.ExpenseCategoryToolTaxes {
			t.Errorf("category = %s, want tool_taxes", out.Category)
		}
	})

	t.Run("defaults to others with no match", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(nil)
		out, err := uc.Execute(ctx, SuggestCategoryInput{
			Type:        entity.ExpenseScopeTrip,
			Description: "miscellaneous",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.Category != entity.ExpenseCategoryOthers {
			t.Errorf("category = %s, want others", out.Category)
		}
	})
}
