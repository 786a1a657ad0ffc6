package expense

import (
	"context"
	"strings"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// SuggestCategoryInput represents the input for category suggestion.
type SuggestCategoryInput struct {
	Type        entity.ExpenseScope
	Description string
}

// SuggestCategoryOutput represents the output of category suggestion.
type SuggestCategoryOutput struct {
	Category   entity.ExpenseCategory
	Confidence float64
}

// SuggestCategoryUseCase suggests an expense category from a free-text
// description using the configured AI service, falling back to keyword
// matching when the service is unavailable.
type SuggestCategoryUseCase struct {
	suggestionService adapter.SuggestionService
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(suggestionService adapter.SuggestionService) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{suggestionService: suggestionService}
}

// Execute suggests a category.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	scope := input.Type
	if scope == "" {
		scope = entity.ExpenseScopeTrip
	}

	if uc.suggestionService != nil {
		category, confidence, err := uc.suggestionService.SuggestExpenseCategory(ctx, scope, input.Description)
		if err == nil && entity.ValidCategory(scope, category) {
			return &SuggestCategoryOutput{Category: category, Confidence: confidence}, nil
		}
	}

	category, confidence := keywordFallback(scope, input.Description)
	return &SuggestCategoryOutput{Category: category, Confidence: confidence}, nil
}

var keywordCategories = []struct {
	category entity.ExpenseCategory
	keywords []string
}{
	{entity.ExpenseCategoryFuel, []string{"fuel", "diesel", "petrol", "gas"}},
	{entity.ExpenseCategoryMaintenance, []string{"maintenance", "service", "repair", "oil change"}},
	{entity.ExpenseCategoryTyre, []string{"tyre", "tire", "wheel"}},
	{entity.ExpenseCategoryDriverRent, []string{"driver", "salary", "rent"}},
	{entity.ExpenseCategoryTaxes, []string{"tax", "customs", "duty"}},
	{entity.ExpenseCategoryToolTaxes, []string{"toll"}},
	{entity.ExpenseCategoryOnRoad, []string{"road", "parking", "food", "hotel"}},
}

func keywordFallback(scope entity.ExpenseScope, description string) (entity.ExpenseCategory, float64) {
	lower := strings.ToLower(description)
	for _, kc := range keywordCategories {
		if !entity.ValidCategory(scope, kc.category) {
			continue
		}
		for _, kw := range kc.keywords {
			if strings.Contains(lower, kw) {
				return kc.category, 0.5
			}
		}
	}
	return entity.ExpenseCategoryOthers, 0.2
}
