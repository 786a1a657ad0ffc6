package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
)

// GeminiService implements the SuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

var _ adapter.SuggestionService = (*GeminiService)(nil)

// categorySuggestion mirrors the JSON shape requested from the model.
type categorySuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// SuggestExpenseCategory asks Gemini for the most likely category of an
// expense description within the given scope.
func (s *GeminiService) SuggestExpenseCategory(ctx context.Context, scope entity.ExpenseScope, description string) (entity.ExpenseCategory, float64, error) {
	if !s.IsAvailable() {
		return "", 0, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(scope, description)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate content: %w", err)
	}

	suggestion, err := s.parseResponse(resp)
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse response: %w", err)
	}

	category := entity.ExpenseCategory(suggestion.Category)
	if !entity.ValidCategory(scope, category) {
		return "", 0, fmt.Errorf("model returned unknown category %q", suggestion.Category)
	}

	confidence := suggestion.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return category, confidence, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(scope entity.ExpenseScope, description string) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing freight and trucking expenses. Given an expense description, pick the single best category from the allowed list.

RULES:
- Respond with JSON only: {"category": "<one of the allowed values>", "confidence": <number between 0 and 1>}
- The category MUST be one of the allowed values, exactly as written
- Use "others" when nothing fits well, with a low confidence

ALLOWED CATEGORIES:
`)

	if scope == entity.ExpenseScopeTrip {
		sb.WriteString(`- fuel: diesel, petrol, filling station purchases
- driver_rent: driver wages, driver allowance, bata
- taxes: road tax, permits, border fees
- tool_taxes: toll gates, toll plazas
- on_road: loading, unloading, parking, food on the road
- others: anything else
`)
	} else {
		sb.WriteString(`- fuel: diesel, petrol, filling station purchases
- maintenance: servicing, repairs, oil change, spare parts
- tyre: tyre purchase, retreading, puncture repair
- others: anything else
`)
	}

	sb.WriteString("\nEXPENSE DESCRIPTION:\n")
	sb.WriteString(description)
	return sb.String()
}

// parseResponse extracts the suggestion from the model response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*categorySuggestion, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from model")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	raw := strings.TrimSpace(text.String())
	// Some responses wrap the JSON in markdown fences despite the MIME type.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var suggestion categorySuggestion
	if err := json.Unmarshal([]byte(raw), &suggestion); err != nil {
		return nil, fmt.Errorf("invalid suggestion JSON: %w", err)
	}
	return &suggestion, nil
}
