package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/notmytype/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Critique writes a short typographic note on an already scored pairing
	Critique(ctx context.Context, req CritiqueRequest) (*CritiqueResponse, error)
}

// CritiqueRequest contains the input for a critique
type CritiqueRequest struct {
	// Validation is the finished heuristic result. The model comments on it
	// but cannot change it.
	Validation model.ValidationResult

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CritiqueResponse contains the LLM's output
type CritiqueResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

const systemPrompt = "You are a typography reviewer. You comment on font pairings that a rule-based checker has already scored. You never re-score them."

// BuildPrompt constructs the default critique prompt from a validation result
func BuildPrompt(result model.ValidationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, `A rule-based checker scored this font pairing. Its verdict is final.

RULES:
1. Do NOT change, dispute or restate the score as your own opinion.
2. Give practical advice on weights, sizes and spacing for this exact pair.
3. Mention a failed check only to suggest how to work around it.
4. Answer in 2-3 sentences of plain text.

Pairing:
- Heading: %s (%s)
- Body: %s (%s)
- Score: %s (%s)

Checks:
`, result.HeadingFont, result.HeadingCategory, result.BodyFont, result.BodyCategory, result.Score, result.Message)

	for _, check := range result.Checks {
		status := "pass"
		if !check.Passed {
			status = "fail"
		}
		fmt.Fprintf(&b, "- %s: %s (%s)\n", check.Name, status, check.Message)
	}

	return b.String()
}
