package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/notmytype/internal/model"
)

// Critic attaches optional LLM notes to validation results
type Critic struct {
	provider Provider
	config   Config
}

// NewCritic creates a critic; with no provider configured it is a no-op
func NewCritic(config Config) (*Critic, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Critic{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured
func (c *Critic) IsEnabled() bool {
	return c.provider != nil
}

// ProviderName returns the configured provider name, or "" when disabled
func (c *Critic) ProviderName() string {
	if c.provider == nil {
		return ""
	}
	return c.provider.Name()
}

// Critique asks the provider for a note on result. A disabled critic returns nil.
// Provider failures are reported as warnings on a disabled Critique, never as errors,
// so a flaky model cannot break validation.
func (c *Critic) Critique(ctx context.Context, result model.ValidationResult) *model.Critique {
	if c.provider == nil {
		return nil
	}

	resp, err := c.provider.Critique(ctx, CritiqueRequest{
		Validation: result,
		Model:      c.config.Model,
		MaxTokens:  c.config.MaxTokens,
	})
	if err != nil {
		return &model.Critique{
			Enabled:  false,
			Provider: c.provider.Name(),
			Warnings: []string{fmt.Sprintf("critique failed: %v", err)},
		}
	}

	critique := &model.Critique{
		Enabled:    true,
		Provider:   c.provider.Name(),
		Model:      resp.Model,
		Text:       resp.Text,
		TokensUsed: resp.TokensUsed,
	}
	if resp.Text == "" {
		critique.Warnings = append(critique.Warnings, "provider returned an empty critique")
	}
	return critique
}
