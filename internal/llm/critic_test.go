package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/validate"
)

type mockProvider struct {
	response *CritiqueResponse
	err      error
	got      CritiqueRequest
}

func (m *mockProvider) Name() string {
	return "mock"
}

func (m *mockProvider) Critique(ctx context.Context, req CritiqueRequest) (*CritiqueResponse, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func TestNewCritic_Disabled(t *testing.T) {
	critic, err := NewCritic(Config{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if critic.IsEnabled() {
		t.Error("Expected critic to be disabled")
	}
	if critic.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}
	if got := critic.Critique(context.Background(), validate.Validate("Inter", "Lora")); got != nil {
		t.Errorf("Expected nil critique when disabled, got %+v", got)
	}
}

func TestNewCritic_UnknownProvider(t *testing.T) {
	if _, err := NewCritic(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Fatal("Expected error for unknown provider")
	}
}

func TestCritic_Success(t *testing.T) {
	mock := &mockProvider{response: &CritiqueResponse{Text: "Looks good.", Model: "m", TokensUsed: 42}}
	critic := &Critic{provider: mock, config: Config{Model: "m", MaxTokens: 123}}

	result := validate.Validate("Lora", "Oswald")
	critique := critic.Critique(context.Background(), result)

	if critique == nil || !critique.Enabled {
		t.Fatalf("Expected enabled critique, got %+v", critique)
	}
	if critique.Provider != "mock" || critique.Text != "Looks good." || critique.TokensUsed != 42 {
		t.Errorf("Unexpected critique: %+v", critique)
	}
	if mock.got.MaxTokens != 123 || mock.got.Validation.HeadingFont != "Lora" {
		t.Errorf("Unexpected request: %+v", mock.got)
	}
	if result.Score != model.ScorePoor {
		t.Errorf("Critique must not touch the score, got %s", result.Score)
	}
}

func TestCritic_ProviderErrorBecomesWarning(t *testing.T) {
	critic := &Critic{provider: &mockProvider{err: errors.New("boom")}}

	critique := critic.Critique(context.Background(), validate.Validate("Inter", "Lora"))
	if critique == nil {
		t.Fatal("Expected critique with warnings")
	}
	if critique.Enabled {
		t.Error("Expected failed critique to be disabled")
	}
	if len(critique.Warnings) != 1 || !strings.Contains(critique.Warnings[0], "boom") {
		t.Errorf("Unexpected warnings: %v", critique.Warnings)
	}
}

func TestCritic_EmptyText(t *testing.T) {
	critic := &Critic{provider: &mockProvider{response: &CritiqueResponse{}}}

	critique := critic.Critique(context.Background(), validate.Validate("Inter", "Lora"))
	if len(critique.Warnings) != 1 {
		t.Errorf("Expected empty-text warning, got %v", critique.Warnings)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(validate.Validate("Lora", "Oswald"))

	for _, want := range []string{
		"Heading: Lora (serif)",
		"Body: Oswald (display)",
		"Score: poor",
		"- contrast: pass",
		"- readability: fail (Display fonts are not ideal for body text - readability may suffer)",
		"- componentStress: fail",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(Config{Provider: "OpenAI", APIKey: "k"})
	if err != nil || p.Name() != "openai" {
		t.Errorf("Expected openai provider, got %v, %v", p, err)
	}

	p, err = NewProvider(Config{Provider: "ollama"})
	if err != nil || p.Name() != "ollama" {
		t.Errorf("Expected ollama provider, got %v, %v", p, err)
	}

	p, err = NewProvider(Config{})
	if err != nil || p != nil {
		t.Errorf("Expected disabled provider, got %v, %v", p, err)
	}
}

func TestConfigFromModel(t *testing.T) {
	cfg := ConfigFromModel(model.LLMConfig{Provider: "openai", Model: "gpt-4o-mini", APIKey: "k", Timeout: 7, MaxTokens: 99})
	if cfg.Provider != "openai" || cfg.Model != "gpt-4o-mini" || cfg.APIKey != "k" || cfg.Timeout != 7 || cfg.MaxTokens != 99 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}
