package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ppiankov/notmytype/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Store.Path = filepath.Join(t.TempDir(), "saved.json")
	cfg.Server.BaseURL = "https://notmytype.example"
	return cfg
}

func TestNewPipeline_Defaults(t *testing.T) {
	p, err := NewPipeline(testConfig(t), nil)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	if p.critic != nil {
		t.Error("Expected no critic without an llm provider")
	}
	if p.Store().Path() != p.config.Store.Path {
		t.Errorf("Unexpected store path %s", p.Store().Path())
	}
	if len(p.Gallery().All()) == 0 {
		t.Error("Expected curated gallery")
	}
}

func TestNewPipeline_UnknownProvider(t *testing.T) {
	cfg := testConfig(t)
	cfg.LLM.Provider = "carrier-pigeon"

	if _, err := NewPipeline(cfg, nil); err == nil {
		t.Fatal("Expected error for unknown llm provider")
	}
}

func TestPipeline_Validate(t *testing.T) {
	p, err := NewPipeline(testConfig(t), nil)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	// critique requested without a provider is skipped, not an error
	report := p.Validate(context.Background(), "Lora", "Oswald", true)

	if report.Validation.Score != model.ScorePoor {
		t.Errorf("Expected poor, got %s", report.Validation.Score)
	}
	if report.ShareQuery != "body=Oswald&heading=Lora" {
		t.Errorf("Unexpected share query %q", report.ShareQuery)
	}
	if report.Critique != nil {
		t.Errorf("Expected no critique, got %+v", report.Critique)
	}
}

func TestPipeline_ShareLinkAndBatch(t *testing.T) {
	p, err := NewPipeline(testConfig(t), nil)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	if got := p.ShareLink("Playfair Display", "Inter"); got != "https://notmytype.example/playground?body=Inter&heading=Playfair+Display" {
		t.Errorf("Unexpected link %s", got)
	}
	if p.BatchValidator(0) == nil || p.Server() == nil {
		t.Error("Expected batch validator and server")
	}
}
