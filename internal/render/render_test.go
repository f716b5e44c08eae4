package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/validate"
)

func TestRenderer_ValidationPlain(t *testing.T) {
	out := NewRenderer(false).Validation(validate.Validate("Lora", "Oswald"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "Lora (serif) + Oswald (display)" {
		t.Errorf("Unexpected title line: %q", lines[0])
	}
	if lines[1] != "POOR  Not feeling the spark here" {
		t.Errorf("Unexpected verdict line: %q", lines[1])
	}

	// title, verdict, blank, five checks
	if len(lines) != 8 {
		t.Fatalf("Expected 8 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[3], "  ✓ contrast") {
		t.Errorf("Expected passing contrast line, got %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "  ✗ readability") {
		t.Errorf("Expected failing readability line, got %q", lines[4])
	}
	if !strings.HasPrefix(lines[7], "  ✗ componentStress") {
		t.Errorf("Expected failing componentStress line, got %q", lines[7])
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Plain output must not contain ANSI escapes")
	}
}

func TestRenderer_ValidationColorKeepsText(t *testing.T) {
	out := NewRenderer(true).Validation(validate.Validate("Playfair Display", "Inter"))

	for _, want := range []string{"Playfair Display", "Inter", "EXCELLENT", "These fonts have chemistry"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderer_Report(t *testing.T) {
	report := model.Report{
		Validation: validate.Validate("Inter", "Inter"),
		Critique: &model.Critique{
			Enabled:  true,
			Provider: "openai",
			Text:     "Vary the weight.",
			Warnings: []string{"slow model"},
		},
	}

	out := NewRenderer(false).Report(report, "http://localhost:8080/playground?body=Inter&heading=Inter")

	for _, want := range []string{
		"share: http://localhost:8080/playground?body=Inter&heading=Inter",
		"critique (openai):\nVary the weight.",
		"warning: slow model",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderer_Lists(t *testing.T) {
	r := NewRenderer(false)

	pairings := r.Pairings([]model.FontPairing{
		{ID: "lora-inter", HeadingFont: "Lora", BodyFont: "Inter", Tags: []string{"editorial", "blog"}},
	})
	if pairings != "lora-inter  Lora / Inter  #editorial #blog\n" {
		t.Errorf("Unexpected pairings output: %q", pairings)
	}
	if r.Pairings(nil) != "no pairings found\n" {
		t.Errorf("Unexpected empty pairings output")
	}

	saved := r.Saved([]model.SavedPairing{
		{FontPairing: model.FontPairing{ID: "lora-inter", HeadingFont: "Lora", BodyFont: "Inter"}, SavedAt: 0},
	})
	if saved != "lora-inter  Lora / Inter  1970-01-01T00:00:00Z\n" {
		t.Errorf("Unexpected saved output: %q", saved)
	}

	fonts := r.Fonts([]model.CatalogFont{{Family: "Roboto", Category: "sans-serif"}})
	if !strings.HasPrefix(fonts, "Roboto ") || !strings.HasSuffix(fonts, "sans-serif\n") {
		t.Errorf("Unexpected fonts output: %q", fonts)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if buf.String() != "{\n  \"a\": 1\n}\n" {
		t.Errorf("Unexpected JSON: %q", buf.String())
	}
}
