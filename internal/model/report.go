package model

// Report wraps a validation result with optional, non-scoring extras
type Report struct {
	Validation ValidationResult `json:"validation"`
	ShareQuery string           `json:"share,omitempty"`    // heading/body query string for the playground
	Critique   *Critique        `json:"critique,omitempty"` // Optional LLM note (separate, never affects score)
}

// Critique contains an optional LLM-generated note on a pairing.
// It is attached after scoring and never changes checks or score.
type Critique struct {
	Enabled    bool     `json:"enabled"`
	Provider   string   `json:"provider,omitempty"`
	Model      string   `json:"model,omitempty"`
	Text       string   `json:"text,omitempty"`
	TokensUsed int      `json:"tokens_used,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}
