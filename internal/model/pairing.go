package model

// FontPairing is a heading/body font combination
type FontPairing struct {
	ID          string   `json:"id" yaml:"id"`
	HeadingFont string   `json:"headingFont" yaml:"heading"`
	BodyFont    string   `json:"bodyFont" yaml:"body"`
	Tags        []string `json:"tags" yaml:"tags"`
	UseCase     string   `json:"useCase,omitempty" yaml:"use_case,omitempty"`
}

// SavedPairing is a pairing persisted in the local store
type SavedPairing struct {
	FontPairing
	SavedAt int64 `json:"savedAt"`          // Unix milliseconds
	Custom  bool  `json:"custom,omitempty"` // Saved from the playground rather than the gallery
}

// HasTag reports whether the pairing carries the exact tag
func (p FontPairing) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
