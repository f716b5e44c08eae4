package model

// FontCategory is the coarse typographic classification of a font family
type FontCategory string

const (
	CategorySerif     FontCategory = "serif"
	CategorySansSerif FontCategory = "sans-serif"
	CategoryMonospace FontCategory = "monospace"
	CategoryDisplay   FontCategory = "display"
)

func (c FontCategory) String() string {
	return string(c)
}

// CatalogFont is one family record returned by the remote font catalog
type CatalogFont struct {
	Family   string   `json:"family" yaml:"family"`
	Category string   `json:"category" yaml:"category"`
	Variants []string `json:"variants" yaml:"variants"`
	Subsets  []string `json:"subsets" yaml:"subsets"`
}
