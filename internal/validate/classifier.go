package validate

import (
	"strings"

	"github.com/ppiankov/notmytype/internal/model"
)

// categoryRule maps a set of name keywords to a category
type categoryRule struct {
	keywords []string
	category model.FontCategory
}

// categoryRules is checked in order; the first rule with a matching keyword wins.
// Serif runs first, so "Playfair Display" is serif.
var categoryRules = []categoryRule{
	{
		keywords: []string{"serif", "garamond", "baskerville", "playfair", "merriweather", "cormorant", "lora", "libre"},
		category: model.CategorySerif,
	},
	{
		keywords: []string{"mono", "code", "courier"},
		category: model.CategoryMonospace,
	},
	{
		keywords: []string{"display", "bebas", "oswald", "raleway"},
		category: model.CategoryDisplay,
	},
}

// defaultCategory applies when no keyword matches, including the empty name
const defaultCategory = model.CategorySansSerif

// Classify infers a font category from the family name alone.
// Matching is a lowercase substring test; no font metadata is consulted.
func Classify(name string) model.FontCategory {
	lower := strings.ToLower(name)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}

	return defaultCategory
}
