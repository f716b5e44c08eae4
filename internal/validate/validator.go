package validate

import (
	"strings"

	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/score"
)

// fontInfo is a font name together with its inferred category
type fontInfo struct {
	name     string
	category model.FontCategory
}

func (f fontInfo) is(c model.FontCategory) bool {
	return f.category == c
}

// rule is one named compatibility check
type rule struct {
	name  model.CheckName
	check func(heading, body fontInfo) (bool, string)
}

// rules run in model.CheckNames order; each returns (passed, message) for the branch it hit
var rules = []rule{
	{name: model.CheckContrast, check: checkContrast},
	{name: model.CheckReadability, check: checkReadability},
	{name: model.CheckHarmony, check: checkHarmony},
	{name: model.CheckHierarchy, check: checkHierarchy},
	{name: model.CheckComponentStress, check: checkComponentStress},
}

// decorativeSerifs need extra spacing in tight layouts but do not fail component stress
var decorativeSerifs = []string{"cormorant", "playfair", "libre baskerville"}

// Validator scores heading/body font pairings.
// It holds no state and is safe for concurrent use.
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate classifies both fonts, runs every check and aggregates the verdict.
// It never fails: unknown names fall back to sans-serif.
func (v *Validator) Validate(headingFont, bodyFont string) model.ValidationResult {
	heading := fontInfo{name: headingFont, category: Classify(headingFont)}
	body := fontInfo{name: bodyFont, category: Classify(bodyFont)}

	checks := make([]model.CheckResult, 0, len(rules))
	for _, r := range rules {
		passed, message := r.check(heading, body)
		checks = append(checks, model.CheckResult{
			Name:    r.name,
			Passed:  passed,
			Message: message,
		})
	}

	tier, message := score.Aggregate(checks)

	return model.ValidationResult{
		HeadingFont:     headingFont,
		BodyFont:        bodyFont,
		HeadingCategory: heading.category,
		BodyCategory:    body.category,
		Score:           tier,
		Checks:          checks,
		Message:         message,
	}
}

// Validate is a convenience wrapper around a zero Validator
func Validate(headingFont, bodyFont string) model.ValidationResult {
	return NewValidator().Validate(headingFont, bodyFont)
}

func checkContrast(heading, body fontInfo) (bool, string) {
	if heading.name == body.name {
		return true, "Same font family - consistent but may lack hierarchy"
	}

	if heading.category == body.category && !heading.is(model.CategoryDisplay) {
		return false, "Both fonts are similar categories - may lack contrast"
	}

	return true, "Good contrast between heading and body fonts"
}

// checkReadability only looks at the body font
func checkReadability(_, body fontInfo) (bool, string) {
	switch body.category {
	case model.CategoryDisplay:
		return false, "Display fonts are not ideal for body text - readability may suffer"
	case model.CategoryMonospace:
		return false, "Monospace fonts reduce readability in body text"
	}

	return true, "Body font has good readability characteristics"
}

func checkHarmony(heading, body fontInfo) (bool, string) {
	if (heading.is(model.CategoryDisplay) && body.is(model.CategorySerif)) ||
		(heading.is(model.CategorySerif) && body.is(model.CategoryDisplay)) {
		return false, "Fonts may clash stylistically"
	}

	return true, "Fonts work well together stylistically"
}

// checkHierarchy is informational: size and weight can always carry hierarchy
func checkHierarchy(heading, body fontInfo) (bool, string) {
	if heading.is(model.CategorySansSerif) && body.is(model.CategorySansSerif) && heading.name != body.name {
		return true, "Different sans-serif fonts can create subtle hierarchy"
	}

	if (heading.is(model.CategoryDisplay) || heading.is(model.CategorySerif)) && body.is(model.CategorySansSerif) {
		return true, "Clear hierarchy - heading stands out from body"
	}

	if heading.name == body.name {
		return true, "Same font - hierarchy relies on size and weight"
	}

	return true, "Heading font is distinct from body"
}

func checkComponentStress(heading, body fontInfo) (bool, string) {
	if heading.is(model.CategoryDisplay) || body.is(model.CategoryDisplay) {
		return false, "Display fonts may not work well in compact components"
	}

	if isDecorative(heading.name) || isDecorative(body.name) {
		return true, "Decorative fonts may need careful spacing in components"
	}

	return true, "Pairing works well in compact component layouts"
}

func isDecorative(name string) bool {
	lower := strings.ToLower(name)
	for _, d := range decorativeSerifs {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}
