package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/notmytype/internal/model"
)

const (
	passMarker = "✓"
	failMarker = "✗"
)

// Renderer formats results for a terminal
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer; color=false produces plain text
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// Validation renders a verdict, one line per check, and the two categories
func (r *Renderer) Validation(result model.ValidationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s + %s %s\n",
		r.paint(titleStyle, result.HeadingFont),
		r.paint(categoryStyle, "("+result.HeadingCategory.String()+")"),
		r.paint(titleStyle, result.BodyFont),
		r.paint(categoryStyle, "("+result.BodyCategory.String()+")"),
	)

	badge := strings.ToUpper(string(result.Score))
	if style, ok := badgeStyles[result.Score]; ok {
		badge = r.paint(style, badge)
	}
	fmt.Fprintf(&b, "%s  %s\n\n", badge, result.Message)

	for _, check := range result.Checks {
		marker := r.paint(passStyle, passMarker)
		if !check.Passed {
			marker = r.paint(failStyle, failMarker)
		}
		fmt.Fprintf(&b, "  %s %-16s %s\n", marker, check.Name, check.Message)
	}

	return b.String()
}

// Report renders a validation plus its share link and optional critique
func (r *Renderer) Report(report model.Report, shareLink string) string {
	var b strings.Builder
	b.WriteString(r.Validation(report.Validation))

	if shareLink != "" {
		fmt.Fprintf(&b, "\n%s %s\n", r.paint(faintStyle, "share:"), shareLink)
	}

	if c := report.Critique; c != nil {
		if c.Text != "" {
			fmt.Fprintf(&b, "\n%s\n%s\n", r.paint(faintStyle, "critique ("+c.Provider+"):"), c.Text)
		}
		for _, w := range c.Warnings {
			fmt.Fprintf(&b, "%s %s\n", r.paint(failStyle, "warning:"), w)
		}
	}

	return b.String()
}

// Pairings renders a gallery listing
func (r *Renderer) Pairings(pairings []model.FontPairing) string {
	if len(pairings) == 0 {
		return r.paint(faintStyle, "no pairings found") + "\n"
	}

	var b strings.Builder
	for _, p := range pairings {
		fmt.Fprintf(&b, "%s  %s / %s", r.paint(faintStyle, p.ID), r.paint(titleStyle, p.HeadingFont), p.BodyFont)
		if len(p.Tags) > 0 {
			fmt.Fprintf(&b, "  %s", r.paint(tagStyle, "#"+strings.Join(p.Tags, " #")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Saved renders stored pairings with their save time
func (r *Renderer) Saved(saved []model.SavedPairing) string {
	if len(saved) == 0 {
		return r.paint(faintStyle, "no saved pairings") + "\n"
	}

	var b strings.Builder
	for _, s := range saved {
		at := time.UnixMilli(s.SavedAt).UTC().Format(time.RFC3339)
		fmt.Fprintf(&b, "%s  %s / %s  %s\n", r.paint(faintStyle, s.ID), r.paint(titleStyle, s.HeadingFont), s.BodyFont, r.paint(faintStyle, at))
	}
	return b.String()
}

// Fonts renders catalog families with their category
func (r *Renderer) Fonts(fonts []model.CatalogFont) string {
	if len(fonts) == 0 {
		return r.paint(faintStyle, "no fonts found") + "\n"
	}

	var b strings.Builder
	for _, f := range fonts {
		fmt.Fprintf(&b, "%-32s %s\n", f.Family, r.paint(categoryStyle, f.Category))
	}
	return b.String()
}

// JSON writes v as two-space indented JSON followed by a newline
func JSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
