// Package gallery serves the curated pairings and their search and tag filters.
package gallery

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/slug"
)

//go:embed pairings.yaml
var curatedYAML []byte

// ErrNotFound is returned when no curated pairing has the requested id
var ErrNotFound = errors.New("pairing not found")

type document struct {
	Pairings []model.FontPairing `yaml:"pairings"`
}

// Gallery is an immutable, ordered collection of pairings
type Gallery struct {
	pairings []model.FontPairing
}

// Load parses a YAML document of pairings, deriving ids from the font names
func Load(data []byte) (*Gallery, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pairings: %w", err)
	}

	seen := make(map[string]bool, len(doc.Pairings))
	pairings := make([]model.FontPairing, 0, len(doc.Pairings))
	for i, p := range doc.Pairings {
		if p.HeadingFont == "" || p.BodyFont == "" {
			return nil, fmt.Errorf("pairing %d: heading and body are required", i)
		}
		p.ID = slug.PairingID(p.HeadingFont, p.BodyFont)
		if seen[p.ID] {
			return nil, fmt.Errorf("pairing %d: duplicate id %s", i, p.ID)
		}
		seen[p.ID] = true
		if p.Tags == nil {
			p.Tags = []string{}
		}
		pairings = append(pairings, p)
	}

	return &Gallery{pairings: pairings}, nil
}

// Curated returns the built-in gallery
func Curated() *Gallery {
	g, err := Load(curatedYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded pairings are invalid: %v", err))
	}
	return g
}

// All returns every pairing in curated order
func (g *Gallery) All() []model.FontPairing {
	out := make([]model.FontPairing, len(g.pairings))
	copy(out, g.pairings)
	return out
}

// Get returns the pairing with id
func (g *Gallery) Get(id string) (model.FontPairing, error) {
	for _, p := range g.pairings {
		if p.ID == id {
			return p, nil
		}
	}
	return model.FontPairing{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Tags returns the sorted set of tags across all pairings
func (g *Gallery) Tags() []string {
	set := make(map[string]struct{})
	for _, p := range g.pairings {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}

	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Search filters by a case-insensitive query over heading, body and tags,
// then by an exact tag. Empty query and tag match everything.
func (g *Gallery) Search(query, tag string) []model.FontPairing {
	// Casers are stateful, so each search gets its own
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	out := []model.FontPairing{}
	for _, p := range g.pairings {
		if q != "" && !matches(fold, p, q) {
			continue
		}
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(fold cases.Caser, p model.FontPairing, foldedQuery string) bool {
	if strings.Contains(fold.String(p.HeadingFont), foldedQuery) ||
		strings.Contains(fold.String(p.BodyFont), foldedQuery) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(fold.String(t), foldedQuery) {
			return true
		}
	}
	return false
}
