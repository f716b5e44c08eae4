package gallery

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurated_Loads(t *testing.T) {
	g := Curated()
	all := g.All()

	require.NotEmpty(t, all)
	for _, p := range all {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.HeadingFont)
		assert.NotEmpty(t, p.BodyFont)
	}
	assert.Equal(t, "playfair-display-inter", all[0].ID)
}

func TestSearch_EmptyMatchesAll(t *testing.T) {
	g := Curated()
	assert.Len(t, g.Search("", ""), len(g.All()))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	g := Curated()

	results := g.Search("PLAYFAIR", "")
	require.Len(t, results, 1)
	assert.Equal(t, "Playfair Display", results[0].HeadingFont)
}

func TestSearch_MatchesBodyAndTags(t *testing.T) {
	g := Curated()

	for _, p := range g.Search("inter", "") {
		matched := p.HeadingFont == "Inter" || p.BodyFont == "Inter"
		assert.True(t, matched, "unexpected match %s", p.ID)
	}

	for _, p := range g.Search("Edit", "") {
		assert.True(t, p.HasTag("editorial"), "unexpected match %s", p.ID)
	}
}

func TestSearch_TagFilterIsExact(t *testing.T) {
	g := Curated()

	results := g.Search("", "developer")
	require.NotEmpty(t, results)
	for _, p := range results {
		assert.True(t, p.HasTag("developer"))
	}

	assert.Empty(t, g.Search("", "Developer"))
}

func TestSearch_QueryAndTag(t *testing.T) {
	g := Curated()

	results := g.Search("oswald", "marketing")
	require.Len(t, results, 1)
	assert.Equal(t, "oswald-roboto", results[0].ID)
}

func TestSearch_NoMatches(t *testing.T) {
	g := Curated()
	results := g.Search("comic sans", "")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestTags_SortedUnique(t *testing.T) {
	tags := Curated().Tags()

	require.NotEmpty(t, tags)
	assert.True(t, sort.StringsAreSorted(tags))

	seen := make(map[string]bool)
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate tag %s", tag)
		seen[tag] = true
	}
}

func TestGet(t *testing.T) {
	g := Curated()

	p, err := g.Get("oswald-cormorant")
	require.NoError(t, err)
	assert.Equal(t, "Cormorant", p.BodyFont)

	_, err = g.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load([]byte("pairings: [{heading: Inter}]"))
	assert.Error(t, err)

	_, err = Load([]byte("pairings:\n  - {heading: Inter, body: Lora}\n  - {heading: Inter, body: Lora}\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Load([]byte("pairings: [unclosed"))
	assert.Error(t, err)
}

func TestAll_ReturnsCopy(t *testing.T) {
	g := Curated()
	all := g.All()
	all[0].HeadingFont = "changed"

	assert.Equal(t, "Playfair Display", g.All()[0].HeadingFont)
}
