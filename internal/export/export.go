// Package export renders a heading/body pairing into files designers can paste or import.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const googleFontsCSS2 = "https://fonts.googleapis.com/css2"

// Weight axes requested for each role
const (
	headingWeights = "400;500;600;700"
	bodyWeights    = "300;400;500;600"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// familyParam converts a family name to its Google Fonts URL form
func familyParam(font string) string {
	return whitespaceRun.ReplaceAllString(font, "+")
}

// CSS returns an @import for both families plus custom properties and usage rules
func CSS(headingFont, bodyFont string) string {
	return fmt.Sprintf(`/* Import Google Fonts */
@import url('%s?family=%s:wght@%s&family=%s:wght@%s&display=swap');

/* CSS Variables */
:root {
  --font-heading: "%s", serif;
  --font-body: "%s", sans-serif;
}

/* Usage */
.heading {
  font-family: var(--font-heading);
}

.body {
  font-family: var(--font-body);
}`,
		googleFontsCSS2,
		familyParam(headingFont), headingWeights,
		familyParam(bodyFont), bodyWeights,
		headingFont, bodyFont)
}

// designTokens is the JSON export shape, importable into design tools
type designTokens struct {
	FontPairing struct {
		Heading string `json:"heading"`
		Body    string `json:"body"`
	} `json:"fontPairing"`
	Styles struct {
		Heading textStyle `json:"heading"`
		Body    textStyle `json:"body"`
	} `json:"styles"`
}

type textStyle struct {
	FontFamily string `json:"fontFamily"`
	FontWeight int    `json:"fontWeight"`
}

// JSON returns the nested font/style descriptor, indented with two spaces
func JSON(headingFont, bodyFont string) (string, error) {
	var tokens designTokens
	tokens.FontPairing.Heading = headingFont
	tokens.FontPairing.Body = bodyFont
	tokens.Styles.Heading = textStyle{FontFamily: headingFont, FontWeight: 600}
	tokens.Styles.Body = textStyle{FontFamily: bodyFont, FontWeight: 400}

	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal design tokens: %w", err)
	}
	return string(data), nil
}

// EmbedURL returns a single Google Fonts stylesheet URL for both families
func EmbedURL(headingFont, bodyFont string) string {
	families := []string{familyParam(headingFont), familyParam(bodyFont)}
	return googleFontsCSS2 + "?family=" + strings.Join(families, "&family=") + ":wght@" + headingWeights + "&display=swap"
}

// HTMLLink returns a <link rel="stylesheet"> element for the embed URL
func HTMLLink(headingFont, bodyFont string) (string, error) {
	nodes := []*html.Node{
		linkNode(atom.Link, []html.Attribute{
			{Key: "rel", Val: "preconnect"},
			{Key: "href", Val: "https://fonts.googleapis.com"},
		}),
		linkNode(atom.Link, []html.Attribute{
			{Key: "rel", Val: "preconnect"},
			{Key: "href", Val: "https://fonts.gstatic.com"},
			{Key: "crossorigin", Val: ""},
		}),
		linkNode(atom.Link, []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: EmbedURL(headingFont, bodyFont)},
		}),
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render link: %w", err)
		}
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

func linkNode(a atom.Atom, attrs []html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
