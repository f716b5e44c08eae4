// Package share encodes a heading/body pairing into playground link query parameters.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

// Query parameter names
const (
	ParamHeading = "heading"
	ParamBody    = "body"
)

// PlaygroundPath is where share links point
const PlaygroundPath = "/playground"

// Encode returns the query string for a pairing. Both names are URL-escaped.
func Encode(headingFont, bodyFont string) string {
	values := url.Values{}
	values.Set(ParamHeading, headingFont)
	values.Set(ParamBody, bodyFont)
	return values.Encode()
}

// Decode reads a pairing from query values. ok is false when either name is missing or empty.
func Decode(values url.Values) (headingFont, bodyFont string, ok bool) {
	headingFont = values.Get(ParamHeading)
	bodyFont = values.Get(ParamBody)
	if headingFont == "" || bodyFont == "" {
		return "", "", false
	}
	return headingFont, bodyFont, true
}

// DecodeQuery parses a raw query string (with or without a leading "?").
// Malformed queries decode as missing.
func DecodeQuery(rawQuery string) (headingFont, bodyFont string, ok bool) {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return "", "", false
	}
	return Decode(values)
}

// Link builds a full playground link on baseURL
func Link(baseURL, headingFont, bodyFont string) string {
	return strings.TrimRight(baseURL, "/") + PlaygroundPath + "?" + Encode(headingFont, bodyFont)
}

// ParseLink extracts the pairing from a full share link
func ParseLink(rawLink string) (headingFont, bodyFont string, err error) {
	u, err := url.Parse(rawLink)
	if err != nil {
		return "", "", fmt.Errorf("parse link: %w", err)
	}

	h, b, ok := Decode(u.Query())
	if !ok {
		return "", "", ErrMissingParam
	}
	return h, b, nil
}
