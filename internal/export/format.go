package export

import (
	"errors"
	"fmt"
	"strings"
)

// Format names an export flavor
type Format string

const (
	FormatCSS   Format = "css"
	FormatJSON  Format = "json"
	FormatEmbed Format = "embed"
	FormatHTML  Format = "html"
)

// Formats lists supported formats in display order
var Formats = []Format{FormatCSS, FormatJSON, FormatEmbed, FormatHTML}

// ErrUnknownFormat is returned for unsupported format names
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts a case-insensitive format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: css, json, embed, html)", ErrUnknownFormat, s)
}

// Render produces the export text for a format
func Render(format Format, headingFont, bodyFont string) (string, error) {
	switch format {
	case FormatCSS:
		return CSS(headingFont, bodyFont), nil
	case FormatJSON:
		return JSON(headingFont, bodyFont)
	case FormatEmbed:
		return EmbedURL(headingFont, bodyFont), nil
	case FormatHTML:
		return HTMLLink(headingFont, bodyFont)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Filename is the default download name for a format
func (f Format) Filename() string {
	switch f {
	case FormatCSS:
		return "font-pairing.css"
	case FormatJSON:
		return "font-pairing.json"
	case FormatHTML:
		return "font-pairing.html"
	default:
		return "font-pairing.txt"
	}
}

// ContentType is the MIME type served for a format
func (f Format) ContentType() string {
	switch f {
	case FormatCSS:
		return "text/css; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
