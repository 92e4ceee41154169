package render

import (
	"strings"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
)

// Format is an export format.
type Format string

// Supported export formats.
const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
)

// Formats lists the export formats in display order.
var Formats = []Format{FormatSVG, FormatPNG, FormatPDF, FormatCSS, FormatJSON}

var contentTypes = map[Format]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatCSS:  "text/css; charset=utf-8",
	FormatJSON: "application/json",
}

// ParseFormat resolves a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentTypes[f]; !ok {
		return "", apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %s (valid: svg, png, pdf, css, json)", s)
	}
	return f, nil
}

// ParseFormats parses a comma-separated format list, dropping duplicates.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string { return contentTypes[f] }

// Binary reports whether artifacts of f are not text.
func (f Format) Binary() bool { return f == FormatPNG || f == FormatPDF }
