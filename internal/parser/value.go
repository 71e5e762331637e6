package parser

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/tidwall/gjson"
)

// Chroma formatter and style used for terminal output
const (
	highlightFormatter = "terminal256"
	highlightStyle     = "dracula"
)

// Value formats recognised in decoded secret data
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatPEM  = "pem"
)

// DetectFormat guesses how a decoded value is encoded. Only objects and
// arrays count as JSON; bare scalars such as "42" stay text.
func DetectFormat(value string) string {
	trimmed := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(trimmed, "-----BEGIN "):
		return FormatPEM
	case (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) && gjson.Valid(trimmed):
		return FormatJSON
	default:
		return FormatText
	}
}

// Pretty re-indents JSON values and returns everything else unchanged
func Pretty(value string) string {
	if DetectFormat(value) != FormatJSON {
		return value
	}
	return strings.TrimRight(gjson.Get(value, "@pretty").Raw, "\n")
}

// Highlight colours content with chroma's lexer for format ("json", "yaml").
// Content is returned untouched if highlighting fails.
func Highlight(content, format string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, format, highlightFormatter, highlightStyle); err != nil {
		return content
	}
	return buf.String()
}

// Render prettifies a value and highlights it when its format is known
func Render(value string) string {
	if DetectFormat(value) != FormatJSON {
		return value
	}
	return Highlight(Pretty(value), FormatJSON)
}
