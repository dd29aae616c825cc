package normalize

import (
	"strings"
)

// TextResult carries the outcome of a text normalization.
type TextResult struct {
	Value    string
	OK       bool
	Original string
	Err      string
}

// zero-width characters that survive copy/paste from spreadsheet tools
var zeroWidthReplacer = strings.NewReplacer(
	"\u200B", "", // zero width space
	"\u200C", "", // zero width non-joiner
	"\u200D", "", // zero width joiner
	"\uFEFF", "", // BOM / zero width no-break space
)

// Text cleans a raw string value: strips zero-width characters, converts
// full-width spaces to regular spaces, trims, and collapses internal
// whitespace runs to a single space.
func Text(raw string) TextResult {
	cleaned := zeroWidthReplacer.Replace(raw)
	cleaned = strings.ReplaceAll(cleaned, "\u3000", " ")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return TextResult{Value: cleaned, OK: true, Original: raw}
}
