package normalize

import (
	"fmt"
	"strings"
	"time"
)

// DateResult carries the outcome of a date normalization.
type DateResult struct {
	Value     string
	OK        bool
	Corrected bool // separator was auto-fixed
	Original  string
	Err       string
}

const isoDateLayout = "2006-01-02"

// Date normalizes a date string to YYYY-MM-DD. Slash and dot separators
// are auto-corrected; anything else falls back to the empty string.
func Date(raw string) DateResult {
	res := DateResult{Original: raw}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		res.Err = "empty date"
		return res
	}

	if _, err := time.Parse(isoDateLayout, trimmed); err == nil {
		res.Value = trimmed
		res.OK = true
		return res
	}

	fixed := strings.NewReplacer("/", "-", ".", "-").Replace(trimmed)
	if parsed, err := time.Parse(isoDateLayout, fixed); err == nil {
		res.Value = parsed.Format(isoDateLayout)
		res.OK = true
		res.Corrected = true
		return res
	}

	res.Err = fmt.Sprintf("unparseable date: %q", raw)
	return res
}
