package normalize

import (
	"fmt"
	"strings"
)

// BoolResult carries the outcome of a boolean normalization.
type BoolResult struct {
	Value    bool
	OK       bool
	Original string
	Err      string
}

var (
	trueLiterals = map[string]struct{}{
		"true": {}, "是": {}, "yes": {}, "1": {}, "on": {}, "enabled": {},
	}
	falseLiterals = map[string]struct{}{
		"false": {}, "否": {}, "no": {}, "0": {}, "off": {}, "disabled": {},
	}
)

// Boolean maps boolean-like literals in either language onto a bool.
// Unrecognized input yields the default with OK=false.
func Boolean(raw string, def bool) BoolResult {
	res := BoolResult{Original: raw}

	key := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[key]; ok {
		res.Value = true
		res.OK = true
		return res
	}
	if _, ok := falseLiterals[key]; ok {
		res.Value = false
		res.OK = true
		return res
	}

	res.Value = def
	res.Err = fmt.Sprintf("unrecognized boolean literal: %q", raw)
	return res
}
