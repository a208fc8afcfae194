package parse

import (
	"strings"

	"pacecalc/internal/units"
)

// LooksLikeTime reports whether a raw argument is more plausibly a time than a
// distance or pace. It decides parser routing for the ambiguous "at" grammar
// ("marathon at 4:30" vs "1:30:00 at 5:00") and is a best-effort heuristic,
// not a parser: bare numbers are never treated as times.
func LooksLikeTime(s string) bool {
	v := strings.ToLower(strings.TrimSpace(s))

	// Preset distance tokens contain letters but are never times.
	if _, ok := units.Presets[v]; ok {
		return false
	}

	return strings.ContainsAny(v, "hms:")
}
