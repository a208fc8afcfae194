// Package parse converts user-supplied distance, time and pace strings into
// numeric quantities (kilometers and minutes). Parsers never print; malformed
// input comes back as a *ParseError carrying the offending string.
package parse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"pacecalc/internal/units"
)

// Kind identifies which quantity a string failed to parse as.
type Kind string

const (
	KindDistance Kind = "distance"
	KindTime     Kind = "time"
	KindPace     Kind = "pace"
)

// ParseError reports a string that matched no recognized form for its quantity.
type ParseError struct {
	Input string
	Kind  Kind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Input, e.Kind)
}

func invalid(input string, kind Kind) error {
	return &ParseError{Input: input, Kind: kind}
}

// letterTimePattern matches times like "1h30m20s", "90m", "1.5h". Hours and
// minutes may be fractional, seconds must be a whole number.
var letterTimePattern = regexp.MustCompile(`^(?:(\d+(?:\.\d+)?)h)?(?:(\d+(?:\.\d+)?)m)?(?:(\d+)s)?$`)

// Distance converts a distance string to kilometers.
//
// Recognized forms, in order of precedence: a preset token ("marathon", "hm",
// "10k", ...), a number with a unit suffix ("10km", "3.5mi"), or a bare number
// taken as kilometers. Suffixes are scanned longest first so "10km" can never
// bind to the one-letter "k" unit.
func Distance(s string) (float64, error) {
	d := strings.ToLower(strings.TrimSpace(s))

	if km, ok := units.Presets[d]; ok {
		return km, nil
	}

	for _, u := range units.SuffixUnits {
		if !strings.HasSuffix(d, u.Suffix) {
			continue
		}
		value, err := parseQuantity(strings.TrimSuffix(d, u.Suffix))
		if err != nil {
			return 0, invalid(s, KindDistance)
		}
		return value * u.Km, nil
	}

	value, err := parseQuantity(d)
	if err != nil {
		return 0, invalid(s, KindDistance)
	}
	return value, nil
}

// Time converts a time string to minutes.
//
// Three forms are recognized: letter-based ("1h30m20s", "90m"), colon-based
// ("45:00" as M:S, "1:30:45" as H:M:S), and a bare number taken as minutes.
func Time(s string) (float64, error) {
	t := strings.TrimSpace(s)

	if strings.ContainsAny(t, "hms") {
		return parseLetterTime(s, t)
	}

	if strings.Contains(t, ":") {
		return parseColonTime(s, t)
	}

	value, err := parseQuantity(t)
	if err != nil {
		return 0, invalid(s, KindTime)
	}
	return value, nil
}

func parseLetterTime(orig, t string) (float64, error) {
	m := letterTimePattern.FindStringSubmatch(t)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return 0, invalid(orig, KindTime)
	}

	var hours, minutes, seconds float64
	if m[1] != "" {
		hours, _ = strconv.ParseFloat(m[1], 64)
	}
	if m[2] != "" {
		minutes, _ = strconv.ParseFloat(m[2], 64)
	}
	if m[3] != "" {
		seconds, _ = strconv.ParseFloat(m[3], 64)
	}

	return hours*60 + minutes + seconds/60, nil
}

func parseColonTime(orig, t string) (float64, error) {
	parts := strings.Split(t, ":")

	switch len(parts) {
	case 2:
		minutes, err1 := parseQuantity(parts[0])
		seconds, err2 := parseQuantity(parts[1])
		if err1 != nil || err2 != nil {
			return 0, invalid(orig, KindTime)
		}
		return minutes + seconds/60, nil
	case 3:
		hours, err1 := parseQuantity(parts[0])
		minutes, err2 := parseQuantity(parts[1])
		seconds, err3 := parseQuantity(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, invalid(orig, KindTime)
		}
		return hours*60 + minutes + seconds/60, nil
	default:
		return 0, invalid(orig, KindTime)
	}
}

// Pace converts a pace string to minutes per kilometer. Accepts "M:S" ("4:30")
// or a bare number of minutes ("5.5").
func Pace(s string) (float64, error) {
	p := strings.TrimSpace(s)

	if strings.Contains(p, ":") {
		parts := strings.Split(p, ":")
		if len(parts) != 2 {
			return 0, invalid(s, KindPace)
		}
		minutes, err1 := parseQuantity(parts[0])
		seconds, err2 := parseQuantity(parts[1])
		if err1 != nil || err2 != nil {
			return 0, invalid(s, KindPace)
		}
		return minutes + seconds/60, nil
	}

	value, err := parseQuantity(p)
	if err != nil {
		return 0, invalid(s, KindPace)
	}
	return value, nil
}

// parseQuantity parses a non-negative finite float. Quantities are magnitudes;
// a negative distance or time is malformed input, not a value.
func parseQuantity(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("quantity out of range: %s", s)
	}
	return v, nil
}
