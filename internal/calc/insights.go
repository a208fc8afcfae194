package calc

import "pacecalc/internal/units"

// Performance is a qualitative tier for a pace.
type Performance int

const (
	Elite Performance = iota
	Excellent
	Good
	Solid
	Building
)

// String returns the tier name.
func (p Performance) String() string {
	switch p {
	case Elite:
		return "Elite"
	case Excellent:
		return "Excellent"
	case Good:
		return "Good"
	case Solid:
		return "Solid"
	default:
		return "Building"
	}
}

// Commentary returns the one-line assessment shown for the tier.
func (p Performance) Commentary() string {
	switch p {
	case Elite:
		return "Elite level performance! You're in the top tier of runners."
	case Excellent:
		return "Excellent performance! You're a very strong runner."
	case Good:
		return "Good performance! You're above average."
	case Solid:
		return "Solid performance! Focus on consistency and gradual improvement."
	default:
		return "Building foundation! Every run makes you stronger."
	}
}

// Tier classifies a pace (min/km) into a performance tier.
func Tier(paceMins float64) Performance {
	switch {
	case paceMins <= 3:
		return Elite
	case paceMins <= 4:
		return Excellent
	case paceMins <= 5:
		return Good
	case paceMins <= 6:
		return Solid
	default:
		return Building
	}
}

// ProjectMarathon predicts a marathon finish at the given pace. The second
// return is false when the entered distance is already a full marathon or
// longer, in which case no projection is shown.
func ProjectMarathon(paceMins, distanceKm float64) (string, bool) {
	if distanceKm >= units.KmMarathon {
		return "", false
	}
	return FormatMinutes(units.KmMarathon*paceMins, true), true
}
