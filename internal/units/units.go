// Package units holds the static distance and training-zone tables shared by
// the parsers and the derivation engine. All tables are read-only.
package units

// Standard distances in kilometers
const (
	Km1K       = 1.0
	Km5K       = 5.0
	Km10K      = 10.0
	KmHalfMara = 21.0975
	KmMarathon = 42.195
	KmPerMile  = 1.609344
)

// Presets maps exact distance tokens to kilometers. These are matched against
// the whole (lowercased, trimmed) input before any suffix scanning happens, so
// numeric-prefixed tokens like "10k" and "400m" never reach the unit scan.
var Presets = map[string]float64{
	"mi":            KmPerMile,
	"km":            1.0,
	"k":             1.0,
	"m":             KmMarathon,
	"marathon":      KmMarathon,
	"hm":            KmHalfMara,
	"half-marathon": KmHalfMara,
	"10k":           Km10K,
	"5k":            Km5K,
	"1k":            Km1K,
	"400m":          0.4,
	"800m":          0.8,
	"1mi":           KmPerMile,
}

// SuffixUnit is a distance unit recognized as a suffix of a numeric input.
type SuffixUnit struct {
	Suffix string
	Km     float64
}

// SuffixUnits is scanned in order when an input is not a preset. The order is
// longest suffix first, so "10km" strips "km" rather than "m" or "k". "m" is
// deliberately absent: it is a preset for marathon, not a metre suffix.
var SuffixUnits = []SuffixUnit{
	{"km", 1.0},
	{"mi", KmPerMile},
	{"k", 1.0},
}

// Zone is a named training-pace band, expressed as multipliers of threshold pace.
type Zone struct {
	Name    string
	MinMult float64
	MaxMult float64
}

// Zones lists the training zones in display order.
var Zones = []Zone{
	{"Easy", 1.15, 1.25},
	{"Threshold", 1.05, 1.15},
	{"Tempo", 1.00, 1.05},
	{"VO2 Max", 0.90, 1.00},
	{"Speed", 0.80, 0.90},
}

// SplitCheckpoints are the distances split times are computed for.
var SplitCheckpoints = []float64{Km1K, Km5K, Km10K, KmHalfMara, KmMarathon}

// ProjectionCheckpoints are the race distances projected times are computed
// for. The entered distance is excluded at projection time.
var ProjectionCheckpoints = []float64{Km5K, Km10K, KmHalfMara, KmMarathon}
