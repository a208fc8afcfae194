// Package calc is the derivation engine: given any two of distance, time and
// pace as raw strings it computes the third and every derived metric. All
// computation is pure; the package never prints.
package calc

import (
	"errors"
	"fmt"

	"pacecalc/internal/parse"
	"pacecalc/internal/units"
)

var (
	// ErrInvalidArguments is returned when Derive is not given exactly two
	// of distance, time and pace.
	ErrInvalidArguments = errors.New("exactly two of distance, time and pace must be provided")

	// ErrZeroDivisor is returned when a parsed distance or pace of zero
	// would be used as a divisor.
	ErrZeroDivisor = errors.New("distance and pace must be greater than zero")
)

// Input holds the raw strings for a derivation. An empty field means the
// quantity was not supplied; exactly two must be set.
type Input struct {
	Distance string
	Time     string
	Pace     string
}

// Entry is one labeled time in an ordered listing (splits, projections).
type Entry struct {
	Label string
	Time  string
}

// ZoneEntry is one named training zone with its formatted pace range.
type ZoneEntry struct {
	Name  string
	Range string
}

// Metrics is the complete result of a derivation. It is constructed once and
// never mutated; the slice fields carry their display order.
type Metrics struct {
	DistanceKm   float64
	TimeMinutes  float64
	PaceMinPerKm float64
	SpeedKmh     float64
	Splits       []Entry
	Projections  []Entry
	Zones        []ZoneEntry
}

// Derive parses the two supplied quantities, computes the third, and returns
// the fully populated metrics. Parse failures surface as *parse.ParseError;
// a zero distance or pace divisor fails with ErrZeroDivisor.
func Derive(in Input) (*Metrics, error) {
	var distKm, timeMins, paceMins float64

	switch {
	case in.Distance != "" && in.Time != "" && in.Pace == "":
		var err error
		if distKm, err = parse.Distance(in.Distance); err != nil {
			return nil, err
		}
		if timeMins, err = parse.Time(in.Time); err != nil {
			return nil, err
		}
		if distKm == 0 {
			return nil, fmt.Errorf("deriving pace: %w", ErrZeroDivisor)
		}
		paceMins = timeMins / distKm

	case in.Distance != "" && in.Pace != "" && in.Time == "":
		var err error
		if distKm, err = parse.Distance(in.Distance); err != nil {
			return nil, err
		}
		if paceMins, err = parse.Pace(in.Pace); err != nil {
			return nil, err
		}
		if distKm == 0 || paceMins == 0 {
			return nil, fmt.Errorf("deriving time: %w", ErrZeroDivisor)
		}
		timeMins = distKm * paceMins

	case in.Time != "" && in.Pace != "" && in.Distance == "":
		var err error
		if timeMins, err = parse.Time(in.Time); err != nil {
			return nil, err
		}
		if paceMins, err = parse.Pace(in.Pace); err != nil {
			return nil, err
		}
		if paceMins == 0 {
			return nil, fmt.Errorf("deriving distance: %w", ErrZeroDivisor)
		}
		distKm = timeMins / paceMins

	default:
		return nil, ErrInvalidArguments
	}

	return &Metrics{
		DistanceKm:   distKm,
		TimeMinutes:  timeMins,
		PaceMinPerKm: paceMins,
		SpeedKmh:     Speed(paceMins),
		Splits:       Splits(paceMins),
		Projections:  Projections(distKm, paceMins),
		Zones:        TrainingZones(paceMins),
	}, nil
}

// Speed converts a pace in min/km to km/h. Returns 0 for a non-positive pace.
func Speed(paceMins float64) float64 {
	if paceMins <= 0 {
		return 0
	}
	return 60 / paceMins
}

// Splits returns the predicted time at each standard checkpoint distance,
// run at a constant pace. Checkpoints of 10 km and up are formatted with hours.
func Splits(paceMins float64) []Entry {
	splits := make([]Entry, 0, len(units.SplitCheckpoints))
	for _, d := range units.SplitCheckpoints {
		splits = append(splits, Entry{
			Label: distanceLabel(d),
			Time:  FormatMinutes(d*paceMins, d >= units.Km10K),
		})
	}
	return splits
}

// Projections returns predicted finish times for the standard race distances,
// excluding the distance that was actually entered.
func Projections(distKm, paceMins float64) []Entry {
	projected := make([]Entry, 0, len(units.ProjectionCheckpoints))
	for _, d := range units.ProjectionCheckpoints {
		if d == distKm {
			continue
		}
		projected = append(projected, Entry{
			Label: distanceLabel(d),
			Time:  FormatMinutes(d*paceMins, d >= units.Km10K),
		})
	}
	return projected
}

// TrainingZones returns the pace band for each named zone, relative to the
// given threshold pace, in display order.
func TrainingZones(thresholdPace float64) []ZoneEntry {
	zones := make([]ZoneEntry, 0, len(units.Zones))
	for _, z := range units.Zones {
		minPace := FormatMinutes(thresholdPace*z.MinMult, false)
		maxPace := FormatMinutes(thresholdPace*z.MaxMult, false)
		zones = append(zones, ZoneEntry{
			Name:  z.Name,
			Range: minPace + " - " + maxPace,
		})
	}
	return zones
}

func distanceLabel(d float64) string {
	return fmt.Sprintf("%gkm", d)
}
