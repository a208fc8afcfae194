package units

import "testing"

func TestSuffixUnitsOrderedLongestFirst(t *testing.T) {
	// The suffix scan takes the first match, so a shorter suffix appearing
	// before a longer one would shadow it ("10km" binding to "m" or "k").
	for i := 1; i < len(SuffixUnits); i++ {
		if len(SuffixUnits[i].Suffix) > len(SuffixUnits[i-1].Suffix) {
			t.Errorf("SuffixUnits[%d] %q is longer than its predecessor %q",
				i, SuffixUnits[i].Suffix, SuffixUnits[i-1].Suffix)
		}
	}
}

func TestSuffixUnitsAreNotMarathonShorthand(t *testing.T) {
	// "m" means marathon and lives in Presets only. As a suffix it would
	// turn inputs like "5m" into five marathons.
	for _, u := range SuffixUnits {
		if u.Suffix == "m" {
			t.Errorf("SuffixUnits must not contain %q", "m")
		}
	}
	if Presets["m"] != KmMarathon {
		t.Errorf("Presets[m] = %v, want %v", Presets["m"], KmMarathon)
	}
}

func TestZoneBandsAreOrdered(t *testing.T) {
	for _, z := range Zones {
		if z.MinMult >= z.MaxMult {
			t.Errorf("zone %q band inverted: min %v >= max %v", z.Name, z.MinMult, z.MaxMult)
		}
	}
}
