package calc

import (
	"testing"

	"pacecalc/internal/parse"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		useHours bool
		want     string
	}{
		{name: "whole minutes", value: 45, useHours: true, want: "45:00"},
		{name: "minutes and seconds", value: 4.5, useHours: false, want: "4:30"},
		{name: "sub-minute value", value: 0.75, useHours: false, want: "0:45"},
		{name: "exactly one hour", value: 60, useHours: true, want: "1:00:00"},
		{name: "hours format", value: 90.75, useHours: true, want: "1:30:45"},
		{name: "marathon at 4:30 pace", value: 189.8775, useHours: true, want: "3:09:52"},
		{name: "over an hour without hours flag", value: 90.75, useHours: false, want: "90:45"},
		{name: "zero", value: 0, useHours: true, want: "0:00"},
		// Seconds are truncated, never rounded up: no ":60" carry is possible.
		{name: "just under a minute boundary", value: 59.999, useHours: true, want: "59:59"},
		{name: "just under an hour boundary", value: 59.999, useHours: false, want: "59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMinutes(tt.value, tt.useHours); got != tt.want {
				t.Errorf("FormatMinutes(%v, %v) = %q, want %q", tt.value, tt.useHours, got, tt.want)
			}
		})
	}
}

func TestFormatMinutesRoundTrip(t *testing.T) {
	// Formatting then parsing recovers the value to within one second.
	values := []float64{4.5, 22.5, 45, 94.93875, 189.8775}

	for _, v := range values {
		formatted := FormatMinutes(v, true)
		parsed, err := parse.Time(formatted)
		if err != nil {
			t.Fatalf("parsing %q: %v", formatted, err)
		}
		if diff := v - parsed; diff < 0 || diff > 1.0/60 {
			t.Errorf("round trip of %v through %q lost %v minutes", v, formatted, diff)
		}
	}
}
