package calc

import "testing"

func TestTier(t *testing.T) {
	tests := []struct {
		name string
		pace float64
		want Performance
	}{
		{name: "world class", pace: 2.9, want: Elite},
		{name: "elite boundary inclusive", pace: 3, want: Elite},
		{name: "just over elite", pace: 3.01, want: Excellent},
		{name: "excellent boundary", pace: 4, want: Excellent},
		{name: "good boundary", pace: 5, want: Good},
		{name: "solid boundary", pace: 6, want: Solid},
		{name: "easy jogging", pace: 7.5, want: Building},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tier(tt.pace); got != tt.want {
				t.Errorf("Tier(%v) = %v, want %v", tt.pace, got, tt.want)
			}
		})
	}
}

func TestPerformanceStrings(t *testing.T) {
	for _, p := range []Performance{Elite, Excellent, Good, Solid, Building} {
		if p.String() == "" {
			t.Errorf("Performance(%d).String() is empty", p)
		}
		if p.Commentary() == "" {
			t.Errorf("Performance(%d).Commentary() is empty", p)
		}
	}
}

func TestProjectMarathon(t *testing.T) {
	tests := []struct {
		name     string
		pace     float64
		distKm   float64
		want     string
		wantShow bool
	}{
		{
			name:     "projects from a 10k",
			pace:     4.5,
			distKm:   10,
			want:     "3:09:52",
			wantShow: true,
		},
		{
			name:     "projects from a half",
			pace:     5,
			distKm:   21.0975,
			want:     "3:30:58",
			wantShow: true,
		},
		{
			name:     "no projection for a full marathon",
			pace:     4.5,
			distKm:   42.195,
			wantShow: false,
		},
		{
			name:     "no projection beyond marathon distance",
			pace:     6,
			distKm:   50,
			wantShow: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, show := ProjectMarathon(tt.pace, tt.distKm)
			if show != tt.wantShow {
				t.Fatalf("ProjectMarathon(%v, %v) show = %v, want %v", tt.pace, tt.distKm, show, tt.wantShow)
			}
			if show && got != tt.want {
				t.Errorf("ProjectMarathon(%v, %v) = %q, want %q", tt.pace, tt.distKm, got, tt.want)
			}
		})
	}
}
