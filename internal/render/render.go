// Package render turns computed metrics into the styled report printed on
// stdout. Styling is an explicit Renderer option; the computation packages
// never see it.
package render

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"pacecalc/internal/calc"
	"pacecalc/internal/units"
)

// Options controls what the report contains and how it looks.
type Options struct {
	Colored      bool
	ShowInsights bool
	Chart        bool
}

// Renderer renders metrics reports with a fixed set of options.
type Renderer struct {
	opts   Options
	styles styles
}

// New creates a Renderer for the given options.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts, styles: newStyles(opts.Colored)}
}

const rule = "=================================================="

// Banner returns the application banner.
func (r *Renderer) Banner() string {
	border := "+===============================================================+"
	title := "|                        PACE CALCULATOR                        |"
	return r.styles.banner.Render(border + "\n" + title + "\n" + border)
}

// Report renders the full calculation report for the given metrics.
func (r *Renderer) Report(m *calc.Metrics) string {
	var b strings.Builder

	b.WriteString(r.styles.good.Render("CALCULATION RESULTS"))
	b.WriteString("\n" + rule + "\n")

	b.WriteString("\n" + r.styles.section.Render("MAIN METRICS:") + "\n")
	r.row(&b, "Distance:", fmt.Sprintf("%.3f km", m.DistanceKm))
	r.row(&b, "Time:    ", calc.FormatMinutes(m.TimeMinutes, true))
	r.row(&b, "Pace:    ", calc.FormatMinutes(m.PaceMinPerKm, false)+" min/km")
	r.row(&b, "Speed:   ", fmt.Sprintf("%.1f km/h", m.SpeedKmh))

	b.WriteString("\n" + r.styles.section.Render("SPLITS:") + "\n")
	for _, s := range m.Splits {
		r.row(&b, fmt.Sprintf("%9s:", s.Label), s.Time)
	}

	if len(m.Projections) > 0 {
		b.WriteString("\n" + r.styles.section.Render("PROJECTED TIMES:") + "\n")
		for _, p := range m.Projections {
			r.row(&b, fmt.Sprintf("%9s:", p.Label), p.Time)
		}
	}

	b.WriteString("\n" + r.styles.section.Render("TRAINING ZONES (based on current pace):") + "\n")
	for _, z := range m.Zones {
		r.row(&b, fmt.Sprintf("%10s:", z.Name), z.Range+" min/km")
	}

	if r.opts.ShowInsights {
		b.WriteString("\n" + r.styles.section.Render("PERFORMANCE INSIGHTS:") + "\n")
		b.WriteString(r.insights(m))
	}

	if r.opts.Chart {
		b.WriteString("\n" + r.styles.section.Render("CUMULATIVE TIME (minutes by km):") + "\n")
		b.WriteString(r.chart(m) + "\n")
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// Error renders a terminal failure message.
func (r *Renderer) Error(err error) string {
	return r.styles.caution.Render("Input error: " + err.Error())
}

func (r *Renderer) row(b *strings.Builder, label, value string) {
	b.WriteString("  " + r.styles.label.Render(label) + " " + r.styles.value.Render(value) + "\n")
}

func (r *Renderer) insights(m *calc.Metrics) string {
	var b strings.Builder

	tier := calc.Tier(m.PaceMinPerKm)
	style := r.styles.good
	switch tier {
	case calc.Solid:
		style = r.styles.caution
	case calc.Good, calc.Building:
		style = r.styles.value
	}
	b.WriteString("  " + style.Render(tier.Commentary()) + "\n")

	if projected, ok := calc.ProjectMarathon(m.PaceMinPerKm, m.DistanceKm); ok {
		line := "At this pace, you'd complete a marathon in: " + projected
		b.WriteString("  " + r.styles.highlight.Render(line) + "\n")
	}

	return b.String()
}

// chart plots cumulative time over distance at the derived pace, one point
// per kilometer out to the marathon.
func (r *Renderer) chart(m *calc.Metrics) string {
	marathonKm := float64(units.KmMarathon)
	points := int(marathonKm)
	data := make([]float64, 0, points)
	for km := 1; km <= points; km++ {
		data = append(data, float64(km)*m.PaceMinPerKm)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)
	return r.styles.muted.Render(graph)
}
