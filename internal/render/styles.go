package render

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor   = lipgloss.Color("#06B6D4") // Cyan
	successColor   = lipgloss.Color("#10B981") // Green
	infoColor      = lipgloss.Color("#3B82F6") // Blue
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	highlightColor = lipgloss.Color("#D946EF") // Magenta
	mutedColor     = lipgloss.Color("#6B7280") // Gray
)

// styles carries every style the report uses. Built once per Renderer so the
// color toggle is an explicit value, not global state.
type styles struct {
	banner    lipgloss.Style
	section   lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	good      lipgloss.Style
	caution   lipgloss.Style
	highlight lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(colored bool) styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return styles{
			banner:    plain,
			section:   plain,
			label:     plain,
			value:     plain,
			good:      plain,
			caution:   plain,
			highlight: plain,
			muted:     plain,
		}
	}

	return styles{
		banner:    lipgloss.NewStyle().Bold(true).Foreground(primaryColor),
		section:   lipgloss.NewStyle().Bold(true).Foreground(highlightColor),
		label:     lipgloss.NewStyle().Foreground(mutedColor),
		value:     lipgloss.NewStyle().Foreground(infoColor),
		good:      lipgloss.NewStyle().Bold(true).Foreground(successColor),
		caution:   lipgloss.NewStyle().Foreground(warningColor),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(highlightColor),
		muted:     lipgloss.NewStyle().Foreground(mutedColor),
	}
}
