package calc

import "fmt"

// FormatMinutes renders a duration in minutes as "M:SS", or "H:MM:SS" when
// useHours is set and the value is an hour or more. Seconds are truncated,
// not rounded, so a value just under a boundary can read up to one second
// short but can never produce ":60".
func FormatMinutes(value float64, useHours bool) string {
	if value < 60 || !useHours {
		mins := int(value)
		secs := int((value - float64(mins)) * 60)
		return fmt.Sprintf("%d:%02d", mins, secs)
	}

	hours := int(value / 60)
	remaining := value - float64(hours)*60
	mins := int(remaining)
	secs := int((remaining - float64(mins)) * 60)
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}
