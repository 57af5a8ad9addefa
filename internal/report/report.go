// Package report renders weather reports as plain text.
package report

import (
	"fmt"
	"strings"

	"ulascansenturk/weather-report/internal/weather"
)

const (
	border    = "+--------------------------------------------------------------+"
	titleLine = "|                    WEATHER REPORT                            |"
)

// FormatReport renders the current conditions as a boxed block.
func FormatReport(r weather.Report) string {
	w, ok := r.Weather()
	if !ok {
		return formatError(r)
	}

	loc := w.Location()
	cur := w.Current()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(border + "\n")
	b.WriteString(titleLine + "\n")
	b.WriteString(border + "\n")
	fmt.Fprintf(&b, "|  Location: %s\n", formatLocation(loc))
	b.WriteString("|\n")
	fmt.Fprintf(&b, "|  Current Conditions: %s\n", cur.Condition)
	b.WriteString("|\n")
	fmt.Fprintf(&b, "|  Temperature: %dF (%dC)\n", cur.TempF, cur.TempC)
	fmt.Fprintf(&b, "|  Feels Like:  %dF (%dC)\n", cur.FeelsLikeF, cur.FeelsLikeC)
	b.WriteString("|\n")
	fmt.Fprintf(&b, "|  Humidity:    %d%%\n", cur.HumidityPct)
	fmt.Fprintf(&b, "|  Wind:        %d mph %s\n", cur.WindMph, cur.WindDirection)
	fmt.Fprintf(&b, "|  UV Index:    %d\n", cur.UVIndex)
	fmt.Fprintf(&b, "|  Visibility:  %d miles\n", cur.VisibilityMiles)
	b.WriteString(border + "\n")

	return b.String()
}

// FormatForecast renders up to days forecast entries. days is clamped to
// what the report actually holds.
func FormatForecast(r weather.Report, days int) string {
	w, ok := r.Weather()
	if !ok {
		return formatError(r)
	}

	forecast := w.Forecast()
	if days < 0 {
		days = 0
	}
	if days > len(forecast) {
		days = len(forecast)
	}

	lines := []string{
		fmt.Sprintf("\n%d-Day Forecast for %s:\n%s", days, w.Location().City, strings.Repeat("=", 50)),
	}
	for _, day := range forecast[:days] {
		lines = append(lines,
			"\n"+day.Date,
			fmt.Sprintf("  High: %dF  |  Low: %dF", day.HighF, day.LowF),
			fmt.Sprintf("  Conditions: %s", day.Condition),
		)
	}

	return strings.Join(lines, "\n")
}

func formatError(r weather.Report) string {
	return "Error: " + r.Err()
}

func formatLocation(loc weather.Location) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{loc.City, loc.Region, loc.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
