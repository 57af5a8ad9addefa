package weather

import "math"

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CompassPoint maps degrees to one of the 16 compass points. Each point
// covers 22.5 degrees centred on its heading, so N spans [348.75, 11.25).
func CompassPoint(deg float64) string {
	idx := int(math.Floor((deg+11.25)/22.5)) % len(compassPoints)
	if idx < 0 {
		idx += len(compassPoints)
	}
	return compassPoints[idx]
}

func IsCompassPoint(s string) bool {
	for _, p := range compassPoints {
		if p == s {
			return true
		}
	}
	return false
}
