package intel

import (
	"strings"
	"time"
)

// Theme holds the page classes for the current conditions.
type Theme struct {
	Period     string `json:"period"`     // "day" or "night"
	Transition string `json:"transition"` // "sunrise", "sunset" or ""
	Weather    string `json:"weather"`
}

// ThemeFor picks background classes. Transitions only apply during the day.
func ThemeFor(s Snapshot) Theme {
	w := Classify(s.Timestamp, s.Sunrise, s.Sunset)

	var th Theme
	if w.IsDay {
		th.Period = "day"
		switch {
		case w.NearSunrise:
			th.Transition = "sunrise"
		case w.NearSunset:
			th.Transition = "sunset"
		}
	} else {
		th.Period = "night"
	}

	c := strings.ToLower(s.Condition)
	switch {
	case strings.Contains(c, "thunder"):
		th.Weather = "weather-thunder"
	case strings.Contains(c, "rain"):
		th.Weather = "weather-rain"
	case strings.Contains(c, "snow"):
		th.Weather = "weather-snow"
	case strings.Contains(c, "mist"), strings.Contains(c, "fog"), strings.Contains(c, "haze"):
		th.Weather = "weather-mist"
	case strings.Contains(c, "cloud"):
		th.Weather = "weather-clouds"
	default:
		th.Weather = "weather-clear"
	}
	return th
}

// DayProgress reports how far now is between sunrise and sunset, 0 to 100.
func DayProgress(now, sunrise, sunset int64) float64 {
	switch {
	case now <= sunrise:
		return 0
	case now >= sunset:
		return 100
	}
	return float64(now-sunrise) / float64(sunset-sunrise) * 100
}

// FormatLocalClock renders unix as HH:MM at a fixed UTC offset in seconds.
func FormatLocalClock(unix int64, offset int) string {
	return time.Unix(unix+int64(offset), 0).UTC().Format("15:04")
}

// AQIUnavailable is shown when air quality cannot be determined.
const AQIUnavailable = "Air quality unavailable"

// AQILabel describes an air quality index from 1 (good) to 5 (very poor).
func AQILabel(aqi int) string {
	switch aqi {
	case 1:
		return "🟢 Good air quality"
	case 2:
		return "🟡 Fair air quality"
	case 3:
		return "🟠 Moderate air quality"
	case 4:
		return "🔴 Poor air quality"
	case 5:
		return "🟣 Very poor air quality"
	}
	return AQIUnavailable
}
