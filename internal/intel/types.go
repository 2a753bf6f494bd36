// Package intel derives dashboard display values from weather readings.
//
// Everything here is a pure function over explicit inputs: no I/O, no shared
// state. Missing upstream fields arrive as zero values and degrade to the
// documented defaults (clear-day icon, "01d" representative code, empty
// slices).
package intel

import "math"

// Coord is a latitude/longitude pair.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Snapshot is a single point-in-time weather reading.
type Snapshot struct {
	Timestamp      int64   `json:"timestamp"`   // unix seconds
	Temperature    float64 `json:"temperature"` // °C
	FeelsLike      float64 `json:"feels_like"`
	Humidity       int     `json:"humidity"`   // percent
	WindSpeed      float64 `json:"wind_speed"` // m/s
	Condition      string  `json:"condition"`  // primary label, e.g. "Rain"
	Description    string  `json:"description"`
	ConditionIcon  string  `json:"condition_icon"` // e.g. "10d"
	Sunrise        int64   `json:"sunrise"`
	Sunset         int64   `json:"sunset"`
	Coord          Coord   `json:"coord"`
	Location       string  `json:"location"`
	TimezoneOffset int     `json:"timezone_offset"` // seconds east of UTC
}

// ForecastEntry is one 3-hourly forecast point.
type ForecastEntry struct {
	Timestamp     int64   `json:"timestamp"`
	Temperature   float64 `json:"temperature"`
	ConditionIcon string  `json:"condition_icon"`
}

// Outfit is a clothing suggestion.
type Outfit struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Round rounds half-up (towards +Inf), so -2.5 becomes -2.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// WindKmh converts a wind speed in m/s to whole km/h.
func WindKmh(speed float64) int {
	return Round(speed * 3.6)
}
