package weather

import (
	"time"

	"github.com/nimbusdash/nimbus/internal/intel"
)

// Dashboard aggregates everything shown for one city
type Dashboard struct {
	Location    string      `json:"location"`
	Coord       intel.Coord `json:"coord"`
	Temperature int         `json:"temperature"`
	FeelsLike   int         `json:"feels_like"`
	Humidity    int         `json:"humidity"`
	Description string      `json:"description"`
	WindKmh     int         `json:"wind_kmh"`
	Icon        intel.Icon  `json:"icon"`

	Greeting  string       `json:"greeting"`
	Summary   string       `json:"summary"`
	Outfit    intel.Outfit `json:"outfit"`
	Score     int          `json:"score"`
	ScoreText string       `json:"score_text"`
	Theme     intel.Theme  `json:"theme"`

	Sunrise     string  `json:"sunrise"` // HH:MM, city local
	Sunset      string  `json:"sunset"`
	DayProgress float64 `json:"day_progress"`

	AirQuality string `json:"air_quality"`

	ForecastAvailable bool              `json:"forecast_available"`
	ForecastMessage   string            `json:"forecast_message,omitempty"`
	Hourly            []intel.HourlyRow `json:"hourly"`
	Daily             []intel.DayBucket `json:"daily"`
	TodayRange        *intel.TempRange  `json:"today_range,omitempty"`
	Chart             intel.ChartData   `json:"chart"`

	FetchedAt time.Time `json:"fetched_at"`
}

// Condition is one entry of the upstream "weather" array
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainBlock is the upstream "main" object
type MainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

// CurrentResponse represents the /weather response
type CurrentResponse struct {
	Coord   intel.Coord `json:"coord"`
	Weather []Condition `json:"weather"`
	Main    MainBlock   `json:"main"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

// Snapshot converts the response into classifier input. A missing weather
// array leaves the condition and icon empty.
func (r *CurrentResponse) Snapshot() intel.Snapshot {
	s := intel.Snapshot{
		Timestamp:      r.Dt,
		Temperature:    r.Main.Temp,
		FeelsLike:      r.Main.FeelsLike,
		Humidity:       r.Main.Humidity,
		WindSpeed:      r.Wind.Speed,
		Sunrise:        r.Sys.Sunrise,
		Sunset:         r.Sys.Sunset,
		Coord:          r.Coord,
		Location:       r.Name,
		TimezoneOffset: r.Timezone,
	}
	if len(r.Weather) > 0 {
		s.Condition = r.Weather[0].Main
		s.Description = r.Weather[0].Description
		s.ConditionIcon = r.Weather[0].Icon
	}
	return s
}

// ForecastItem is one 3-hourly entry of the /forecast response
type ForecastItem struct {
	Dt      int64       `json:"dt"`
	Main    MainBlock   `json:"main"`
	Weather []Condition `json:"weather"`
}

// ForecastResponse represents the /forecast response
type ForecastResponse struct {
	List []ForecastItem `json:"list"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// Entries converts the forecast list into classifier input
func (f *ForecastResponse) Entries() []intel.ForecastEntry {
	entries := make([]intel.ForecastEntry, 0, len(f.List))
	for _, item := range f.List {
		e := intel.ForecastEntry{
			Timestamp:   item.Dt,
			Temperature: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			e.ConditionIcon = item.Weather[0].Icon
		}
		entries = append(entries, e)
	}
	return entries
}

// AirQualityResponse represents the /air_pollution response
type AirQualityResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// Index returns the air quality index of the first reading
func (a *AirQualityResponse) Index() (int, bool) {
	if a == nil || len(a.List) == 0 {
		return 0, false
	}
	return a.List[0].Main.AQI, true
}
