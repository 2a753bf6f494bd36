package intel

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MaxForecastDays caps the number of daily buckets.
	MaxForecastDays = 5
	// ForecastStep is the expected spacing between forecast entries.
	ForecastStep = 3 * 60 * 60
	// chartPoints is how many forecast entries the temperature chart shows.
	chartPoints = 8
)

// hourlyOffsets are the hours after "now" labelled on the hourly strip. The
// Nth offset is paired with the Nth forecast entry.
var hourlyOffsets = []int{3, 6, 9, 12, 15, 18}

// ErrIrregularSpacing is reported when forecast entries are not 3 hours apart.
var ErrIrregularSpacing = errors.New("forecast entries are not 3 hours apart")

// DayBucket is the forecast for one UTC calendar day.
type DayBucket struct {
	Date               string          `json:"date"` // YYYY-MM-DD
	Weekday            string          `json:"weekday"`
	Entries            []ForecastEntry `json:"-"`
	Min                int             `json:"min"`
	Max                int             `json:"max"`
	RepresentativeIcon string          `json:"representative_icon"`
	Icon               Icon            `json:"icon"`
}

// TempRange is a rounded high/low pair.
type TempRange struct {
	Max int `json:"max"`
	Min int `json:"min"`
}

// HourlyRow is one cell on the hourly strip.
type HourlyRow struct {
	Label       string `json:"label"`
	Temperature int    `json:"temperature"`
	Icon        Icon   `json:"icon"`
}

// ChartData is the hourly temperature series with suggested axis bounds.
type ChartData struct {
	Labels       []string `json:"labels"`
	Temperatures []int    `json:"temperatures"`
	SuggestedMin int      `json:"suggested_min"`
	SuggestedMax int      `json:"suggested_max"`
}

func utcDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.DateOnly)
}

// AggregateDaily groups entries by the UTC date of their timestamp, keeping
// the order dates are first seen, and summarizes up to five days.
func AggregateDaily(entries []ForecastEntry) []DayBucket {
	var order []string
	byDate := make(map[string][]ForecastEntry)
	for _, e := range entries {
		d := utcDate(e.Timestamp)
		if _, seen := byDate[d]; !seen {
			order = append(order, d)
		}
		byDate[d] = append(byDate[d], e)
	}

	if len(order) > MaxForecastDays {
		order = order[:MaxForecastDays]
	}

	buckets := make([]DayBucket, 0, len(order))
	for _, d := range order {
		buckets = append(buckets, summarizeDay(d, byDate[d]))
	}
	return buckets
}

func summarizeDay(date string, items []ForecastEntry) DayBucket {
	b := DayBucket{
		Date:               date,
		Entries:            items,
		RepresentativeIcon: DefaultConditionIcon,
	}
	if t, err := time.Parse(time.DateOnly, date); err == nil {
		b.Weekday = t.Weekday().String()[:3]
	}

	if len(items) > 0 {
		lo, hi := items[0].Temperature, items[0].Temperature
		for _, e := range items[1:] {
			lo = min(lo, e.Temperature)
			hi = max(hi, e.Temperature)
		}
		b.Min, b.Max = Round(lo), Round(hi)

		if code := items[len(items)/2].ConditionIcon; code != "" {
			b.RepresentativeIcon = code
		}
	}
	b.Icon = SelectDailyIcon(b.RepresentativeIcon)
	return b
}

// TodayRange returns the first bucket's high and low.
func TodayRange(buckets []DayBucket) (TempRange, bool) {
	if len(buckets) == 0 {
		return TempRange{}, false
	}
	return TempRange{Max: buckets[0].Max, Min: buckets[0].Min}, true
}

// CheckSpacing verifies the entries ProjectHourly will use are exactly
// ForecastStep apart.
func CheckSpacing(entries []ForecastEntry) error {
	n := min(len(entries), len(hourlyOffsets))
	for i := 1; i < n; i++ {
		if gap := entries[i].Timestamp - entries[i-1].Timestamp; gap != ForecastStep {
			return fmt.Errorf("%w: entry %d is %ds after entry %d", ErrIrregularSpacing, i, gap, i-1)
		}
	}
	return nil
}

// ProjectHourly builds the hourly strip: a "Now" row from current followed by
// one row per fixed offset. Entries are paired with offsets by position, so
// callers should check CheckSpacing first. Future rows reuse current's
// sunrise and sunset.
func ProjectHourly(entries []ForecastEntry, timezoneOffset int, current Snapshot) []HourlyRow {
	rows := make([]HourlyRow, 0, len(hourlyOffsets)+1)
	rows = append(rows, HourlyRow{
		Label:       "Now",
		Temperature: Round(current.Temperature),
		Icon:        SelectPointIcon(current.ConditionIcon, current.Timestamp, current.Sunrise, current.Sunset),
	})

	nowHour := localHour(current.Timestamp, timezoneOffset)
	for i, e := range entries {
		if i >= len(hourlyOffsets) {
			break
		}
		rows = append(rows, HourlyRow{
			Label:       fmt.Sprintf("%02d:00", (nowHour+hourlyOffsets[i])%24),
			Temperature: Round(e.Temperature),
			Icon:        SelectPointIcon(e.ConditionIcon, e.Timestamp, current.Sunrise, current.Sunset),
		})
	}
	return rows
}

// ChartSeries returns the first eight entries as local-hour labelled points.
func ChartSeries(entries []ForecastEntry, timezoneOffset int) ChartData {
	n := min(len(entries), chartPoints)
	c := ChartData{
		Labels:       make([]string, 0, n),
		Temperatures: make([]int, 0, n),
	}
	if n == 0 {
		return c
	}

	lo, hi := Round(entries[0].Temperature), Round(entries[0].Temperature)
	for _, e := range entries[:n] {
		t := Round(e.Temperature)
		c.Labels = append(c.Labels, fmt.Sprintf("%02d:00", localHour(e.Timestamp, timezoneOffset)))
		c.Temperatures = append(c.Temperatures, t)
		lo, hi = min(lo, t), max(hi, t)
	}
	c.SuggestedMin = lo - 2
	c.SuggestedMax = hi + 2
	return c
}

func localHour(ts int64, offset int) int {
	return time.Unix(ts+int64(offset), 0).UTC().Hour()
}
