package intel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 2024-01-15 in UTC; sunrise 06:00, sunset 18:00.
const (
	midnight int64 = 1705276800
	hour     int64 = 3600
	sunrise        = midnight + 6*hour
	sunset         = midnight + 18*hour
	noon           = midnight + 12*hour
)

func snapshotAt(ts int64, temp float64, condition string, windKmh float64) Snapshot {
	return Snapshot{
		Timestamp:   ts,
		Temperature: temp,
		Condition:   condition,
		WindSpeed:   windKmh / 3.6,
		Sunrise:     sunrise,
		Sunset:      sunset,
	}
}

// TestClassify tests day/night boundaries and transition windows
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		now  int64
		want Window
	}{
		{"before sunrise", sunrise - 2*hour, Window{IsNight: true}},
		{"at sunrise", sunrise, Window{IsDay: true, NearSunrise: true}},
		{"shortly before sunrise", sunrise - hour, Window{IsNight: true, NearSunrise: true}},
		{"noon", noon, Window{IsDay: true}},
		{"just before sunset", sunset - 1, Window{IsDay: true, NearSunset: true}},
		{"at sunset", sunset, Window{IsNight: true, NearSunset: true}},
		{"late evening", sunset + 2*hour, Window{IsNight: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.now, sunrise, sunset))
		})
	}
}

// TestSelectPointIcon tests condition precedence and the clear-sky rules
func TestSelectPointIcon(t *testing.T) {
	tests := []struct {
		name string
		code string
		ts   int64
		want Icon
	}{
		{"missing code", "", noon, IconSun},
		{"shower rain", "09d", noon, IconRain},
		{"rain at night", "10n", midnight, IconRain},
		{"snow", "13d", sunrise, IconSnow},
		{"mist", "50n", noon, IconMist},
		{"few clouds", "02d", noon, IconClouds},
		{"scattered clouds", "03n", midnight, IconClouds},
		{"broken clouds at sunset", "04d", sunset, IconClouds},
		{"thunderstorm falls back to clouds", "11d", noon, IconClouds},
		{"clear day", "01d", noon, IconSun},
		{"clear night", "01n", midnight, IconMoon},
		{"clear at sunrise with night code", "01n", sunrise, IconSun},
		{"clear before sunrise within window", "01n", sunrise - 30*60, IconSun},
		{"clear near sunset with day code", "01d", sunset - 30*60, IconMoon},
		{"clear at sunset", "01d", sunset, IconMoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SelectPointIcon(tt.code, tt.ts, sunrise, sunset))
		})
	}
}

// TestSelectDailyIcon_NeverMoon tests that a daily icon is never the moon
func TestSelectDailyIcon_NeverMoon(t *testing.T) {
	groups := []string{"01", "02", "03", "04", "09", "10", "11", "13", "50", "99", ""}
	for _, g := range groups {
		for _, suffix := range []string{"d", "n", ""} {
			require.NotEqual(t, IconMoon, SelectDailyIcon(g+suffix), "code %q", g+suffix)
		}
	}

	require.Equal(t, IconSun, SelectDailyIcon("01n"))
	require.Equal(t, IconRain, SelectDailyIcon("10n"))
	require.Equal(t, IconSnow, SelectDailyIcon("13d"))
	require.Equal(t, IconMist, SelectDailyIcon("50d"))
	require.Equal(t, IconClouds, SelectDailyIcon("11d"))
	require.Equal(t, IconSun, SelectDailyIcon(""))
}

// TestSummarize tests the priority order for day and night summaries
func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want string
	}{
		{"hot clear day", snapshotAt(noon, 32, "Clear", 10), "Hot weather today. Stay hydrated."},
		{"rounds up to hot", snapshotAt(noon, 29.5, "Clear", 0), "Hot weather today. Stay hydrated."},
		{"rainy day", snapshotAt(noon, 35, "Rain", 40), "Rain expected today. Keep an umbrella handy."},
		{"snowy day", snapshotAt(noon, 0, "Snow", 40), "Snowy weather today. Dress warmly."},
		{"windy day", snapshotAt(noon, 20, "Clouds", 30), "Windy conditions today. Be cautious outdoors."},
		{"wind at threshold is calm", snapshotAt(noon, 20, "Clouds", 25), "Comfortable weather conditions throughout the day."},
		{"cold day", snapshotAt(noon, 10, "Clear", 5), "Cold weather today. Layer up."},
		{"drizzle is not rain", snapshotAt(noon, 20, "Drizzle", 5), "Comfortable weather conditions throughout the day."},
		{"thunderstorm is not rain", snapshotAt(noon, 20, "Thunderstorm", 5), "Comfortable weather conditions throughout the day."},
		{"snowy night", snapshotAt(sunset+2*hour, 5, "Snow", 0), "Cold snowy night. Stay warm indoors."},
		{"rainy night", snapshotAt(midnight, 15, "Rain", 0), "Rainy night ahead. Drive carefully."},
		{"windy night", snapshotAt(midnight, 15, "Clear", 26), "Windy night conditions expected."},
		{"chilly night", snapshotAt(midnight, 10.4, "Clear", 0), "Chilly night with low temperatures."},
		{"hot night stays quiet", snapshotAt(midnight, 31, "Clear", 0), "Quiet night with stable weather conditions."},
		{"sunset is night", snapshotAt(sunset, 20, "Clear", 0), "Quiet night with stable weather conditions."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Summarize(tt.snap))
		})
	}
}

// TestSuggestOutfit tests each branch in both day and night phrasing
func TestSuggestOutfit(t *testing.T) {
	tests := []struct {
		name      string
		temp      float64
		condition string
		wind      float64
		rule      outfitRule
	}{
		{"rain", 20, "Rain", 0, outfitRain},
		{"snow", -3, "Snow", 0, outfitSnow},
		{"wind", 20, "Clear", 40, outfitWind},
		{"hot", 28, "Clear", 0, outfitHot},
		{"hot is unrounded", 27.6, "Clear", 0, outfitCasual},
		{"cold", 10, "Clouds", 0, outfitCold},
		{"casual", 20, "Clouds", 0, outfitCasual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := SuggestOutfit(snapshotAt(noon, tt.temp, tt.condition, tt.wind))
			require.Equal(t, Outfit{Icon: tt.rule.icon, Text: tt.rule.day}, day)

			night := SuggestOutfit(snapshotAt(midnight, tt.temp, tt.condition, tt.wind))
			require.Equal(t, Outfit{Icon: tt.rule.icon, Text: tt.rule.night}, night)
			require.NotEqual(t, day.Text, night.Text)
		})
	}
}

// TestGreet tests greetings across the day in a fixed viewer zone
func TestGreet(t *testing.T) {
	tests := []struct {
		name string
		now  int64
		want string
	}{
		{"before sunrise", sunrise - hour, "Good early morning"},
		{"morning", midnight + 9*hour, "Good morning"},
		{"afternoon", midnight + 14*hour, "Good afternoon"},
		{"evening", sunset + hour, "Good evening"},
		{"at sunset", sunset, "Good evening"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Greet(tt.now, sunrise, sunset, time.UTC))
		})
	}
}

// TestGreet_ViewerZone tests that the hour comes from the viewer's zone
func TestGreet_ViewerZone(t *testing.T) {
	// 14:00 UTC is 09:00 in UTC-5.
	zone := time.FixedZone("UTC-5", -5*60*60)
	require.Equal(t, "Good morning", Greet(midnight+14*hour, sunrise, sunset, zone))
	require.Equal(t, "Good afternoon", Greet(midnight+14*hour, sunrise, sunset, time.UTC))
}

// TestScore tests deductions and clamping
func TestScore(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want int
	}{
		{"hot clear day", snapshotAt(noon, 32, "Clear", 10), 8},
		{"snowy night at 5C", snapshotAt(sunset+2*hour, 5, "Snow", 0), 4},
		{"perfect day", snapshotAt(noon, 20, "Clear", 5), 10},
		{"mild band", snapshotAt(noon, 14, "Clear", 5), 9},
		{"warm band", snapshotAt(noon, 28, "Clear", 5), 9},
		{"rain", snapshotAt(noon, 20, "Rain", 0), 8},
		{"thunderstorm", snapshotAt(noon, 20, "Thunderstorm", 0), 6},
		{"breezy", snapshotAt(noon, 20, "Clear", 21), 9},
		{"gale", snapshotAt(noon, 20, "Clear", 31), 8},
		{"clamped at one", snapshotAt(midnight, -20, "Thunder snow rain", 60), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Score(tt.snap))
		})
	}
}

// TestScore_Bounds tests that the score stays within 1..10 for any temperature
func TestScore_Bounds(t *testing.T) {
	for temp := -60.0; temp <= 60; temp += 0.5 {
		for _, cond := range []string{"Clear", "Rain", "Snow", "Thunderstorm"} {
			for _, ts := range []int64{noon, midnight} {
				s := Score(snapshotAt(ts, temp, cond, 50))
				require.GreaterOrEqual(t, s, 1)
				require.LessOrEqual(t, s, 10)
			}
		}
	}
}

// TestExplainScore tests the score explanation thresholds
func TestExplainScore(t *testing.T) {
	require.Equal(t, "Excellent conditions today. Very comfortable weather.", ExplainScore(8))
	require.Equal(t, "Decent conditions. Minor discomfort possible.", ExplainScore(6))
	require.Equal(t, "Challenging weather today. Plan carefully.", ExplainScore(5))
}

// TestWindKmh tests conversion and half-up rounding
func TestWindKmh(t *testing.T) {
	require.Equal(t, 0, WindKmh(0))
	require.Equal(t, 18, WindKmh(5))
	require.Equal(t, 9, WindKmh(2.5))
}
