package intel

import (
	"strings"
	"time"
)

// windyKmh is the wind speed above which conditions count as windy.
const windyKmh = 25

func conditionHas(s Snapshot, keyword string) bool {
	return strings.Contains(strings.ToLower(s.Condition), keyword)
}

// Summarize returns a one-line description of the current conditions.
func Summarize(s Snapshot) string {
	temp := Round(s.Temperature)
	wind := WindKmh(s.WindSpeed)

	if isNight(s.Timestamp, s.Sunrise, s.Sunset) {
		switch {
		case conditionHas(s, "rain"):
			return "Rainy night ahead. Drive carefully."
		case conditionHas(s, "snow"):
			return "Cold snowy night. Stay warm indoors."
		case wind > windyKmh:
			return "Windy night conditions expected."
		case temp <= 10:
			return "Chilly night with low temperatures."
		}
		return "Quiet night with stable weather conditions."
	}

	switch {
	case conditionHas(s, "rain"):
		return "Rain expected today. Keep an umbrella handy."
	case conditionHas(s, "snow"):
		return "Snowy weather today. Dress warmly."
	case wind > windyKmh:
		return "Windy conditions today. Be cautious outdoors."
	case temp >= 30:
		return "Hot weather today. Stay hydrated."
	case temp <= 10:
		return "Cold weather today. Layer up."
	}
	return "Comfortable weather conditions throughout the day."
}

type outfitRule struct {
	icon  string
	day   string
	night string
}

var (
	outfitRain   = outfitRule{"☔", "An umbrella or rain jacket is recommended.", "Carry an umbrella if heading out tonight."}
	outfitSnow   = outfitRule{"🧤", "Wear warm layers and insulated footwear.", "Bundle up in warm layers if heading out tonight."}
	outfitWind   = outfitRule{"🧥", "A windproof jacket is a good choice.", "A windproof jacket is a good idea tonight."}
	outfitHot    = outfitRule{"👕", "Light, breathable clothing recommended.", "Light clothing for a warm night."}
	outfitCold   = outfitRule{"🧣", "A warm jacket is advised today.", "Warm layers recommended for a cold night."}
	outfitCasual = outfitRule{"👟", "Comfortable casual wear is suitable.", "Comfortable indoor clothing suggested."}
)

func (r outfitRule) pick(night bool) Outfit {
	if night {
		return Outfit{Icon: r.icon, Text: r.night}
	}
	return Outfit{Icon: r.icon, Text: r.day}
}

// SuggestOutfit recommends clothing for the current conditions. Unlike
// Summarize it compares the unrounded temperature.
func SuggestOutfit(s Snapshot) Outfit {
	night := isNight(s.Timestamp, s.Sunrise, s.Sunset)
	wind := WindKmh(s.WindSpeed)

	var rule outfitRule
	switch {
	case conditionHas(s, "rain"):
		rule = outfitRain
	case conditionHas(s, "snow"):
		rule = outfitSnow
	case wind > windyKmh:
		rule = outfitWind
	case s.Temperature >= 28:
		rule = outfitHot
	case s.Temperature <= 10:
		rule = outfitCold
	default:
		rule = outfitCasual
	}
	return rule.pick(night)
}

// Greet returns a greeting for now. The morning/afternoon split uses the
// hour of now in loc, the viewer's zone; a nil loc means time.Local.
func Greet(now, sunrise, sunset int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	if now < sunrise {
		return "Good early morning"
	}
	if time.Unix(now, 0).In(loc).Hour() < 12 {
		return "Good morning"
	}
	if now < sunset {
		return "Good afternoon"
	}
	return "Good evening"
}
