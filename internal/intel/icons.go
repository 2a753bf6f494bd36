package intel

import "strings"

// Icon identifies a display icon asset.
type Icon string

const (
	IconSun    Icon = "colored-clear.svg"
	IconMoon   Icon = "colored-clear-night.svg"
	IconRain   Icon = "colored-rain.svg"
	IconSnow   Icon = "colored-snow.svg"
	IconMist   Icon = "colored-mist.svg"
	IconClouds Icon = "colored-clouds.svg"
)

// DefaultConditionIcon is used when a forecast day carries no weather code.
const DefaultConditionIcon = "01d"

// dominantIcon maps the weather groups that override time of day.
// ok is false for the clear group and for unknown groups.
func dominantIcon(group string) (Icon, bool) {
	switch group {
	case "09", "10":
		return IconRain, true
	case "13":
		return IconSnow, true
	case "50":
		return IconMist, true
	case "02", "03", "04":
		return IconClouds, true
	}
	return "", false
}

func groupOf(code string) string {
	if len(code) < 2 {
		return code
	}
	return code[:2]
}

// SelectPointIcon picks the icon for a single moment (current or hourly).
// Clear skies show the sun within an hour of sunrise and the moon within an
// hour of sunset; otherwise the code's own d/n suffix decides.
func SelectPointIcon(code string, timestamp, sunrise, sunset int64) Icon {
	if code == "" {
		return IconSun
	}
	group := groupOf(code)
	if icon, ok := dominantIcon(group); ok {
		return icon
	}
	if group != "01" {
		return IconClouds
	}

	w := Classify(timestamp, sunrise, sunset)
	switch {
	case w.NearSunrise:
		return IconSun
	case w.NearSunset:
		return IconMoon
	case strings.HasSuffix(code, "n"):
		return IconMoon
	default:
		return IconSun
	}
}

// SelectDailyIcon picks the icon for a whole day. A clear day is always
// shown as the sun.
func SelectDailyIcon(code string) Icon {
	if code == "" {
		return IconSun
	}
	group := groupOf(code)
	if icon, ok := dominantIcon(group); ok {
		return icon
	}
	if group == "01" {
		return IconSun
	}
	return IconClouds
}
