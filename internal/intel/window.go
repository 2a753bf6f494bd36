package intel

// TransitionWindow is how close to sunrise or sunset (in seconds) a moment
// must be to count as a transition.
const TransitionWindow = 60 * 60

// Window describes where a moment falls relative to the sun.
type Window struct {
	IsDay       bool `json:"is_day"`
	IsNight     bool `json:"is_night"`
	NearSunrise bool `json:"near_sunrise"`
	NearSunset  bool `json:"near_sunset"`
}

// Classify places now relative to sunrise and sunset. Sunset itself is night.
func Classify(now, sunrise, sunset int64) Window {
	day := now >= sunrise && now < sunset
	return Window{
		IsDay:       day,
		IsNight:     !day,
		NearSunrise: abs(now-sunrise) <= TransitionWindow,
		NearSunset:  abs(now-sunset) <= TransitionWindow,
	}
}

// isNight is the narrative convention: at or after sunset, or before sunrise.
func isNight(now, sunrise, sunset int64) bool {
	return now >= sunset || now < sunrise
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
