package intel

// Score rates how pleasant the current conditions are, from 1 to 10.
func Score(s Snapshot) int {
	score := 10

	t := s.Temperature
	switch {
	case t < 5 || t > 35:
		score -= 3
	case t < 10 || t > 30:
		score -= 2
	case t < 15 || t > 27:
		score -= 1
	}

	// Keywords stack.
	if conditionHas(s, "rain") {
		score -= 2
	}
	if conditionHas(s, "snow") {
		score -= 3
	}
	if conditionHas(s, "thunder") {
		score -= 4
	}

	wind := WindKmh(s.WindSpeed)
	switch {
	case wind > 30:
		score -= 2
	case wind > 20:
		score -= 1
	}

	if isNight(s.Timestamp, s.Sunrise, s.Sunset) {
		score--
	}

	return max(1, min(10, score))
}

// ExplainScore turns a score into a short sentence.
func ExplainScore(score int) string {
	switch {
	case score >= 8:
		return "Excellent conditions today. Very comfortable weather."
	case score >= 6:
		return "Decent conditions. Minor discomfort possible."
	default:
		return "Challenging weather today. Plan carefully."
	}
}
