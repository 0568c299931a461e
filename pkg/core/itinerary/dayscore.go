package itinerary

import "math"

// scoreDay rates how suitable a day is for an activity given the partial
// schedule built so far. The terms are additive: an anchor-neighborhood
// match, a same-category cluster bonus, a large penalty when the activity
// cannot currently fit, and a load-balance term that favors emptier days.
func scoreDay(day *Day, act Activity) float64 {
	score := 0.0

	if day.Anchor != "" && day.Anchor == act.Neighborhood {
		score += anchorMatchBonus
	}

	if day.HasCategory(act.Category) {
		score += categoryClusterBonus
	}

	if !fitsAnyPreferred(day, act) {
		score += infeasiblePenalty
	}

	if slack := loadBalanceBase - float64(day.UsedMinutes())/minutesPerHour; slack > 0 {
		score += slack
	}

	return score
}

// bestDayFor returns the index of the highest-scoring day for the activity,
// or -1 when there are no days. Ties go to the earliest day.
func bestDayFor(days []Day, act Activity) int {
	best := -1
	bestScore := math.Inf(-1)
	for i := range days {
		if score := scoreDay(&days[i], act); score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}
