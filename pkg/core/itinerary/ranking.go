package itinerary

import "sort"

// priorityScore computes the composite desirability that decides placement
// order. Higher scores claim capacity first.
func priorityScore(act Activity) float64 {
	score := float64(effectivePopularity(act))
	if act.MustBook {
		score += mustBookBonus
	}
	return score + float64(act.DurationMins)/durationDivisor
}

// effectivePopularity resolves the optional popularity field. This is the
// only place the default is applied, so every stage sees the same value.
func effectivePopularity(act Activity) int {
	if act.Popularity == nil {
		return defaultPopularity
	}
	return *act.Popularity
}

// rankByPriority returns the activities in descending priority order. The
// input slice is left untouched; equal scores keep their input order.
func rankByPriority(activities []Activity) []Activity {
	ordered := make([]Activity, len(activities))
	copy(ordered, activities)
	sort.SliceStable(ordered, func(i, j int) bool {
		return priorityScore(ordered[i]) > priorityScore(ordered[j])
	})
	return ordered
}
