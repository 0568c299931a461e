// Package itinerary turns a flat list of selected activities into a
// day-by-day trip schedule. The builder is a pure function: it performs no
// I/O, holds no state between calls, and given the same inputs in the same
// order it produces byte-identical results.
//
// A build runs four stages in sequence: anchor neighborhoods are assigned
// to days by frequency, activities are ranked by priority, each activity is
// matched to its best-scoring day, and finally placed into the first
// preferred time block with room. Placement is greedy; earlier placements
// are never revisited.
package itinerary

// Build schedules the selected activities across daysCount days with the
// default block capacities. Every input activity ends up either scheduled
// exactly once or in the overflow list; nothing is dropped. A daysCount
// below one yields no days, and every activity overflows in priority order.
func Build(selected []Activity, daysCount int) Itinerary {
	return BuildPlan(Plan{Activities: selected, DaysCount: daysCount})
}

// BuildPlan is Build with per-trip capacity control. Day overrides are
// applied after the plan-wide capacities, before any placement.
func BuildPlan(plan Plan) Itinerary {
	days := initDays(plan)

	anchors := assignAnchors(plan.Activities, plan.DaysCount)
	for i := range anchors {
		days[i].Anchor = anchors[i]
	}

	overflow := make([]Activity, 0)
	for _, act := range rankByPriority(plan.Activities) {
		day := bestDayFor(days, act)
		if day < 0 || !placeActivity(&days[day], act) {
			overflow = append(overflow, act)
		}
	}

	return Itinerary{Days: days, Overflow: overflow}
}

func initDays(plan Plan) []Day {
	count := plan.DaysCount
	if count < 0 {
		count = 0
	}

	capacities := DefaultCapacities()
	if plan.Capacities != nil {
		capacities = *plan.Capacities
	}

	days := make([]Day, count)
	for i := range days {
		days[i] = Day{Index: i, Remaining: capacities}
	}
	for _, override := range plan.DayOverrides {
		if override.DayIndex >= 0 && override.DayIndex < len(days) {
			days[override.DayIndex].Remaining = override.Capacities
		}
	}
	return days
}
