package itinerary

import "sort"

// assignAnchors ranks neighborhoods by how many selected activities they
// hold and returns the top daysCount labels, most frequent first. Day i of
// the trip is anchored to entry i; when the trip has more days than distinct
// neighborhoods the tail days stay unanchored. Ties keep first-appearance
// order, so the result is deterministic for a fixed input order.
//
// Activities without a neighborhood label count toward no anchor.
func assignAnchors(activities []Activity, daysCount int) []string {
	if daysCount <= 0 {
		return nil
	}

	counts := make(map[string]int, len(activities))
	order := make([]string, 0, len(activities))
	for _, act := range activities {
		if act.Neighborhood == "" {
			continue
		}
		if _, seen := counts[act.Neighborhood]; !seen {
			order = append(order, act.Neighborhood)
		}
		counts[act.Neighborhood]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > daysCount {
		order = order[:daysCount]
	}
	return order
}
