package itinerary

// defaultBlockOrder fixes the placement preference per category. Food and
// nightlife lean toward the evening, culture toward the morning, everything
// else toward the afternoon.
func defaultBlockOrder(c Category) []TimeBlock {
	switch c {
	case CategoryFood, CategoryNight:
		return []TimeBlock{BlockEvening, BlockAfternoon, BlockMorning}
	case CategoryCulture:
		return []TimeBlock{BlockMorning, BlockAfternoon, BlockEvening}
	default:
		// Nature, shopping, and unrecognized categories.
		return []TimeBlock{BlockAfternoon, BlockMorning, BlockEvening}
	}
}

// preferredBlocks resolves the block order to try for an activity: its
// explicit open windows verbatim when present, otherwise the category
// default. This is the only place the fallback is applied.
func preferredBlocks(act Activity) []TimeBlock {
	if len(act.OpenWindows) > 0 {
		return act.OpenWindows
	}
	return defaultBlockOrder(act.Category)
}

// fitsAnyPreferred reports whether the activity currently fits in at least
// one of its preferred blocks on the day. Out-of-range open windows never
// match.
func fitsAnyPreferred(day *Day, act Activity) bool {
	for _, b := range preferredBlocks(act) {
		if b.valid() && day.Remaining[b] >= act.DurationMins {
			return true
		}
	}
	return false
}

// placeActivity slots the activity into the first preferred block with
// enough remaining capacity and reports whether placement happened. On
// success the block's remaining capacity shrinks by the activity's
// duration; on failure the day is unchanged.
func placeActivity(day *Day, act Activity) bool {
	for _, b := range preferredBlocks(act) {
		if !b.valid() || day.Remaining[b] < act.DurationMins {
			continue
		}
		day.Blocks[b] = append(day.Blocks[b], ScheduledItem{Activity: act, Block: b})
		day.Remaining[b] -= act.DurationMins
		return true
	}
	return false
}
