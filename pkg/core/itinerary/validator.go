package itinerary

import "fmt"

// ValidationError flags one violated structural guarantee in a build
// result.
type ValidationError struct {
	// DayIndex is the offending day, or -1 when the error is not tied to a
	// specific day.
	DayIndex int

	// Block names the offending time block, or is empty.
	Block string

	// Rule is the stable identifier of the violated guarantee.
	Rule string

	Description string
}

func (e ValidationError) Error() string {
	if e.DayIndex >= 0 {
		return fmt.Sprintf("day %d: %s: %s", e.DayIndex, e.Rule, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Rule, e.Description)
}

// Validate re-checks the structural guarantees of a build result against
// the plan that produced it: the day count, per-block capacity accounting,
// block tags, and that every input activity landed exactly once across the
// schedule and overflow. An empty slice means the result is sound.
//
// Validate does not re-run the scoring stages; it checks what must hold for
// any correct result, not that this result is the one the builder would
// pick.
func Validate(plan Plan, result Itinerary) []ValidationError {
	errors := make([]ValidationError, 0)

	expectedDays := plan.DaysCount
	if expectedDays < 0 {
		expectedDays = 0
	}
	if len(result.Days) != expectedDays {
		errors = append(errors, ValidationError{
			DayIndex:    -1,
			Rule:        "day_count",
			Description: fmt.Sprintf("expected %d days, got %d", expectedDays, len(result.Days)),
		})
	}

	for i := range result.Days {
		errors = append(errors, validateDay(plan, &result.Days[i], i)...)
	}

	errors = append(errors, validateAccounting(plan, result)...)

	return errors
}

func validateDay(plan Plan, day *Day, position int) []ValidationError {
	errors := make([]ValidationError, 0)

	if day.Index != position {
		errors = append(errors, ValidationError{
			DayIndex:    position,
			Rule:        "day_index",
			Description: fmt.Sprintf("day at position %d carries index %d", position, day.Index),
		})
	}

	initial := initialCapacities(plan, position)
	for _, b := range AllBlocks() {
		used := 0
		for _, item := range day.Blocks[b] {
			if item.Block != b {
				errors = append(errors, ValidationError{
					DayIndex:    position,
					Block:       b.String(),
					Rule:        "block_tag",
					Description: fmt.Sprintf("item %q is tagged %s", item.Activity.ID, item.Block),
				})
			}
			used += item.Activity.DurationMins
		}

		if used > initial[b] {
			errors = append(errors, ValidationError{
				DayIndex:    position,
				Block:       b.String(),
				Rule:        "block_capacity",
				Description: fmt.Sprintf("scheduled %d minutes into a %d minute block", used, initial[b]),
			})
		}
		if day.Remaining[b] != initial[b]-used {
			errors = append(errors, ValidationError{
				DayIndex:    position,
				Block:       b.String(),
				Rule:        "remaining_capacity",
				Description: fmt.Sprintf("remaining %d minutes, expected %d", day.Remaining[b], initial[b]-used),
			})
		}
	}

	return errors
}

// validateAccounting checks that scheduled items plus overflow form exactly
// the input multiset, keyed by activity ID.
func validateAccounting(plan Plan, result Itinerary) []ValidationError {
	expected := make(map[string]int, len(plan.Activities))
	for _, act := range plan.Activities {
		expected[act.ID]++
	}

	got := make(map[string]int, len(plan.Activities))
	for i := range result.Days {
		for b := range result.Days[i].Blocks {
			for _, item := range result.Days[i].Blocks[b] {
				got[item.Activity.ID]++
			}
		}
	}
	for _, act := range result.Overflow {
		got[act.ID]++
	}

	errors := make([]ValidationError, 0)
	for id, want := range expected {
		if got[id] != want {
			errors = append(errors, ValidationError{
				DayIndex:    -1,
				Rule:        "accounting",
				Description: fmt.Sprintf("activity %q appears %d times, expected %d", id, got[id], want),
			})
		}
	}
	for id, have := range got {
		if _, ok := expected[id]; !ok {
			errors = append(errors, ValidationError{
				DayIndex:    -1,
				Rule:        "accounting",
				Description: fmt.Sprintf("activity %q appears %d times but was never selected", id, have),
			})
		}
	}

	return errors
}

func initialCapacities(plan Plan, dayIndex int) BlockCapacities {
	capacities := DefaultCapacities()
	if plan.Capacities != nil {
		capacities = *plan.Capacities
	}
	for _, override := range plan.DayOverrides {
		if override.DayIndex == dayIndex {
			capacities = override.Capacities
		}
	}
	return capacities
}
