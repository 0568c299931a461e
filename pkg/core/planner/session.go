// Package planner holds the mutable planning state between builds. The
// builder itself is pure; a Session owns the current selection and day
// count, serializes mutations, and rebuilds the itinerary after every
// change so callers always read a result that matches the selection.
package planner

import (
	"sync"

	"github.com/rowanhale/tripsmith/pkg/core/itinerary"
)

// Session is a mutex-guarded planning session. Every mutation snapshots the
// selection before handing it to the builder, so an in-flight build never
// sees a concurrent change. The zero value is not usable; create sessions
// with NewSession.
type Session struct {
	mu         sync.Mutex
	selection  []itinerary.Activity
	daysCount  int
	overrides  []itinerary.DayOverride
	current    itinerary.Itinerary
}

// NewSession creates a session for a trip of the given length and builds
// the initial empty itinerary.
func NewSession(daysCount int) *Session {
	s := &Session{daysCount: daysCount}
	s.rebuild()
	return s
}

// Add appends an activity to the selection and rebuilds. Re-adding an ID
// that is already selected is a no-op; the second return reports whether
// the selection changed.
func (s *Session) Add(activity itinerary.Activity) (itinerary.Itinerary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.selection {
		if existing.ID == activity.ID {
			return s.current, false
		}
	}

	s.selection = append(s.selection, activity)
	s.rebuild()
	return s.current, true
}

// Remove drops an activity from the selection and rebuilds. The second
// return reports whether the ID was selected.
func (s *Session) Remove(activityID string) (itinerary.Itinerary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.selection {
		if existing.ID == activityID {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			s.rebuild()
			return s.current, true
		}
	}

	return s.current, false
}

// Resize changes the trip length and rebuilds. A count below one yields an
// itinerary with no days where everything overflows.
func (s *Session) Resize(daysCount int) itinerary.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.daysCount = daysCount
	s.rebuild()
	return s.current
}

// SetDayOverrides replaces the per-day capacity overrides and rebuilds.
func (s *Session) SetDayOverrides(overrides []itinerary.DayOverride) itinerary.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides = append([]itinerary.DayOverride(nil), overrides...)
	s.rebuild()
	return s.current
}

// Current returns the itinerary built from the latest state. Callers must
// treat the result as read-only.
func (s *Session) Current() itinerary.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Selection returns a copy of the selected activities in insertion order.
func (s *Session) Selection() []itinerary.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]itinerary.Activity(nil), s.selection...)
}

// DaysCount returns the current trip length.
func (s *Session) DaysCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.daysCount
}

// rebuild runs the builder against a snapshot of the current state.
// Callers must hold the mutex.
func (s *Session) rebuild() {
	snapshot := append([]itinerary.Activity(nil), s.selection...)
	s.current = itinerary.BuildPlan(itinerary.Plan{
		Activities:   snapshot,
		DaysCount:    s.daysCount,
		DayOverrides: s.overrides,
	})
}
