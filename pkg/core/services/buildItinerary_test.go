package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/internal/config"
	"github.com/rowanhale/tripsmith/pkg/db"
)

// mockBuildItineraryStore implements a test double for BuildItineraryStore
type mockBuildItineraryStore struct {
	trips            []db.Trip
	activities       []db.Activity
	selections       []db.Selection
	replaced         map[string][]db.Placement
	builtTrips       []string
	getTripsErr      error
	getActivitiesErr error
	getSelectionsErr error
	replaceErr       error
	setBuiltErr      error
}

func (m *mockBuildItineraryStore) GetTrips(ctx context.Context) ([]db.Trip, error) {
	if m.getTripsErr != nil {
		return nil, m.getTripsErr
	}
	return m.trips, nil
}

func (m *mockBuildItineraryStore) GetActivities(ctx context.Context) ([]db.Activity, error) {
	if m.getActivitiesErr != nil {
		return nil, m.getActivitiesErr
	}
	return m.activities, nil
}

func (m *mockBuildItineraryStore) GetSelections(ctx context.Context, tripID string) ([]db.Selection, error) {
	if m.getSelectionsErr != nil {
		return nil, m.getSelectionsErr
	}
	return m.selections, nil
}

func (m *mockBuildItineraryStore) ReplacePlacements(tripID string, placements []db.Placement) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	if m.replaced == nil {
		m.replaced = make(map[string][]db.Placement)
	}
	m.replaced[tripID] = placements
	return nil
}

func (m *mockBuildItineraryStore) SetTripBuiltDatetime(ctx context.Context, tripID string, datetime time.Time) error {
	if m.setBuiltErr != nil {
		return m.setBuiltErr
	}
	m.builtTrips = append(m.builtTrips, tripID)
	return nil
}

func popularityOf(score int) *int {
	return &score
}

func buildTestStore() *mockBuildItineraryStore {
	return &mockBuildItineraryStore{
		trips: []db.Trip{
			{ID: "trip-1", Name: "Paris Weekend", StartDate: "2026-09-05", DaysCount: 2, CreatedDatetime: "2026-08-20T10:00:00Z"},
		},
		activities: []db.Activity{
			{ID: "louvre", Name: "Louvre Museum", Category: "culture", DurationMins: 180, Neighborhood: "1st arr.", MustBook: true, Popularity: popularityOf(84), Status: "Active"},
			{ID: "seine-cruise", Name: "Seine Cruise", Category: "nature", DurationMins: 60, Neighborhood: "4th arr.", Popularity: popularityOf(70), Status: "Active"},
			{ID: "bistro", Name: "Le Petit Bistro", Category: "food", DurationMins: 90, Neighborhood: "1st arr.", Popularity: popularityOf(60), Status: "Active"},
		},
		selections: []db.Selection{
			{ID: "s1", TripID: "trip-1", ActivityID: "louvre", Position: 0},
			{ID: "s2", TripID: "trip-1", ActivityID: "seine-cruise", Position: 1},
			{ID: "s3", TripID: "trip-1", ActivityID: "bistro", Position: 2},
		},
	}
}

func placementFor(t *testing.T, placements []db.Placement, activityID string) db.Placement {
	t.Helper()
	for _, placement := range placements {
		if placement.ActivityID == activityID {
			return placement
		}
	}
	t.Fatalf("no placement for activity %s", activityID)
	return db.Placement{}
}

func TestBuildItinerary_SchedulesAndSaves(t *testing.T) {
	store := buildTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := BuildItinerary(ctx, store, importTestConfig(), logger, "trip-1", false, false)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "trip-1", result.TripID)
	assert.Equal(t, "Paris Weekend", result.TripName)
	assert.Equal(t, 2, result.DaysCount)
	require.Len(t, result.DayDates, 2)
	assert.Equal(t, "2026-09-05", result.DayDates[0].Format("2006-01-02"))

	assert.Empty(t, result.ValidationErrors)
	assert.Empty(t, result.SkippedRetired)
	assert.True(t, result.Saved)

	// The Louvre outranks everything (popularity 84, must book, 3 hours)
	// and lands in the morning block of its anchor day. The bistro shares
	// that neighborhood so it joins day 0; the cruise anchors day 1.
	require.Contains(t, store.replaced, "trip-1")
	placements := store.replaced["trip-1"]
	require.Len(t, placements, 3)

	louvre := placementFor(t, placements, "louvre")
	assert.Equal(t, 0, louvre.DayIndex)
	assert.Equal(t, "morning", louvre.Block)
	assert.Equal(t, 0, louvre.Slot)

	bistro := placementFor(t, placements, "bistro")
	assert.Equal(t, 0, bistro.DayIndex)
	assert.Equal(t, "evening", bistro.Block)

	cruise := placementFor(t, placements, "seine-cruise")
	assert.Equal(t, 1, cruise.DayIndex)
	assert.Equal(t, "afternoon", cruise.Block)

	for _, placement := range placements {
		assert.NotEmpty(t, placement.ID)
		assert.Equal(t, "trip-1", placement.TripID)
	}

	assert.Equal(t, []string{"trip-1"}, store.builtTrips)
}

func TestBuildItinerary_DryRun(t *testing.T) {
	store := buildTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := BuildItinerary(ctx, store, importTestConfig(), logger, "trip-1", true, false)
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.Empty(t, store.replaced)
	assert.Empty(t, store.builtTrips)

	// The schedule itself is still produced
	require.Len(t, result.Itinerary.Days, 2)
}

func TestBuildItinerary_SkipsRetiredSelections(t *testing.T) {
	store := buildTestStore()
	store.activities[1].Status = "Retired" // seine-cruise

	logger := zap.NewNop()
	ctx := context.Background()

	result, err := BuildItinerary(ctx, store, importTestConfig(), logger, "trip-1", false, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"seine-cruise"}, result.SkippedRetired)
	assert.True(t, result.Saved)

	placements := store.replaced["trip-1"]
	require.Len(t, placements, 2)
	for _, placement := range placements {
		assert.NotEqual(t, "seine-cruise", placement.ActivityID)
	}
}

func TestBuildItinerary_OverflowsWhenFull(t *testing.T) {
	store := buildTestStore()
	store.trips[0].DaysCount = 1
	store.activities = []db.Activity{
		{ID: "brunch", Name: "Brunch Spot", Category: "food", DurationMins: 180, Status: "Active"},
		{ID: "lunch", Name: "Lunch Spot", Category: "food", DurationMins: 180, Status: "Active"},
		{ID: "dinner", Name: "Dinner Spot", Category: "food", DurationMins: 180, Status: "Active"},
		{ID: "supper", Name: "Supper Spot", Category: "food", DurationMins: 180, Status: "Active"},
	}
	store.selections = []db.Selection{
		{ID: "s1", TripID: "trip-1", ActivityID: "brunch", Position: 0},
		{ID: "s2", TripID: "trip-1", ActivityID: "lunch", Position: 1},
		{ID: "s3", TripID: "trip-1", ActivityID: "dinner", Position: 2},
		{ID: "s4", TripID: "trip-1", ActivityID: "supper", Position: 3},
	}

	logger := zap.NewNop()
	ctx := context.Background()

	result, err := BuildItinerary(ctx, store, importTestConfig(), logger, "trip-1", false, false)
	require.NoError(t, err)

	// Three identical meals fill the day's blocks; the fourth has nowhere
	// to go
	require.Len(t, result.Itinerary.Overflow, 1)
	assert.Equal(t, "supper", result.Itinerary.Overflow[0].ID)

	placements := store.replaced["trip-1"]
	require.Len(t, placements, 4)

	overflow := placementFor(t, placements, "supper")
	assert.Equal(t, -1, overflow.DayIndex)
	assert.Equal(t, "overflow", overflow.Block)
	assert.Equal(t, 0, overflow.Slot)
}

func TestBuildItinerary_CapacityOverrideClosesDay(t *testing.T) {
	store := buildTestStore()
	store.selections = store.selections[:1] // just the Louvre

	zero := 0
	cfg := importTestConfig()
	cfg.CapacityOverrides = []config.CapacityOverride{
		{
			RRule:         "FREQ=WEEKLY;BYDAY=SA",
			MorningMins:   &zero,
			AfternoonMins: &zero,
			EveningMins:   &zero,
		},
	}

	logger := zap.NewNop()
	ctx := context.Background()

	result, err := BuildItinerary(ctx, store, cfg, logger, "trip-1", false, false)
	require.NoError(t, err)

	// The trip starts on a Saturday, so day 0 is closed and the Louvre
	// moves to day 1
	require.Empty(t, result.Itinerary.Overflow)
	louvre := placementFor(t, store.replaced["trip-1"], "louvre")
	assert.Equal(t, 1, louvre.DayIndex)
	assert.Equal(t, "morning", louvre.Block)
}

func TestBuildItinerary_NoSelections(t *testing.T) {
	store := buildTestStore()
	store.selections = []db.Selection{}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := BuildItinerary(ctx, store, importTestConfig(), logger, "trip-1", false, false)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no activities selected for trip trip-1")
}

func TestBuildItinerary_UnknownSelectionActivity(t *testing.T) {
	store := buildTestStore()
	store.selections = append(store.selections, db.Selection{
		ID: "s4", TripID: "trip-1", ActivityID: "ghost", Position: 3,
	})
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := BuildItinerary(ctx, store, importTestConfig(), logger, "trip-1", false, false)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "unknown activity ghost")
}

func TestBuildItinerary_AllSelectionsRetired(t *testing.T) {
	store := buildTestStore()
	for i := range store.activities {
		store.activities[i].Status = "Retired"
	}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := BuildItinerary(ctx, store, importTestConfig(), logger, "trip-1", false, false)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "have been retired")
}

func TestBuildItinerary_ReplaceError(t *testing.T) {
	store := buildTestStore()
	store.replaceErr = errors.New("connection lost")
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := BuildItinerary(ctx, store, importTestConfig(), logger, "trip-1", false, false)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to save placements")
}
