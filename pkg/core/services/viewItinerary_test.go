package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// mockViewItineraryStore implements a test double for ViewItineraryStore
type mockViewItineraryStore struct {
	trips            []db.Trip
	activities       []db.Activity
	placements       []db.Placement
	getTripsErr      error
	getActivitiesErr error
	getPlacementsErr error
}

func (m *mockViewItineraryStore) GetTrips(ctx context.Context) ([]db.Trip, error) {
	if m.getTripsErr != nil {
		return nil, m.getTripsErr
	}
	return m.trips, nil
}

func (m *mockViewItineraryStore) GetActivities(ctx context.Context) ([]db.Activity, error) {
	if m.getActivitiesErr != nil {
		return nil, m.getActivitiesErr
	}
	return m.activities, nil
}

func (m *mockViewItineraryStore) GetPlacements(ctx context.Context, tripID string) ([]db.Placement, error) {
	if m.getPlacementsErr != nil {
		return nil, m.getPlacementsErr
	}
	return m.placements, nil
}

func viewTestStore() *mockViewItineraryStore {
	return &mockViewItineraryStore{
		trips: []db.Trip{
			{ID: "trip-1", Name: "Paris Weekend", StartDate: "2026-09-05", DaysCount: 2, CreatedDatetime: "2026-08-20T10:00:00Z", BuiltDatetime: "2026-08-21T09:00:00Z"},
		},
		activities: []db.Activity{
			{ID: "louvre", Name: "Louvre Museum", Category: "culture", DurationMins: 180, MustBook: true, BookingURL: "https://tickets.louvre.fr", Status: "Active"},
			{ID: "seine-cruise", Name: "Seine Cruise", Category: "nature", DurationMins: 60, Status: "Active"},
			{ID: "bistro", Name: "Le Petit Bistro", Category: "food", DurationMins: 90, Status: "Active"},
			{ID: "supper", Name: "Supper Club", Category: "night", DurationMins: 120, MustBook: true, Status: "Active"},
		},
		placements: []db.Placement{
			{ID: "p1", TripID: "trip-1", ActivityID: "louvre", DayIndex: 0, Block: "morning", Slot: 0},
			{ID: "p2", TripID: "trip-1", ActivityID: "bistro", DayIndex: 0, Block: "evening", Slot: 0},
			{ID: "p3", TripID: "trip-1", ActivityID: "seine-cruise", DayIndex: 1, Block: "afternoon", Slot: 0},
			{ID: "p4", TripID: "trip-1", ActivityID: "supper", DayIndex: -1, Block: "overflow", Slot: 0},
		},
	}
}

func TestViewItinerary_ResolvesPlacements(t *testing.T) {
	store := viewTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := ViewItinerary(ctx, store, logger, "trip-1")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "trip-1", result.Trip.ID)
	require.Len(t, result.DayDates, 2)
	require.Len(t, result.Days, 2)

	// Every day carries all three blocks in chronological order
	day0 := result.Days[0]
	assert.Equal(t, 0, day0.Index)
	assert.Equal(t, "2026-09-05", day0.Date.Format("2006-01-02"))
	require.Len(t, day0.Blocks, 3)
	assert.Equal(t, "morning", day0.Blocks[0].Block)
	assert.Equal(t, "afternoon", day0.Blocks[1].Block)
	assert.Equal(t, "evening", day0.Blocks[2].Block)

	require.Len(t, day0.Blocks[0].Items, 1)
	louvre := day0.Blocks[0].Items[0]
	assert.Equal(t, "louvre", louvre.ActivityID)
	assert.Equal(t, "Louvre Museum", louvre.Name)
	assert.Equal(t, "culture", louvre.Category)
	assert.Equal(t, 180, louvre.DurationMins)
	assert.True(t, louvre.MustBook)
	assert.Equal(t, "https://tickets.louvre.fr", louvre.BookingURL)

	assert.Empty(t, day0.Blocks[1].Items)
	require.Len(t, day0.Blocks[2].Items, 1)
	assert.Equal(t, "bistro", day0.Blocks[2].Items[0].ActivityID)

	day1 := result.Days[1]
	assert.Equal(t, "2026-09-06", day1.Date.Format("2006-01-02"))
	require.Len(t, day1.Blocks[1].Items, 1)
	assert.Equal(t, "seine-cruise", day1.Blocks[1].Items[0].ActivityID)

	require.Len(t, result.Overflow, 1)
	assert.Equal(t, "supper", result.Overflow[0].ActivityID)
}

func TestViewItinerary_OrdersBySlot(t *testing.T) {
	store := viewTestStore()
	store.placements = []db.Placement{
		{ID: "p2", TripID: "trip-1", ActivityID: "bistro", DayIndex: 0, Block: "morning", Slot: 1},
		{ID: "p1", TripID: "trip-1", ActivityID: "seine-cruise", DayIndex: 0, Block: "morning", Slot: 0},
	}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := ViewItinerary(ctx, store, logger, "trip-1")
	require.NoError(t, err)

	morning := result.Days[0].Blocks[0]
	require.Len(t, morning.Items, 2)
	assert.Equal(t, "seine-cruise", morning.Items[0].ActivityID)
	assert.Equal(t, "bistro", morning.Items[1].ActivityID)
}

func TestViewItinerary_DefaultsToLatestTrip(t *testing.T) {
	store := viewTestStore()
	store.trips = append(store.trips, db.Trip{
		ID: "trip-0", Name: "Older Trip", StartDate: "2026-07-04", DaysCount: 2, CreatedDatetime: "2026-06-01T10:00:00Z",
	})
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := ViewItinerary(ctx, store, logger, "")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", result.Trip.ID)
}

func TestViewItinerary_NotBuilt(t *testing.T) {
	store := viewTestStore()
	store.placements = []db.Placement{}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := ViewItinerary(ctx, store, logger, "trip-1")
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no itinerary built for trip trip-1")
}

func TestViewItinerary_UnknownActivity(t *testing.T) {
	store := viewTestStore()
	store.placements = []db.Placement{
		{ID: "p1", TripID: "trip-1", ActivityID: "ghost", DayIndex: 0, Block: "morning", Slot: 0},
	}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := ViewItinerary(ctx, store, logger, "trip-1")
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "unknown activity ghost")
}
