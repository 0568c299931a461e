package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// mockDeselectActivityStore implements a test double for DeselectActivityStore
type mockDeselectActivityStore struct {
	trips            []db.Trip
	selections       []db.Selection
	deleted          []string
	getTripsErr      error
	getSelectionsErr error
	deleteErr        error
}

func (m *mockDeselectActivityStore) GetTrips(ctx context.Context) ([]db.Trip, error) {
	if m.getTripsErr != nil {
		return nil, m.getTripsErr
	}
	return m.trips, nil
}

func (m *mockDeselectActivityStore) GetSelections(ctx context.Context, tripID string) ([]db.Selection, error) {
	if m.getSelectionsErr != nil {
		return nil, m.getSelectionsErr
	}
	return m.selections, nil
}

func (m *mockDeselectActivityStore) DeleteSelection(ctx context.Context, tripID, activityID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}

	remaining := make([]db.Selection, 0, len(m.selections))
	found := false
	for _, selection := range m.selections {
		if selection.TripID == tripID && selection.ActivityID == activityID {
			found = true
			continue
		}
		remaining = append(remaining, selection)
	}
	if !found {
		return fmt.Errorf("no selection found for activity %s on trip %s", activityID, tripID)
	}

	m.selections = remaining
	m.deleted = append(m.deleted, activityID)
	return nil
}

func deselectTestStore() *mockDeselectActivityStore {
	return &mockDeselectActivityStore{
		trips: []db.Trip{
			{ID: "trip-1", Name: "Paris Weekend", StartDate: "2026-09-05", DaysCount: 3, CreatedDatetime: "2026-08-20T10:00:00Z"},
		},
		selections: []db.Selection{
			{ID: "s1", TripID: "trip-1", ActivityID: "louvre", Position: 0},
			{ID: "s2", TripID: "trip-1", ActivityID: "seine-cruise", Position: 1},
		},
	}
}

func TestDeselectActivity_RemovesSelection(t *testing.T) {
	store := deselectTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := DeselectActivity(ctx, store, logger, "trip-1", "louvre")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "trip-1", result.Trip.ID)
	assert.Equal(t, "louvre", result.ActivityID)
	assert.Equal(t, 1, result.Remaining)
	assert.Equal(t, []string{"louvre"}, store.deleted)
}

func TestDeselectActivity_DefaultsToLatestTrip(t *testing.T) {
	store := deselectTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := DeselectActivity(ctx, store, logger, "", "seine-cruise")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", result.Trip.ID)
	assert.Equal(t, 1, result.Remaining)
}

func TestDeselectActivity_NotSelected(t *testing.T) {
	store := deselectTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := DeselectActivity(ctx, store, logger, "trip-1", "eiffel")
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no selection found for activity eiffel")
}

func TestDeselectActivity_EmptyActivityID(t *testing.T) {
	store := deselectTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := DeselectActivity(ctx, store, logger, "trip-1", "")
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no activity ID given")
	assert.Empty(t, store.deleted)
}

func TestDeselectActivity_NoTrips(t *testing.T) {
	store := deselectTestStore()
	store.trips = []db.Trip{}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := DeselectActivity(ctx, store, logger, "", "louvre")
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no trips found")
}
