package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// mockTripDB implements a test double for db.TripStore
type mockTripDB struct {
	trips         []db.Trip
	insertedTrips []*db.Trip
	getTripsErr   error
	insertErr     error
}

func (m *mockTripDB) GetTrips(ctx context.Context) ([]db.Trip, error) {
	if m.getTripsErr != nil {
		return nil, m.getTripsErr
	}
	return m.trips, nil
}

func (m *mockTripDB) InsertTrip(trip *db.Trip) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedTrips = append(m.insertedTrips, trip)
	return nil
}

func (m *mockTripDB) SetTripBuiltDatetime(ctx context.Context, tripID string, datetime time.Time) error {
	return nil
}

func TestCreateTrip_WithStartDate(t *testing.T) {
	mock := &mockTripDB{}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := CreateTrip(ctx, mock, logger, "Paris Weekend", "2026-09-05", 3)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Check trip was created
	assert.NotEmpty(t, result.Trip.ID)
	assert.Equal(t, "Paris Weekend", result.Trip.Name)
	assert.Equal(t, "2026-09-05", result.Trip.StartDate)
	assert.Equal(t, 3, result.Trip.DaysCount)

	// Check created datetime is valid RFC3339
	_, err = time.Parse(time.RFC3339, result.Trip.CreatedDatetime)
	require.NoError(t, err)

	// Check day dates are consecutive from the start date
	require.Len(t, result.DayDates, 3)
	assert.Equal(t, "2026-09-05", result.DayDates[0].Format("2006-01-02"))
	assert.Equal(t, "2026-09-06", result.DayDates[1].Format("2006-01-02"))
	assert.Equal(t, "2026-09-07", result.DayDates[2].Format("2006-01-02"))

	// Check trip was inserted
	require.Len(t, mock.insertedTrips, 1)
	assert.Equal(t, result.Trip, mock.insertedTrips[0])
}

func TestCreateTrip_DefaultsToNextSaturday(t *testing.T) {
	mock := &mockTripDB{}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := CreateTrip(ctx, mock, logger, "City Break", "", 2)
	require.NoError(t, err)

	startDate, err := time.Parse("2006-01-02", result.Trip.StartDate)
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, startDate.Weekday())
	assert.Equal(t, nextSaturday(time.Now()).Format("2006-01-02"), result.Trip.StartDate)
}

func TestCreateTrip_EmptyName(t *testing.T) {
	mock := &mockTripDB{}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := CreateTrip(ctx, mock, logger, "", "2026-09-05", 3)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "trip name must not be empty")
	assert.Empty(t, mock.insertedTrips)
}

func TestCreateTrip_InvalidDaysCount(t *testing.T) {
	mock := &mockTripDB{}
	logger := zap.NewNop()
	ctx := context.Background()

	tests := []struct {
		name      string
		daysCount int
	}{
		{"zero days", 0},
		{"negative days", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CreateTrip(ctx, mock, logger, "Paris Weekend", "2026-09-05", tt.daysCount)
			assert.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), "days count must be positive")
		})
	}
}

func TestCreateTrip_InvalidStartDate(t *testing.T) {
	mock := &mockTripDB{}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := CreateTrip(ctx, mock, logger, "Paris Weekend", "05/09/2026", 3)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "invalid start date")
	assert.Empty(t, mock.insertedTrips)
}

func TestCreateTrip_InsertError(t *testing.T) {
	mock := &mockTripDB{
		insertErr: errors.New("connection lost"),
	}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := CreateTrip(ctx, mock, logger, "Paris Weekend", "2026-09-05", 3)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to insert trip")
}

func TestNextSaturday(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		expected time.Time
	}{
		{
			name:     "from Wednesday",
			from:     time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC), // Wednesday
			expected: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),   // Next Saturday
		},
		{
			name:     "from Saturday",
			from:     time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC), // Saturday
			expected: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),   // Next Saturday
		},
		{
			name:     "from Friday",
			from:     time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), // Friday
			expected: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), // Next Saturday
		},
		{
			name:     "from late Friday night",
			from:     time.Date(2026, 9, 4, 23, 59, 59, 0, time.UTC), // Friday 23:59:59
			expected: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),    // Next Saturday (not same day!)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := nextSaturday(tt.from)
			assert.Equal(t, tt.expected.Format("2006-01-02"), result.Format("2006-01-02"))
			assert.Equal(t, time.Saturday, result.Weekday())
		})
	}
}
