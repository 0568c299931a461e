package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rowanhale/tripsmith/internal/config"
	"github.com/rowanhale/tripsmith/pkg/core/itinerary"
)

// Trip days Sat Sep 5 - Mon Sep 7 2026
func septemberTripDates() []time.Time {
	return []time.Time{
		time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	}
}

func TestConvertCapacityOverrides_WeeklyOverride(t *testing.T) {
	zero := 0
	configOverrides := []config.CapacityOverride{
		{
			RRule:       "FREQ=WEEKLY;BYDAY=SA",
			MorningMins: &zero,
		},
	}

	logger := zap.NewNop()
	overrides, err := convertCapacityOverrides(configOverrides, septemberTripDates(), logger)

	require.NoError(t, err)
	require.Len(t, overrides, 1)

	// Only the Saturday matches, and only the morning shrinks
	override := overrides[0]
	assert.Equal(t, 0, override.DayIndex)
	assert.Equal(t, 0, override.Capacities[itinerary.BlockMorning])
	assert.Equal(t, 240, override.Capacities[itinerary.BlockAfternoon])
	assert.Equal(t, 180, override.Capacities[itinerary.BlockEvening])
}

func TestConvertCapacityOverrides_PartialOverrideKeepsDefaults(t *testing.T) {
	shortEvening := 90
	configOverrides := []config.CapacityOverride{
		{
			RRule:       "FREQ=WEEKLY;BYDAY=SU",
			EveningMins: &shortEvening,
		},
	}

	logger := zap.NewNop()
	overrides, err := convertCapacityOverrides(configOverrides, septemberTripDates(), logger)

	require.NoError(t, err)
	require.Len(t, overrides, 1)

	override := overrides[0]
	assert.Equal(t, 1, override.DayIndex) // Sunday is day 1
	assert.Equal(t, 180, override.Capacities[itinerary.BlockMorning])
	assert.Equal(t, 240, override.Capacities[itinerary.BlockAfternoon])
	assert.Equal(t, 90, override.Capacities[itinerary.BlockEvening])
}

func TestConvertCapacityOverrides_LayeredOverrides(t *testing.T) {
	zero := 0
	longAfternoon := 300
	configOverrides := []config.CapacityOverride{
		{
			RRule:       "FREQ=WEEKLY;BYDAY=SA",
			MorningMins: &zero,
		},
		{
			RRule:         "FREQ=DAILY",
			AfternoonMins: &longAfternoon,
		},
	}

	logger := zap.NewNop()
	overrides, err := convertCapacityOverrides(configOverrides, septemberTripDates(), logger)

	require.NoError(t, err)
	require.Len(t, overrides, 3)

	// Saturday accumulates both overrides
	saturday := overrides[0]
	assert.Equal(t, 0, saturday.DayIndex)
	assert.Equal(t, 0, saturday.Capacities[itinerary.BlockMorning])
	assert.Equal(t, 300, saturday.Capacities[itinerary.BlockAfternoon])
	assert.Equal(t, 180, saturday.Capacities[itinerary.BlockEvening])

	// The other days only pick up the daily override
	for _, override := range overrides[1:] {
		assert.Equal(t, 180, override.Capacities[itinerary.BlockMorning])
		assert.Equal(t, 300, override.Capacities[itinerary.BlockAfternoon])
		assert.Equal(t, 180, override.Capacities[itinerary.BlockEvening])
	}

	// Sorted by day index
	assert.Equal(t, 1, overrides[1].DayIndex)
	assert.Equal(t, 2, overrides[2].DayIndex)
}

func TestConvertCapacityOverrides_NoMatchingDays(t *testing.T) {
	zero := 0
	configOverrides := []config.CapacityOverride{
		{
			// Fridays never fall inside a Sat-Mon trip
			RRule:       "FREQ=WEEKLY;BYDAY=FR",
			MorningMins: &zero,
		},
	}

	logger := zap.NewNop()
	overrides, err := convertCapacityOverrides(configOverrides, septemberTripDates(), logger)

	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestConvertCapacityOverrides_InvalidRRule(t *testing.T) {
	zero := 0
	configOverrides := []config.CapacityOverride{
		{
			RRule:       "INVALID_RRULE_SYNTAX",
			MorningMins: &zero,
		},
	}

	logger := zap.NewNop()
	_, err := convertCapacityOverrides(configOverrides, septemberTripDates(), logger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rrule")
}

func TestConvertCapacityOverrides_EmptyList(t *testing.T) {
	logger := zap.NewNop()
	overrides, err := convertCapacityOverrides([]config.CapacityOverride{}, septemberTripDates(), logger)

	require.NoError(t, err)
	assert.Empty(t, overrides)
}
