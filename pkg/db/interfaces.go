package db

import (
	"context"
	"time"
)

// ActivityStore defines the interface for activity catalog database operations
type ActivityStore interface {
	GetActivities(ctx context.Context) ([]Activity, error)
	UpsertActivities(activities []Activity) error
}

// TripStore defines the interface for trip database operations
type TripStore interface {
	GetTrips(ctx context.Context) ([]Trip, error)
	InsertTrip(trip *Trip) error
	SetTripBuiltDatetime(ctx context.Context, tripID string, datetime time.Time) error
}

// SelectionStore defines the interface for selection database operations
type SelectionStore interface {
	GetSelections(ctx context.Context, tripID string) ([]Selection, error)
	InsertSelections(selections []Selection) error
	DeleteSelection(ctx context.Context, tripID, activityID string) error
}

// PlacementStore defines the interface for placement database operations
type PlacementStore interface {
	GetPlacements(ctx context.Context, tripID string) ([]Placement, error)
	ReplacePlacements(tripID string, placements []Placement) error
}

// Database defines the interface for all database operations
type Database interface {
	GetActivities(ctx context.Context) ([]Activity, error)
	UpsertActivities(activities []Activity) error
	GetTrips(ctx context.Context) ([]Trip, error)
	InsertTrip(trip *Trip) error
	SetTripBuiltDatetime(ctx context.Context, tripID string, datetime time.Time) error
	GetSelections(ctx context.Context, tripID string) ([]Selection, error)
	InsertSelections(selections []Selection) error
	DeleteSelection(ctx context.Context, tripID, activityID string) error
	GetPlacements(ctx context.Context, tripID string) ([]Placement, error)
	ReplacePlacements(tripID string, placements []Placement) error
	RunMigrations(ctx context.Context) error
	Close()
}
