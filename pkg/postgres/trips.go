package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// GetTrips retrieves all trip records
func (d *DB) GetTrips(ctx context.Context) ([]db.Trip, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, start_date, days_count, created_datetime, built_datetime
		FROM trip
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []db.Trip
	for rows.Next() {
		var t db.Trip
		var startDate, createdDatetime time.Time
		var builtDatetime *time.Time
		if err := rows.Scan(&t.ID, &t.Name, &startDate, &t.DaysCount, &createdDatetime, &builtDatetime); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		t.StartDate = startDate.Format("2006-01-02")
		t.CreatedDatetime = createdDatetime.UTC().Format(time.RFC3339)
		if builtDatetime != nil {
			t.BuiltDatetime = builtDatetime.UTC().Format(time.RFC3339)
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	return trips, nil
}

// InsertTrip inserts a new trip record
func (d *DB) InsertTrip(trip *db.Trip) error {
	_, err := d.pool.Exec(context.Background(), `
		INSERT INTO trip (id, name, start_date, days_count, created_datetime)
		VALUES ($1, $2, $3, $4, $5)
	`, trip.ID, trip.Name, trip.StartDate, trip.DaysCount, trip.CreatedDatetime)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// SetTripBuiltDatetime sets the built_datetime for a trip
func (d *DB) SetTripBuiltDatetime(ctx context.Context, tripID string, datetime time.Time) error {
	_, err := d.pool.Exec(ctx, `
		UPDATE trip SET built_datetime = $2 WHERE id = $1
	`, tripID, datetime.UTC())
	if err != nil {
		return fmt.Errorf("failed to set trip built_datetime: %w", err)
	}
	return nil
}
