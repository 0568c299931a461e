package postgres

import (
	"context"
	"fmt"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// GetPlacements retrieves all placement records for a trip
func (d *DB) GetPlacements(ctx context.Context, tripID string) ([]db.Placement, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, trip_id, activity_id, day_index, block, slot
		FROM placement
		WHERE trip_id = $1
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query placements: %w", err)
	}
	defer rows.Close()

	var placements []db.Placement
	for rows.Next() {
		var p db.Placement
		if err := rows.Scan(&p.ID, &p.TripID, &p.ActivityID, &p.DayIndex, &p.Block, &p.Slot); err != nil {
			return nil, fmt.Errorf("failed to scan placement: %w", err)
		}
		placements = append(placements, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating placements: %w", err)
	}

	return placements, nil
}

// ReplacePlacements replaces a trip's placement records with a new set.
// The delete and inserts run in one transaction so a rebuild never leaves
// a half-written itinerary behind.
func (d *DB) ReplacePlacements(tripID string, placements []db.Placement) error {
	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM placement WHERE trip_id = $1`, tripID); err != nil {
		return fmt.Errorf("failed to delete placements: %w", err)
	}

	for _, p := range placements {
		_, err := tx.Exec(ctx, `
			INSERT INTO placement (id, trip_id, activity_id, day_index, block, slot)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, p.ID, p.TripID, p.ActivityID, p.DayIndex, p.Block, p.Slot)
		if err != nil {
			return fmt.Errorf("failed to insert placement: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
