package postgres

import (
	"context"
	"fmt"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// GetSelections retrieves all selection records for a trip
func (d *DB) GetSelections(ctx context.Context, tripID string) ([]db.Selection, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, trip_id, activity_id, position
		FROM selection
		WHERE trip_id = $1
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer rows.Close()

	var selections []db.Selection
	for rows.Next() {
		var s db.Selection
		if err := rows.Scan(&s.ID, &s.TripID, &s.ActivityID, &s.Position); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		selections = append(selections, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating selections: %w", err)
	}

	return selections, nil
}

// InsertSelections inserts selection records in a batch
func (d *DB) InsertSelections(selections []db.Selection) error {
	if len(selections) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range selections {
		_, err := tx.Exec(ctx, `
			INSERT INTO selection (id, trip_id, activity_id, position)
			VALUES ($1, $2, $3, $4)
		`, s.ID, s.TripID, s.ActivityID, s.Position)
		if err != nil {
			return fmt.Errorf("failed to insert selection: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteSelection removes a single selection record
func (d *DB) DeleteSelection(ctx context.Context, tripID, activityID string) error {
	tag, err := d.pool.Exec(ctx, `
		DELETE FROM selection WHERE trip_id = $1 AND activity_id = $2
	`, tripID, activityID)
	if err != nil {
		return fmt.Errorf("failed to delete selection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no selection found for activity %s on trip %s", activityID, tripID)
	}
	return nil
}
