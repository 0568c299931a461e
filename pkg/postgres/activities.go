package postgres

import (
	"context"
	"fmt"

	"github.com/rowanhale/tripsmith/pkg/db"
)

// GetActivities retrieves all activity catalog records
func (d *DB) GetActivities(ctx context.Context) ([]db.Activity, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, category, duration_mins, price_tier, neighborhood,
			lat, lng, open_windows, must_book, popularity, status, booking_url
		FROM activity
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []db.Activity
	for rows.Next() {
		var a db.Activity
		var neighborhood, bookingURL *string
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.DurationMins, &a.PriceTier,
			&neighborhood, &a.Lat, &a.Lng, &a.OpenWindows, &a.MustBook, &a.Popularity,
			&a.Status, &bookingURL); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		if neighborhood != nil {
			a.Neighborhood = *neighborhood
		}
		if bookingURL != nil {
			a.BookingURL = *bookingURL
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}

// UpsertActivities inserts or updates activity catalog records in a batch.
// Existing records with the same ID are overwritten, so repeated catalog
// imports keep the table in sync with the sheet.
func (d *DB) UpsertActivities(activities []db.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range activities {
		var neighborhood, bookingURL *string
		if a.Neighborhood != "" {
			neighborhood = &a.Neighborhood
		}
		if a.BookingURL != "" {
			bookingURL = &a.BookingURL
		}

		openWindows := a.OpenWindows
		if openWindows == nil {
			openWindows = []string{}
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO activity (id, name, category, duration_mins, price_tier, neighborhood,
				lat, lng, open_windows, must_book, popularity, status, booking_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				category = EXCLUDED.category,
				duration_mins = EXCLUDED.duration_mins,
				price_tier = EXCLUDED.price_tier,
				neighborhood = EXCLUDED.neighborhood,
				lat = EXCLUDED.lat,
				lng = EXCLUDED.lng,
				open_windows = EXCLUDED.open_windows,
				must_book = EXCLUDED.must_book,
				popularity = EXCLUDED.popularity,
				status = EXCLUDED.status,
				booking_url = EXCLUDED.booking_url
		`, a.ID, a.Name, a.Category, a.DurationMins, a.PriceTier, neighborhood,
			a.Lat, a.Lng, openWindows, a.MustBook, a.Popularity, a.Status, bookingURL)
		if err != nil {
			return fmt.Errorf("failed to upsert activity %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
