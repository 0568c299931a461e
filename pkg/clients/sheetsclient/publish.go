package sheetsclient

import (
	"fmt"
	"time"

	"google.golang.org/api/sheets/v4"
)

// PublishedItineraryRow represents a single row in the published itinerary
type PublishedItineraryRow struct {
	Day      string // e.g. "Day 1 - Sat Sep 05 2026", or "Overflow"
	Block    string // "Morning", "Afternoon", "Evening"; empty for overflow rows
	Activity string
	Category string
	Duration string // e.g. "90 mins"
	Booking  string // Booking URL or a booking reminder; empty if nothing to book
}

// PublishedItinerary represents the complete published itinerary data
type PublishedItinerary struct {
	TripName  string
	StartDate string // Format: "2006-01-02"
	DaysCount int
	Rows      []PublishedItineraryRow
}

// PublishItinerary publishes a built itinerary to Google Sheets.
// Each trip gets its own tab named after the trip and its date range.
// If the tab already exists it is cleared and rewritten, so republishing
// after a rebuild never leaves stale rows behind.
func (c *Client) PublishItinerary(spreadsheetID string, published *PublishedItinerary) error {
	tabTitle, err := generateTabTitle(published.TripName, published.StartDate, published.DaysCount)
	if err != nil {
		return fmt.Errorf("failed to generate tab title: %w", err)
	}

	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	var existingSheet *sheets.Sheet
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == tabTitle {
			existingSheet = sheet
			break
		}
	}

	if existingSheet == nil {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	} else {
		if err := c.ClearValues(spreadsheetID, fmt.Sprintf("%s!A1:ZZ", tabTitle)); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	}

	header := []interface{}{"Day", "Block", "Activity", "Category", "Duration", "Booking"}

	allRows := make([][]interface{}, 0, len(published.Rows)+1)
	allRows = append(allRows, header)
	for _, row := range published.Rows {
		allRows = append(allRows, []interface{}{
			row.Day, row.Block, row.Activity, row.Category, row.Duration, row.Booking,
		})
	}

	if err := c.UpdateValues(spreadsheetID, fmt.Sprintf("%s!A1", tabTitle), allRows); err != nil {
		return fmt.Errorf("failed to write itinerary to tab: %w", err)
	}

	return nil
}

// generateTabTitle creates a tab title like
// "Paris Weekend: Sat Sep 05 2026 - Mon Sep 07 2026"
func generateTabTitle(tripName, startDate string, daysCount int) (string, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "", fmt.Errorf("invalid start date: %w", err)
	}

	end := start.AddDate(0, 0, daysCount-1)

	return fmt.Sprintf("%s: %s - %s",
		tripName,
		start.Format("Mon Jan 02 2006"),
		end.Format("Mon Jan 02 2006"),
	), nil
}
