package sheetsclient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rowanhale/tripsmith/internal/config"
	"github.com/rowanhale/tripsmith/pkg/core/model"
)

// Expected column names in the activities sheet
var activityFields = []string{
	"Unique ID",
	"Name",
	"Category",
	"Duration mins",
	"Price tier",
	"Neighborhood",
	"Lat",
	"Lng",
	"Open windows",
	"Must book",
	"Popularity",
	"Status",
	"Booking URL",
}

// Labels accepted in the "Open windows" column
var knownBlockLabels = map[string]bool{
	"morning":   true,
	"afternoon": true,
	"evening":   true,
}

// ListActivities retrieves and parses the activity catalog from the
// configured spreadsheet. Rows that cannot be parsed are reported as row
// errors rather than failing the whole catalog.
func (c *Client) ListActivities(cfg *config.Config) ([]model.Activity, []string, error) {
	values, err := c.GetValues(cfg.CatalogSheetID, cfg.ActivitiesTab)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get activity data: %w", err)
	}

	if len(values) == 0 {
		return nil, nil, fmt.Errorf("spreadsheet is empty")
	}

	return parseActivities(values)
}

// parseActivities converts raw spreadsheet data into Activity structs.
// The first returned slice holds the parsed activities, the second holds
// one message per row that had to be skipped.
func parseActivities(raw [][]interface{}) ([]model.Activity, []string, error) {
	if len(raw) < 1 {
		return nil, nil, fmt.Errorf("no header row found")
	}

	// Build field index map from header row
	fieldIndexes := make(map[string]int)
	headerRow := raw[0]

	for _, field := range activityFields {
		index := -1
		for i, cell := range headerRow {
			if cellStr, ok := cell.(string); ok && cellStr == field {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, nil, fmt.Errorf("missing required field in header: %s", field)
		}
		fieldIndexes[field] = index
	}

	getField := func(field string, row []interface{}) string {
		index, ok := fieldIndexes[field]
		if !ok {
			return ""
		}
		if index >= len(row) {
			return ""
		}
		if str, ok := row[index].(string); ok {
			return strings.TrimSpace(str)
		}
		return ""
	}

	activities := make([]model.Activity, 0, len(raw)-1)
	var rowErrors []string

	for i := 1; i < len(raw); i++ {
		row := raw[i]

		name := getField("Name", row)
		// Skip empty rows (rows with no name)
		if name == "" {
			continue
		}

		activity, err := parseActivityRow(name, row, getField)
		if err != nil {
			// Sheet rows are 1-based and the header takes row 1
			rowErrors = append(rowErrors, fmt.Sprintf("row %d (%s): %v", i+1, name, err))
			continue
		}

		activities = append(activities, activity)
	}

	return activities, rowErrors, nil
}

// parseActivityRow converts a single data row into an Activity
func parseActivityRow(name string, row []interface{}, getField func(string, []interface{}) string) (model.Activity, error) {
	activity := model.Activity{
		Name:         name,
		Neighborhood: getField("Neighborhood", row),
		BookingURL:   getField("Booking URL", row),
	}

	activity.ActivityID = getField("Unique ID", row)
	if activity.ActivityID == "" {
		return model.Activity{}, fmt.Errorf("missing unique ID")
	}

	activity.Category = strings.ToLower(getField("Category", row))
	if activity.Category == "" {
		return model.Activity{}, fmt.Errorf("missing category")
	}

	durationMins, err := strconv.Atoi(getField("Duration mins", row))
	if err != nil || durationMins <= 0 {
		return model.Activity{}, fmt.Errorf("invalid duration mins %q", getField("Duration mins", row))
	}
	activity.DurationMins = durationMins

	if val := getField("Price tier", row); val != "" {
		priceTier, err := strconv.Atoi(val)
		if err != nil {
			return model.Activity{}, fmt.Errorf("invalid price tier %q", val)
		}
		activity.PriceTier = priceTier
	}

	if val := getField("Lat", row); val != "" {
		lat, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return model.Activity{}, fmt.Errorf("invalid lat %q", val)
		}
		activity.Lat = lat
	}

	if val := getField("Lng", row); val != "" {
		lng, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return model.Activity{}, fmt.Errorf("invalid lng %q", val)
		}
		activity.Lng = lng
	}

	openWindows, err := parseOpenWindows(getField("Open windows", row))
	if err != nil {
		return model.Activity{}, err
	}
	activity.OpenWindows = openWindows

	mustBook, err := parseCheckbox(getField("Must book", row))
	if err != nil {
		return model.Activity{}, fmt.Errorf("invalid must book value: %w", err)
	}
	activity.MustBook = mustBook

	if val := getField("Popularity", row); val != "" {
		popularity, err := strconv.Atoi(val)
		if err != nil || popularity < 0 || popularity > 100 {
			return model.Activity{}, fmt.Errorf("invalid popularity %q (expected 0-100)", val)
		}
		activity.Popularity = &popularity
	}

	status := model.ActivityStatus(getField("Status", row))
	if status == "" {
		status = model.StatusActive
	}
	if !status.IsValid() {
		return model.Activity{}, fmt.Errorf("invalid status %q", getField("Status", row))
	}
	activity.Status = status

	return activity, nil
}

// parseOpenWindows splits a comma-separated list of block labels,
// e.g. "morning, evening". An empty cell means no restriction.
func parseOpenWindows(val string) ([]string, error) {
	if val == "" {
		return nil, nil
	}

	parts := strings.Split(val, ",")
	windows := make([]string, 0, len(parts))
	for _, part := range parts {
		label := strings.ToLower(strings.TrimSpace(part))
		if label == "" {
			continue
		}
		if !knownBlockLabels[label] {
			return nil, fmt.Errorf("unknown block label %q in open windows", label)
		}
		windows = append(windows, label)
	}

	return windows, nil
}

// parseCheckbox interprets the TRUE/FALSE strings Sheets checkboxes produce.
// An empty cell counts as false.
func parseCheckbox(val string) (bool, error) {
	switch strings.ToLower(val) {
	case "", "false", "no", "0":
		return false, nil
	case "true", "yes", "1":
		return true, nil
	default:
		return false, fmt.Errorf("unrecognized value %q", val)
	}
}
