package domain

// ExportRow is a single row in a trip's flat itinerary export.
// It is a denormalized view: one row per activity, with day fields repeated
// for every activity on that day. Days with no activities yield one row with
// zero values for all activity fields.
type ExportRow struct {
	// Day fields — repeated for every activity on the day.
	DayDate string // "2006-01-02" formatted date

	// Activity fields — zero values when the day has no activities.
	ActivityName string
	Type         string
	Location     string
	StartTime    string // "15:04" formatted, empty when the day is empty
	EndTime      string
	Priority     int
	Cost         float64
	Currency     string
	Status       string
	Notes        string
}
