package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity statuses. New activities default to StatusPlanned.
const (
	StatusPlanned   = "planned"
	StatusConfirmed = "confirmed"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
)

// DefaultPriority is assigned when an activity carries no priority.
// Valid priorities are 1 (must do), 2 (should do), 3 (nice to have).
const DefaultPriority = 3

// Activity is a single scheduled item within a day. StartTime and EndTime
// fall on the same calendar day as DayDate, with EndTime strictly after
// StartTime. Within a day, reconciled activities never overlap.
type Activity struct {
	ID        uuid.UUID `json:"id,omitempty"`
	DayID     uuid.UUID `json:"day_id"`
	DayDate   time.Time `json:"day_date"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Priority  int       `json:"priority"`
	Cost      float64   `json:"cost,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Duration returns the activity's scheduled length.
func (a Activity) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// Overlaps reports whether the [StartTime, EndTime) intervals of a and b
// intersect. Touching intervals (a ends exactly when b starts) do not overlap.
func (a Activity) Overlaps(b Activity) bool {
	return a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime)
}
