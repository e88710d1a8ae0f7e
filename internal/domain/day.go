package domain

import (
	"time"

	"github.com/google/uuid"
)

// Day is a single calendar day of a trip. Activities are scheduled within a
// day; the (TripID, Date) pair is unique.
type Day struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
