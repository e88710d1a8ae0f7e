// Package domain contains the core data types for the Viaggio trip planner.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (repo, service, handler, reconcile).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level aggregate: a planned journey to a main destination.
// Days belong to a trip; activities belong to a day.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"` // nil when the trip is open-ended
	TripType    string     `json:"trip_type,omitempty"`
	Pace        string     `json:"pace,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Destination is a secondary destination attached to a trip, beyond the
// trip's main one. Secondary destinations widen the city gazetteer used by
// the preference parser when generating activities.
type Destination struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
