package domain

import "time"

// RepairPolicy controls how the reconciler treats activities that come back
// from the model with missing or invalid fields.
//
// The default (lenient) policy patches holes in place: missing names,
// types, locations, and times are backfilled with generated defaults, and
// inverted time ranges are forced to a default duration. Strict mode rejects
// the whole batch with ErrValidation instead, for callers that prefer a
// failed generation over a repaired one.
type RepairPolicy struct {
	// Strict rejects activities with missing required fields instead of
	// backfilling them.
	Strict bool

	// DefaultDuration is applied when an activity has no usable end time.
	DefaultDuration time.Duration

	// OverlapBuffer is the minimum gap inserted between two activities that
	// would otherwise overlap during cascade adjustment.
	OverlapBuffer time.Duration
}

// DefaultRepairPolicy returns the lenient best-effort policy: 90-minute
// default duration, 30-minute overlap buffer.
func DefaultRepairPolicy() RepairPolicy {
	return RepairPolicy{
		Strict:          false,
		DefaultDuration: 90 * time.Minute,
		OverlapBuffer:   30 * time.Minute,
	}
}
