package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/repo"
)

// DayService implements business logic for Day operations.
// It holds the trips repo as well because creating a day requires verifying
// the parent trip exists and that the date falls inside the trip's range.
type DayService struct {
	trips repo.TripRepo
	days  repo.DayRepo
}

// NewDayService constructs a DayService backed by the provided repos.
func NewDayService(trips repo.TripRepo, days repo.DayRepo) *DayService {
	return &DayService{trips: trips, days: days}
}

// Create validates the day, verifies the parent trip exists, then persists.
// Returns domain.ErrValidation if the date is missing or outside the trip's
// date range. Returns domain.ErrNotFound if the parent trip does not exist.
func (s *DayService) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	trip, err := s.trips.GetByID(ctx, day.TripID)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	if day.Date.IsZero() {
		return domain.Day{}, fmt.Errorf("validation error: date is required: %w", domain.ErrValidation)
	}
	if day.Date.Before(trip.StartDate) {
		return domain.Day{}, fmt.Errorf("validation error: date before trip start: %w", domain.ErrValidation)
	}
	if trip.EndDate != nil && day.Date.After(*trip.EndDate) {
		return domain.Day{}, fmt.Errorf("validation error: date after trip end: %w", domain.ErrValidation)
	}
	result, err := s.days.Create(ctx, day)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.Create: %w", err)
	}
	return result, nil
}

// ListByTripID returns all days for a trip ordered by date ascending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DayService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	days, err := s.days.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.ListByTripID: %w", err)
	}
	if days == nil {
		days = []domain.Day{}
	}
	return days, nil
}

// Delete removes a day by ID, scoped to the given trip.
func (s *DayService) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	if err := s.days.Delete(ctx, tripID, dayID); err != nil {
		return fmt.Errorf("service.DayService.Delete: %w", err)
	}
	return nil
}
