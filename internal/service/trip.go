// Package service contains the business logic for the Viaggio API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/repo"
)

// TripService implements business logic for Trip operations, including the
// trip's secondary destinations.
type TripService struct {
	trips repo.TripRepo
	dests repo.DestinationRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, dests repo.DestinationRepo) *TripService {
	return &TripService{trips: trips, dests: dests}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and updates an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AddDestination upserts a secondary destination by name under a trip.
// Returns domain.ErrValidation if the name is empty or normalizes to empty.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) AddDestination(ctx context.Context, tripID uuid.UUID, name string) (domain.Destination, error) {
	name = strings.TrimSpace(name)
	slug := slugify(name)
	if slug == "" {
		return domain.Destination{}, fmt.Errorf("service.TripService.AddDestination: %w: destination name is required", domain.ErrValidation)
	}
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Destination{}, fmt.Errorf("service.TripService.AddDestination: %w", err)
	}
	result, err := s.dests.Upsert(ctx, tripID, name, slug)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.TripService.AddDestination: %w", err)
	}
	return result, nil
}

// ListDestinations returns all secondary destinations for a trip.
func (s *TripService) ListDestinations(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	dests, err := s.dests.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListDestinations: %w", err)
	}
	if dests == nil {
		dests = []domain.Destination{}
	}
	return dests, nil
}

// RemoveDestination detaches a secondary destination from a trip by slug.
func (s *TripService) RemoveDestination(ctx context.Context, tripID uuid.UUID, slug string) error {
	if err := s.dests.Remove(ctx, tripID, slug); err != nil {
		return fmt.Errorf("service.TripService.RemoveDestination: %w", err)
	}
	return nil
}

// validateTrip enforces the trip business rules shared by Create and Update.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("validation error: name is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("validation error: destination is required: %w", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() {
		return fmt.Errorf("validation error: start_date is required: %w", domain.ErrValidation)
	}
	if trip.EndDate != nil && trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("validation error: end_date before start_date: %w", domain.ErrValidation)
	}
	return nil
}

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowers a destination name and collapses non-alphanumeric runs to
// single hyphens ("San Gimignano" → "san-gimignano").
func slugify(name string) string {
	slug := nonSlugRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
