package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/repo"
)

// validStatuses are the activity statuses accepted from callers.
var validStatuses = map[string]struct{}{
	domain.StatusPlanned:   {},
	domain.StatusConfirmed: {},
	domain.StatusDone:      {},
	domain.StatusCancelled: {},
}

// ActivityService implements business logic for manually managed activities.
// Generated activities go through GenerationService instead, which applies
// the repair policy before persisting.
type ActivityService struct {
	days repo.DayRepo
	acts repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(days repo.DayRepo, acts repo.ActivityRepo) *ActivityService {
	return &ActivityService{days: days, acts: acts}
}

// Create validates the activity, verifies the parent day exists, then persists.
// Returns domain.ErrValidation for rule violations, domain.ErrNotFound if the
// parent day does not exist.
func (s *ActivityService) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	day, err := s.days.GetByID(ctx, act.DayID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	act = applyActivityDefaults(act)
	if err := validateActivity(act, day); err != nil {
		return domain.Activity{}, err
	}
	act.DayDate = day.Date
	result, err := s.acts.Create(ctx, act)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity by ID, scoped to the given day.
func (s *ActivityService) GetByID(ctx context.Context, dayID, actID uuid.UUID) (domain.Activity, error) {
	result, err := s.acts.GetByID(ctx, dayID, actID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// ListByDayID returns all activities for a day ordered by start time.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	acts, err := s.acts.ListByDayID(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByDayID: %w", err)
	}
	if acts == nil {
		acts = []domain.Activity{}
	}
	return acts, nil
}

// Update validates and persists changes to an existing activity.
func (s *ActivityService) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	day, err := s.days.GetByID(ctx, act.DayID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	act = applyActivityDefaults(act)
	if err := validateActivity(act, day); err != nil {
		return domain.Activity{}, err
	}
	act.DayDate = day.Date
	result, err := s.acts.Update(ctx, act)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity by ID, scoped to the given day.
func (s *ActivityService) Delete(ctx context.Context, dayID, actID uuid.UUID) error {
	if err := s.acts.Delete(ctx, dayID, actID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// applyActivityDefaults fills optional fields the caller may omit.
func applyActivityDefaults(act domain.Activity) domain.Activity {
	if act.Priority == 0 {
		act.Priority = domain.DefaultPriority
	}
	if act.Status == "" {
		act.Status = domain.StatusPlanned
	}
	return act
}

// validateActivity enforces the activity business rules shared by Create and
// Update. day is the already-loaded parent day.
func validateActivity(act domain.Activity, day domain.Day) error {
	if strings.TrimSpace(act.Name) == "" {
		return fmt.Errorf("validation error: name is required: %w", domain.ErrValidation)
	}
	if act.StartTime.IsZero() || act.EndTime.IsZero() {
		return fmt.Errorf("validation error: start_time and end_time are required: %w", domain.ErrValidation)
	}
	if !act.EndTime.After(act.StartTime) {
		return fmt.Errorf("validation error: end_time must be after start_time: %w", domain.ErrValidation)
	}
	if act.Priority < 1 || act.Priority > 3 {
		return fmt.Errorf("validation error: priority must be 1, 2 or 3: %w", domain.ErrValidation)
	}
	if _, ok := validStatuses[act.Status]; !ok {
		return fmt.Errorf("validation error: unknown status %q: %w", act.Status, domain.ErrValidation)
	}
	sy, sm, sd := act.StartTime.Date()
	dy, dm, dd := day.Date.Date()
	if sy != dy || sm != dm || sd != dd {
		return fmt.Errorf("validation error: start_time not on day date: %w", domain.ErrValidation)
	}
	return nil
}
