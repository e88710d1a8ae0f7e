package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/preferences"
	"github.com/pbellini/viaggio/backend/internal/prompt"
	"github.com/pbellini/viaggio/backend/internal/reconcile"
	"github.com/pbellini/viaggio/backend/internal/repo"
)

// ModelClient is the outbound dependency on the external generative model:
// one prompt in, one raw text blob out. genai.Client satisfies it in
// production; tests inject a stub.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerateInput carries one activity-generation request.
type GenerateInput struct {
	TripID      uuid.UUID
	Preferences string
	// DayIDs restricts generation to a subset of the trip's days.
	// Empty means all days.
	DayIDs []uuid.UUID
	// Persist stores the reconciled activities before returning them.
	Persist bool
}

// GenerationService orchestrates the full generation flow: safety check →
// preference parsing → prompt assembly → model call → reconciliation →
// optional persistence. The whole attempt fails atomically; no partial
// activity list is ever returned.
type GenerationService struct {
	trips      repo.TripRepo
	days       repo.DayRepo
	dests      repo.DestinationRepo
	acts       repo.ActivityRepo
	model      ModelClient
	cache      GenerationCache // nil disables caching
	reconciler *reconcile.Reconciler
	logger     *slog.Logger
}

// NewGenerationService constructs a GenerationService.
// cache may be nil; logger falls back to slog.Default().
func NewGenerationService(
	trips repo.TripRepo,
	days repo.DayRepo,
	dests repo.DestinationRepo,
	acts repo.ActivityRepo,
	model ModelClient,
	cache GenerationCache,
	policy domain.RepairPolicy,
	logger *slog.Logger,
) *GenerationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationService{
		trips:      trips,
		days:       days,
		dests:      dests,
		acts:       acts,
		model:      model,
		cache:      cache,
		reconciler: reconcile.New(policy, logger),
		logger:     logger,
	}
}

// Generate runs one generation attempt and returns the reconciled activities.
// Error mapping: domain.ErrValidation for missing trip/days,
// domain.ErrUnsafeContent for rejected free text, domain.ErrUpstream for
// model failures, domain.ErrParse for unusable responses.
func (s *GenerationService) Generate(ctx context.Context, in GenerateInput) ([]domain.Activity, error) {
	if err := checkSafeContent(map[string]string{"preferences": in.Preferences}); err != nil {
		return nil, fmt.Errorf("service.GenerationService.Generate: %w", err)
	}

	trip, err := s.trips.GetByID(ctx, in.TripID)
	if err != nil {
		return nil, fmt.Errorf("service.GenerationService.Generate: %w", err)
	}

	days, err := s.loadDays(ctx, in)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("service.GenerationService.Generate: %w: trip has no days to plan", domain.ErrValidation)
	}

	if s.cache != nil && !in.Persist {
		key := CacheKey(in.TripID, in.Preferences)
		if acts, hit, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn("generation cache lookup failed", "error", err)
		} else if hit {
			s.logger.Info("generation cache hit", "trip_id", in.TripID)
			return acts, nil
		}
	}

	dests, err := s.dests.ListByTripID(ctx, in.TripID)
	if err != nil {
		return nil, fmt.Errorf("service.GenerationService.Generate: %w", err)
	}
	secondary := make([]string, len(dests))
	for i, d := range dests {
		secondary[i] = d.Name
	}

	cs := preferences.Parse(in.Preferences, trip.Destination, secondary)
	s.logger.Debug("preferences parsed",
		"trip_id", in.TripID,
		"time_constraints", len(cs.TimeConstraints),
		"limited", cs.IsLimitedRequest,
	)

	raw, err := s.model.Generate(ctx, prompt.Build(trip, days, cs))
	if err != nil {
		return nil, fmt.Errorf("service.GenerationService.Generate: %w", err)
	}

	activities, err := s.reconciler.Reconcile(raw, days, cs)
	if err != nil {
		return nil, fmt.Errorf("service.GenerationService.Generate: %w", err)
	}

	if in.Persist {
		activities, err = s.acts.CreateBatch(ctx, activities)
		if err != nil {
			return nil, fmt.Errorf("service.GenerationService.Generate: %w", err)
		}
	} else if s.cache != nil {
		key := CacheKey(in.TripID, in.Preferences)
		if err := s.cache.Set(ctx, key, activities); err != nil {
			s.logger.Warn("generation cache store failed", "error", err)
		}
	}

	s.logger.Info("activities generated",
		"trip_id", in.TripID,
		"count", len(activities),
		"persisted", in.Persist,
	)
	return activities, nil
}

// loadDays returns the trip's days, filtered to in.DayIDs when provided.
// Unknown requested day IDs are a validation error rather than being ignored.
func (s *GenerationService) loadDays(ctx context.Context, in GenerateInput) ([]domain.Day, error) {
	days, err := s.days.ListByTripID(ctx, in.TripID)
	if err != nil {
		return nil, fmt.Errorf("service.GenerationService.Generate: %w", err)
	}
	if len(in.DayIDs) == 0 {
		return days, nil
	}

	byID := make(map[uuid.UUID]domain.Day, len(days))
	for _, d := range days {
		byID[d.ID] = d
	}
	out := make([]domain.Day, 0, len(in.DayIDs))
	for _, id := range in.DayIDs {
		d, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("service.GenerationService.Generate: %w: day %s not in trip", domain.ErrValidation, id)
		}
		out = append(out, d)
	}
	return out, nil
}
