package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/repo"
)

// ExportService assembles a flat itinerary export for one trip.
type ExportService struct {
	trips repo.TripRepo
	days  repo.DayRepo
	acts  repo.ActivityRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, days repo.DayRepo, acts repo.ActivityRepo) *ExportService {
	return &ExportService{trips: trips, days: days, acts: acts}
}

// Export returns one ExportRow per activity across the trip, ordered by day
// date then start time. Days with no activities contribute one row with
// empty activity fields. Returns domain.ErrNotFound if the trip does not exist.
func (s *ExportService) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	days, err := s.days.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	acts, err := s.acts.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	byDay := make(map[uuid.UUID][]domain.Activity, len(days))
	for _, a := range acts {
		byDay[a.DayID] = append(byDay[a.DayID], a)
	}

	rows := []domain.ExportRow{}
	for _, day := range days {
		dayActs := byDay[day.ID]
		if len(dayActs) == 0 {
			rows = append(rows, domain.ExportRow{DayDate: day.Date.Format("2006-01-02")})
			continue
		}
		sort.SliceStable(dayActs, func(i, j int) bool {
			return dayActs[i].StartTime.Before(dayActs[j].StartTime)
		})
		for _, a := range dayActs {
			rows = append(rows, domain.ExportRow{
				DayDate:      day.Date.Format("2006-01-02"),
				ActivityName: a.Name,
				Type:         a.Type,
				Location:     a.Location,
				StartTime:    a.StartTime.Format("15:04"),
				EndTime:      a.EndTime.Format("15:04"),
				Priority:     a.Priority,
				Cost:         a.Cost,
				Currency:     a.Currency,
				Status:       a.Status,
				Notes:        a.Notes,
			})
		}
	}
	return rows, nil
}
