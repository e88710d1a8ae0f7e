package handler_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/handler"
	"github.com/pbellini/viaggio/backend/internal/service"
)

// Compile-time interface checks for the function-field mocks below.
var (
	_ handler.TripServicer     = (*mockTripService)(nil)
	_ handler.DayServicer      = (*mockDayService)(nil)
	_ handler.ActivityServicer = (*mockActivityService)(nil)
	_ handler.Generator        = (*mockGenerator)(nil)
	_ handler.Exporter         = (*mockExporter)(nil)
)

type mockTripService struct {
	createFn            func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByIDFn           func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPagedFn         func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	updateFn            func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	deleteFn            func(ctx context.Context, id uuid.UUID) error
	addDestinationFn    func(ctx context.Context, tripID uuid.UUID, name string) (domain.Destination, error)
	listDestinationsFn  func(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)
	removeDestinationFn func(ctx context.Context, tripID uuid.UUID, slug string) error
}

func (m *mockTripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.createFn(ctx, trip)
}

func (m *mockTripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPagedFn(ctx, p)
}

func (m *mockTripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.updateFn(ctx, trip)
}

func (m *mockTripService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTripService) AddDestination(ctx context.Context, tripID uuid.UUID, name string) (domain.Destination, error) {
	return m.addDestinationFn(ctx, tripID, name)
}

func (m *mockTripService) ListDestinations(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	return m.listDestinationsFn(ctx, tripID)
}

func (m *mockTripService) RemoveDestination(ctx context.Context, tripID uuid.UUID, slug string) error {
	return m.removeDestinationFn(ctx, tripID, slug)
}

type mockDayService struct {
	createFn       func(ctx context.Context, day domain.Day) (domain.Day, error)
	listByTripIDFn func(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)
	deleteFn       func(ctx context.Context, tripID, dayID uuid.UUID) error
}

func (m *mockDayService) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	return m.createFn(ctx, day)
}

func (m *mockDayService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	return m.listByTripIDFn(ctx, tripID)
}

func (m *mockDayService) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	return m.deleteFn(ctx, tripID, dayID)
}

type mockActivityService struct {
	createFn      func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	getByIDFn     func(ctx context.Context, dayID, actID uuid.UUID) (domain.Activity, error)
	listByDayIDFn func(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error)
	updateFn      func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	deleteFn      func(ctx context.Context, dayID, actID uuid.UUID) error
}

func (m *mockActivityService) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.createFn(ctx, act)
}

func (m *mockActivityService) GetByID(ctx context.Context, dayID, actID uuid.UUID) (domain.Activity, error) {
	return m.getByIDFn(ctx, dayID, actID)
}

func (m *mockActivityService) ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	return m.listByDayIDFn(ctx, dayID)
}

func (m *mockActivityService) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.updateFn(ctx, act)
}

func (m *mockActivityService) Delete(ctx context.Context, dayID, actID uuid.UUID) error {
	return m.deleteFn(ctx, dayID, actID)
}

type mockGenerator struct {
	generateFn func(ctx context.Context, in service.GenerateInput) ([]domain.Activity, error)
}

func (m *mockGenerator) Generate(ctx context.Context, in service.GenerateInput) ([]domain.Activity, error) {
	return m.generateFn(ctx, in)
}

type mockExporter struct {
	exportFn func(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

func (m *mockExporter) Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	return m.exportFn(ctx, tripID)
}
