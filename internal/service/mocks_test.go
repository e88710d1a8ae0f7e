package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/repo"
	"github.com/pbellini/viaggio/backend/internal/service"
)

// Compile-time interface checks for the function-field mocks below.
var (
	_ repo.TripRepo           = (*mockTripRepo)(nil)
	_ repo.DayRepo            = (*mockDayRepo)(nil)
	_ repo.DestinationRepo    = (*mockDestinationRepo)(nil)
	_ repo.ActivityRepo       = (*mockActivityRepo)(nil)
	_ service.ModelClient     = (*mockModel)(nil)
	_ service.GenerationCache = (*mockCache)(nil)
)

type mockTripRepo struct {
	createFn    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByIDFn   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPagedFn func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	updateFn    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	deleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.createFn(ctx, trip)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPagedFn(ctx, p)
}

func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.updateFn(ctx, trip)
}

func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockDayRepo struct {
	createFn       func(ctx context.Context, day domain.Day) (domain.Day, error)
	getByIDFn      func(ctx context.Context, id uuid.UUID) (domain.Day, error)
	listByTripIDFn func(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)
	deleteFn       func(ctx context.Context, tripID, dayID uuid.UUID) error
}

func (m *mockDayRepo) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	return m.createFn(ctx, day)
}

func (m *mockDayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockDayRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	return m.listByTripIDFn(ctx, tripID)
}

func (m *mockDayRepo) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	return m.deleteFn(ctx, tripID, dayID)
}

type mockDestinationRepo struct {
	upsertFn       func(ctx context.Context, tripID uuid.UUID, name, slug string) (domain.Destination, error)
	listByTripIDFn func(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)
	removeFn       func(ctx context.Context, tripID uuid.UUID, slug string) error
}

func (m *mockDestinationRepo) Upsert(ctx context.Context, tripID uuid.UUID, name, slug string) (domain.Destination, error) {
	return m.upsertFn(ctx, tripID, name, slug)
}

func (m *mockDestinationRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	return m.listByTripIDFn(ctx, tripID)
}

func (m *mockDestinationRepo) Remove(ctx context.Context, tripID uuid.UUID, slug string) error {
	return m.removeFn(ctx, tripID, slug)
}

type mockActivityRepo struct {
	createFn       func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	createBatchFn  func(ctx context.Context, acts []domain.Activity) ([]domain.Activity, error)
	getByIDFn      func(ctx context.Context, dayID, actID uuid.UUID) (domain.Activity, error)
	listByDayIDFn  func(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error)
	listByTripIDFn func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	updateFn       func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	deleteFn       func(ctx context.Context, dayID, actID uuid.UUID) error
}

func (m *mockActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.createFn(ctx, act)
}

func (m *mockActivityRepo) CreateBatch(ctx context.Context, acts []domain.Activity) ([]domain.Activity, error) {
	return m.createBatchFn(ctx, acts)
}

func (m *mockActivityRepo) GetByID(ctx context.Context, dayID, actID uuid.UUID) (domain.Activity, error) {
	return m.getByIDFn(ctx, dayID, actID)
}

func (m *mockActivityRepo) ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	return m.listByDayIDFn(ctx, dayID)
}

func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripIDFn(ctx, tripID)
}

func (m *mockActivityRepo) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.updateFn(ctx, act)
}

func (m *mockActivityRepo) Delete(ctx context.Context, dayID, actID uuid.UUID) error {
	return m.deleteFn(ctx, dayID, actID)
}

type mockModel struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
}

func (m *mockModel) Generate(ctx context.Context, prompt string) (string, error) {
	return m.generateFn(ctx, prompt)
}

type mockCache struct {
	getFn func(ctx context.Context, key string) ([]domain.Activity, bool, error)
	setFn func(ctx context.Context, key string, acts []domain.Activity) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]domain.Activity, bool, error) {
	return m.getFn(ctx, key)
}

func (m *mockCache) Set(ctx context.Context, key string, acts []domain.Activity) error {
	return m.setFn(ctx, key, acts)
}
