package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

func TestDestinationRepo_Upsert_Create(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.dests.Upsert(ctx, trip.ID, "San Gimignano", "san-gimignano")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "San Gimignano", got.Name)
	assert.Equal(t, "san-gimignano", got.Slug)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestDestinationRepo_Upsert_IdempotentBySlug(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	first, err := r.dests.Upsert(ctx, trip.ID, "siena", "siena")
	require.NoError(t, err)

	// Same slug under the same trip must return the original row.
	second, err := r.dests.Upsert(ctx, trip.ID, "Siena", "siena")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same (trip, slug) must return same destination")
	assert.Equal(t, "siena", second.Name, "name should be the original, not the new casing")
}

func TestDestinationRepo_Upsert_SameSlugDifferentTrips(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	tripA, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)
	tripB, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	a, err := r.dests.Upsert(ctx, tripA.ID, "Siena", "siena")
	require.NoError(t, err)
	b, err := r.dests.Upsert(ctx, tripB.ID, "Siena", "siena")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "slug uniqueness is per trip")
}

func TestDestinationRepo_ListByTripID_OrderedBySlug(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	_, err = r.dests.Upsert(ctx, trip.ID, "Siena", "siena")
	require.NoError(t, err)
	_, err = r.dests.Upsert(ctx, trip.ID, "Lucca", "lucca")
	require.NoError(t, err)

	got, err := r.dests.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "lucca", got[0].Slug)
	assert.Equal(t, "siena", got[1].Slug)
}

func TestDestinationRepo_Remove(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	_, err = r.dests.Upsert(ctx, trip.ID, "Siena", "siena")
	require.NoError(t, err)

	require.NoError(t, r.dests.Remove(ctx, trip.ID, "siena"))

	got, err := r.dests.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDestinationRepo_Remove_NotFound(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	err = r.dests.Remove(ctx, trip.ID, "atlantide")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
