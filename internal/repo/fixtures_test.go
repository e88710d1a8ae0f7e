package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/repo"
	"github.com/pbellini/viaggio/backend/testutil"
)

// testRepos bundles all four repos over a single transaction, so tests can
// build full hierarchies (trip → day → activity) that vanish on rollback.
type testRepos struct {
	trips repo.TripRepo
	days  repo.DayRepo
	dests repo.DestinationRepo
	acts  repo.ActivityRepo
}

// newTestRepos opens a transaction against the test database and returns the
// repos backed by it. The transaction is rolled back when the test finishes,
// giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; migrations are applied by TestMain.
func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return &testRepos{
		trips: repo.NewTripRepo(tx),
		days:  repo.NewDayRepo(tx),
		dests: repo.NewDestinationRepo(tx),
		acts:  repo.NewActivityRepo(tx),
	}
}

// tripFixture returns a domain.Trip with sensible defaults.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		Name:        "Weekend in Toscana",
		Destination: "Firenze",
		StartDate:   start,
		EndDate:     &end,
		TripType:    "cultura",
		Pace:        "moderato",
		Notes:       "Test notes",
	}
}

// createTripWithDay persists a trip and one day on its start date.
func createTripWithDay(t *testing.T, r *testRepos) (domain.Trip, domain.Day) {
	t.Helper()
	ctx := context.Background()

	trip, err := r.trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	day, err := r.days.Create(ctx, domain.Day{TripID: trip.ID, Date: trip.StartDate})
	require.NoError(t, err)

	return trip, day
}

// activityFixture returns an activity on the given day, starting at the given
// wall-clock hour with a 90 minute duration.
func activityFixture(day domain.Day, name string, hour int) domain.Activity {
	start := day.Date.Add(time.Duration(hour) * time.Hour)
	return domain.Activity{
		DayID:     day.ID,
		DayDate:   day.Date,
		Name:      name,
		Type:      "culture",
		Location:  "Firenze",
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute),
		Priority:  2,
		Cost:      15,
		Currency:  "EUR",
		Notes:     "Prenota online",
		Status:    domain.StatusPlanned,
	}
}
