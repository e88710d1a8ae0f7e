package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// DayRepo defines the persistence operations for trip days.
type DayRepo interface {
	// Create inserts a new day under a trip. The (trip_id, date) pair is
	// unique; inserting a duplicate date returns an error from the database.
	Create(ctx context.Context, day domain.Day) (domain.Day, error)

	// GetByID retrieves a single day by ID.
	// Returns domain.ErrNotFound if no day with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error)

	// ListByTripID returns all days for a trip ordered by date ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)

	// Delete removes a day by ID, scoped to the given trip.
	// Returns domain.ErrNotFound if the day does not exist under that trip.
	Delete(ctx context.Context, tripID, dayID uuid.UUID) error
}

// pgDayRepo is the Postgres implementation of DayRepo.
type pgDayRepo struct {
	db db
}

// NewDayRepo constructs a DayRepo backed by the provided db connection.
func NewDayRepo(db db) DayRepo {
	return &pgDayRepo{db: db}
}

// Create inserts a new day row and returns the full persisted record.
func (r *pgDayRepo) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	const q = `
		INSERT INTO days (trip_id, date)
		VALUES (@trip_id, @date)
		RETURNING id, trip_id, date, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": day.TripID, "date": day.Date})
	result, err := scanDay(row)
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a day by primary key.
func (r *pgDayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error) {
	const q = `
		SELECT id, trip_id, date, created_at, updated_at
		FROM days
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanDay(row)
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all days for a trip ordered by date ascending.
func (r *pgDayRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	const q = `
		SELECT id, trip_id, date, created_at, updated_at
		FROM days
		WHERE trip_id = @trip_id
		ORDER BY date`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	days := []domain.Day{}
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.ListByTripID: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTripID: rows: %w", err)
	}
	return days, nil
}

// Delete removes a day by primary key, scoped to its trip.
func (r *pgDayRepo) Delete(ctx context.Context, tripID, dayID uuid.UUID) error {
	const q = `DELETE FROM days WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": dayID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.DayRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DayRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDay maps a single database row into a domain.Day.
func scanDay(s scanner) (domain.Day, error) {
	var (
		d      domain.Day
		id     pgtype.UUID
		tripID pgtype.UUID
		date   pgtype.Date
	)

	err := s.Scan(&id, &tripID, &date, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Day{}, domain.ErrNotFound
		}
		return domain.Day{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Date = date.Time
	return d, nil
}
