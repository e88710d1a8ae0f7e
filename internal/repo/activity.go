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

// ActivityRepo defines the persistence operations for day activities.
type ActivityRepo interface {
	// Create inserts a new activity under a day.
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// CreateBatch inserts all activities in order and returns the persisted
	// records. Used by the generation flow to store a reconciled batch.
	CreateBatch(ctx context.Context, acts []domain.Activity) ([]domain.Activity, error)

	// GetByID retrieves a single activity by ID, scoped to the given day.
	// Returns domain.ErrNotFound if no activity with that ID exists under that day.
	GetByID(ctx context.Context, dayID, actID uuid.UUID) (domain.Activity, error)

	// ListByDayID returns all activities for a day ordered by start_time ascending.
	ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error)

	// ListByTripID returns all activities across a trip's days, ordered by
	// day date then start_time. Used by the itinerary export.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity and returns the
	// updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given day.
	Delete(ctx context.Context, dayID, actID uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `a.id, a.day_id, d.date, a.name, a.type, a.location,
		a.start_time, a.end_time, a.priority, a.cost, a.currency, a.notes, a.status,
		a.created_at, a.updated_at`

const insertActivity = `
		INSERT INTO activities (day_id, name, type, location, start_time, end_time,
		                        priority, cost, currency, notes, status)
		VALUES (@day_id, @name, @type, @location, @start_time, @end_time,
		        @priority, @cost, @currency, @notes, @status)
		RETURNING id, day_id, name, type, location, start_time, end_time,
		          priority, cost, currency, notes, status, created_at, updated_at`

// Create inserts a new activity row and returns the full persisted record.
func (r *pgActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	row := r.db.QueryRow(ctx, insertActivity, activityArgs(act))
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	result.DayDate = act.DayDate
	return result, nil
}

// CreateBatch inserts the activities one by one in input order.
// The caller is expected to run this inside a transaction when atomicity
// matters; pass a pgx.Tx as the repo's db for that.
func (r *pgActivityRepo) CreateBatch(ctx context.Context, acts []domain.Activity) ([]domain.Activity, error) {
	out := make([]domain.Activity, 0, len(acts))
	for i, act := range acts {
		created, err := r.Create(ctx, act)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.CreateBatch: activity %d: %w", i, err)
		}
		out = append(out, created)
	}
	return out, nil
}

// GetByID retrieves an activity by primary key, scoped to its day.
func (r *pgActivityRepo) GetByID(ctx context.Context, dayID, actID uuid.UUID) (domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities a
		JOIN days d ON d.id = a.day_id
		WHERE a.id = @id AND a.day_id = @day_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": actID, "day_id": dayID})
	result, err := scanActivityWithDate(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByDayID returns all activities for a day ordered by start_time.
func (r *pgActivityRepo) ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities a
		JOIN days d ON d.id = a.day_id
		WHERE a.day_id = @day_id
		ORDER BY a.start_time`

	return r.list(ctx, q, pgx.NamedArgs{"day_id": dayID}, "ListByDayID")
}

// ListByTripID returns all activities across a trip ordered by day then time.
func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities a
		JOIN days d ON d.id = a.day_id
		WHERE d.trip_id = @trip_id
		ORDER BY d.date, a.start_time`

	return r.list(ctx, q, pgx.NamedArgs{"trip_id": tripID}, "ListByTripID")
}

func (r *pgActivityRepo) list(ctx context.Context, q string, args pgx.NamedArgs, op string) ([]domain.Activity, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.%s: %w", op, err)
	}
	defer rows.Close()

	acts := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivityWithDate(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.%s: scan: %w", op, err)
		}
		acts = append(acts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.%s: rows: %w", op, err)
	}
	return acts, nil
}

// Update overwrites the mutable fields of an activity.
func (r *pgActivityRepo) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET name       = @name,
		    type       = @type,
		    location   = @location,
		    start_time = @start_time,
		    end_time   = @end_time,
		    priority   = @priority,
		    cost       = @cost,
		    currency   = @currency,
		    notes      = @notes,
		    status     = @status,
		    updated_at = now()
		WHERE id = @id AND day_id = @day_id
		RETURNING id, day_id, name, type, location, start_time, end_time,
		          priority, cost, currency, notes, status, created_at, updated_at`

	args := activityArgs(act)
	args["id"] = act.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	result.DayDate = act.DayDate
	return result, nil
}

// Delete removes an activity by primary key, scoped to its day.
func (r *pgActivityRepo) Delete(ctx context.Context, dayID, actID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND day_id = @day_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": actID, "day_id": dayID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func activityArgs(act domain.Activity) pgx.NamedArgs {
	return pgx.NamedArgs{
		"day_id":     act.DayID,
		"name":       act.Name,
		"type":       act.Type,
		"location":   act.Location,
		"start_time": act.StartTime,
		"end_time":   act.EndTime,
		"priority":   act.Priority,
		"cost":       act.Cost,
		"currency":   act.Currency,
		"notes":      act.Notes,
		"status":     act.Status,
	}
}

// scanActivity maps a row without the joined day date (INSERT/UPDATE RETURNING).
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a     domain.Activity
		id    pgtype.UUID
		dayID pgtype.UUID
	)

	err := s.Scan(&id, &dayID, &a.Name, &a.Type, &a.Location, &a.StartTime, &a.EndTime,
		&a.Priority, &a.Cost, &a.Currency, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.DayID = uuid.UUID(dayID.Bytes)
	return a, nil
}

// scanActivityWithDate maps a row that includes the joined day date.
func scanActivityWithDate(s scanner) (domain.Activity, error) {
	var (
		a     domain.Activity
		id    pgtype.UUID
		dayID pgtype.UUID
		date  pgtype.Date
	)

	err := s.Scan(&id, &dayID, &date, &a.Name, &a.Type, &a.Location, &a.StartTime, &a.EndTime,
		&a.Priority, &a.Cost, &a.Currency, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.DayID = uuid.UUID(dayID.Bytes)
	a.DayDate = date.Time
	return a, nil
}
