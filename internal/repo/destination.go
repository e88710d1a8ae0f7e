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

// DestinationRepo defines the persistence operations for a trip's secondary
// destinations.
type DestinationRepo interface {
	// Upsert inserts a destination by slug under a trip, or returns the
	// existing row if the slug is already attached to that trip.
	Upsert(ctx context.Context, tripID uuid.UUID, name, slug string) (domain.Destination, error)

	// ListByTripID returns all destinations for a trip, ordered by slug.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)

	// Remove detaches a destination from a trip by slug.
	// Returns domain.ErrNotFound if the slug is not attached to the trip.
	Remove(ctx context.Context, tripID uuid.UUID, slug string) error
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

// Upsert inserts a destination or returns the existing row on slug conflict.
// The DO UPDATE SET trick forces the RETURNING clause to fire even when the
// conflict handler skips the insert — without it, RETURNING returns nothing
// on DO NOTHING conflicts.
func (r *pgDestinationRepo) Upsert(ctx context.Context, tripID uuid.UUID, name, slug string) (domain.Destination, error) {
	const q = `
		INSERT INTO destinations (trip_id, name, slug)
		VALUES (@trip_id, @name, @slug)
		ON CONFLICT (trip_id, slug) DO UPDATE SET slug = EXCLUDED.slug
		RETURNING id, trip_id, name, slug, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "name": name, "slug": slug})
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Upsert: %w", err)
	}
	return result, nil
}

// ListByTripID returns all destinations for a trip, ordered by slug.
func (r *pgDestinationRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	const q = `
		SELECT id, trip_id, name, slug, created_at
		FROM destinations
		WHERE trip_id = @trip_id
		ORDER BY slug`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	dests := []domain.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.ListByTripID: scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.ListByTripID: rows: %w", err)
	}
	return dests, nil
}

// Remove detaches a destination from a trip by slug.
func (r *pgDestinationRepo) Remove(ctx context.Context, tripID uuid.UUID, slug string) error {
	const q = `DELETE FROM destinations WHERE trip_id = @trip_id AND slug = @slug`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "slug": slug})
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DestinationRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDestination maps a single database row into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d      domain.Destination
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &d.Name, &d.Slug, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	return d, nil
}
