// Package handler implements the HTTP handlers for the Viaggio API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddDestination(ctx context.Context, tripID uuid.UUID, name string) (domain.Destination, error)
	ListDestinations(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)
	RemoveDestination(ctx context.Context, tripID uuid.UUID, slug string) error
}

// DayServicer defines the business operations the day handlers depend on.
type DayServicer interface {
	Create(ctx context.Context, day domain.Day) (domain.Day, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)
	Delete(ctx context.Context, tripID, dayID uuid.UUID) error
}

// ActivityServicer defines the business operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, dayID, actID uuid.UUID) (domain.Activity, error)
	ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, act domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, dayID, actID uuid.UUID) error
}

// Generator runs one activity-generation attempt.
type Generator interface {
	Generate(ctx context.Context, in service.GenerateInput) ([]domain.Activity, error)
}

// Exporter assembles a trip's flat itinerary export.
type Exporter interface {
	Export(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)
}

// Server holds the dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips      TripServicer
	days       DayServicer
	activities ActivityServicer
	generator  Generator
	exporter   Exporter

	// generateLimit, when non-nil, wraps the generation endpoint only —
	// model calls are the expensive path.
	generateLimit func(http.Handler) http.Handler
}

// NewServer constructs the Server with all its dependencies.
// generateLimit may be nil to disable rate limiting.
func NewServer(trips TripServicer, days DayServicer, activities ActivityServicer, generator Generator, exporter Exporter, generateLimit func(http.Handler) http.Handler) *Server {
	return &Server{
		trips:         trips,
		days:          days,
		activities:    activities,
		generator:     generator,
		exporter:      exporter,
		generateLimit: generateLimit,
	}
}

// Routes builds the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.CreateTrip)
			r.Get("/", s.ListTrips)
			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Put("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)
				r.Get("/export", s.ExportTrip)

				r.Route("/destinations", func(r chi.Router) {
					r.Post("/", s.AddDestination)
					r.Get("/", s.ListDestinations)
					r.Delete("/{slug}", s.RemoveDestination)
				})

				r.Route("/days", func(r chi.Router) {
					r.Post("/", s.CreateDay)
					r.Get("/", s.ListDays)
					r.Delete("/{dayID}", s.DeleteDay)
				})

				gen := r
				if s.generateLimit != nil {
					gen = r.With(s.generateLimit)
				}
				gen.Post("/activities/generate", s.GenerateActivities)
			})
		})

		r.Route("/days/{dayID}/activities", func(r chi.Router) {
			r.Post("/", s.CreateActivity)
			r.Get("/", s.ListActivities)
			r.Route("/{activityID}", func(r chi.Router) {
				r.Get("/", s.GetActivity)
				r.Put("/", s.UpdateActivity)
				r.Delete("/", s.DeleteActivity)
			})
		})
	})

	return r
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// pathUUID parses the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

// queryInt parses an optional integer query parameter.
// Returns nil when the parameter is absent or malformed.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
