package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// tripRequest is the request body for trip create and update.
type tripRequest struct {
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	TripType    string  `json:"trip_type"`
	Pace        string  `json:"pace"`
	Notes       string  `json:"notes"`
}

// pagination is the standard list-response metadata block.
type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := decodeTrip(w, r)
	if !ok {
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /api/trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"data":       trips,
		"pagination": pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetTrip handles GET /api/trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /api/trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	trip, ok := decodeTrip(w, r)
	if !ok {
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /api/trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddDestination handles POST /api/trips/{tripID}/destinations.
func (s *Server) AddDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	dest, err := s.trips.AddDestination(r.Context(), id, body.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dest)
}

// ListDestinations handles GET /api/trips/{tripID}/destinations.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	dests, err := s.trips.ListDestinations(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"data": dests})
}

// RemoveDestination handles DELETE /api/trips/{tripID}/destinations/{slug}.
func (s *Server) RemoveDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	if err := s.trips.RemoveDestination(r.Context(), id, chi.URLParam(r, "slug")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeTrip reads and converts a trip request body, writing the error
// response itself when the body is unusable.
func decodeTrip(w http.ResponseWriter, r *http.Request) (domain.Trip, bool) {
	var body tripRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return domain.Trip{}, false
	}

	start, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		writeRequestError(w, "start_date must be YYYY-MM-DD")
		return domain.Trip{}, false
	}
	trip := domain.Trip{
		Name:        body.Name,
		Destination: body.Destination,
		StartDate:   start,
		TripType:    body.TripType,
		Pace:        body.Pace,
		Notes:       body.Notes,
	}
	if body.EndDate != nil {
		end, err := time.Parse(dateLayout, *body.EndDate)
		if err != nil {
			writeRequestError(w, "end_date must be YYYY-MM-DD")
			return domain.Trip{}, false
		}
		trip.EndDate = &end
	}
	return trip, true
}
