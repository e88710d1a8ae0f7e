package handler

import (
	"net/http"
	"time"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// CreateDay handles POST /api/trips/{tripID}/days.
func (s *Server) CreateDay(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	var body struct {
		Date string `json:"date"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		writeRequestError(w, "date must be YYYY-MM-DD")
		return
	}

	created, err := s.days.Create(r.Context(), domain.Day{TripID: tripID, Date: date})
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListDays handles GET /api/trips/{tripID}/days.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	days, err := s.days.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"data": days})
}

// DeleteDay handles DELETE /api/trips/{tripID}/days/{dayID}.
func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	dayID, ok := pathUUID(r, "dayID")
	if !ok {
		writeRequestError(w, "invalid day id")
		return
	}
	if err := s.days.Delete(r.Context(), tripID, dayID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
