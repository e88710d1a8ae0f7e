package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// activityRequest is the request body for activity create and update.
// Times are RFC 3339 timestamps on the parent day's date.
type activityRequest struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Priority  int       `json:"priority"`
	Cost      float64   `json:"cost"`
	Currency  string    `json:"currency"`
	Notes     string    `json:"notes"`
	Status    string    `json:"status"`
}

func (b activityRequest) toDomain(dayID uuid.UUID) domain.Activity {
	return domain.Activity{
		DayID:     dayID,
		Name:      b.Name,
		Type:      b.Type,
		Location:  b.Location,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Priority:  b.Priority,
		Cost:      b.Cost,
		Currency:  b.Currency,
		Notes:     b.Notes,
		Status:    b.Status,
	}
}

// CreateActivity handles POST /api/days/{dayID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	dayID, ok := pathUUID(r, "dayID")
	if !ok {
		writeRequestError(w, "invalid day id")
		return
	}
	var body activityRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	created, err := s.activities.Create(r.Context(), body.toDomain(dayID))
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListActivities handles GET /api/days/{dayID}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	dayID, ok := pathUUID(r, "dayID")
	if !ok {
		writeRequestError(w, "invalid day id")
		return
	}
	acts, err := s.activities.ListByDayID(r.Context(), dayID)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"data": acts})
}

// GetActivity handles GET /api/days/{dayID}/activities/{activityID}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	dayID, actID, ok := activityPath(w, r)
	if !ok {
		return
	}
	act, err := s.activities.GetByID(r.Context(), dayID, actID)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, act)
}

// UpdateActivity handles PUT /api/days/{dayID}/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	dayID, actID, ok := activityPath(w, r)
	if !ok {
		return
	}
	var body activityRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	act := body.toDomain(dayID)
	act.ID = actID

	updated, err := s.activities.Update(r.Context(), act)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteActivity handles DELETE /api/days/{dayID}/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	dayID, actID, ok := activityPath(w, r)
	if !ok {
		return
	}
	if err := s.activities.Delete(r.Context(), dayID, actID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// activityPath parses the day and activity IDs from the URL, writing the
// error response itself on failure.
func activityPath(w http.ResponseWriter, r *http.Request) (dayID, actID uuid.UUID, ok bool) {
	dayID, ok = pathUUID(r, "dayID")
	if !ok {
		writeRequestError(w, "invalid day id")
		return uuid.Nil, uuid.Nil, false
	}
	actID, ok = pathUUID(r, "activityID")
	if !ok {
		writeRequestError(w, "invalid activity id")
		return uuid.Nil, uuid.Nil, false
	}
	return dayID, actID, true
}
