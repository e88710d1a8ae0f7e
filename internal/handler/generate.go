package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/service"
)

// generateRequest is the request body for activity generation.
type generateRequest struct {
	Preferences string      `json:"preferences"`
	DayIDs      []uuid.UUID `json:"day_ids"`
	Persist     bool        `json:"persist"`
}

// GenerateActivities handles POST /api/trips/{tripID}/activities/generate.
// On success it returns {"success": true, "activities": [...]}; failures use
// the standard {error, details} envelope.
func (s *Server) GenerateActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeRequestError(w, "invalid trip id")
		return
	}
	var body generateRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	activities, err := s.generator.Generate(r.Context(), service.GenerateInput{
		TripID:      tripID,
		Preferences: body.Preferences,
		DayIDs:      body.DayIDs,
		Persist:     body.Persist,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"activities": activities,
	})
}
