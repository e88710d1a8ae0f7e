package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// errorResponse is the error envelope for all non-2xx responses.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// writeError maps a service-layer error onto an HTTP status and envelope.
// Unrecognized errors become an opaque 500 — their message may carry
// internals that do not belong on the wire.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", Details: unwrapMessage(err)})
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation_error", Details: unwrapMessage(err)})
	case errors.Is(err, domain.ErrUnsafeContent):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "unsafe_content", Details: "request contains content that cannot be processed"})
	case errors.Is(err, domain.ErrUpstream):
		respondJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream_error", Details: unwrapMessage(err)})
	case errors.Is(err, domain.ErrParse):
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "generation_failed", Details: unwrapMessage(err)})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
	}
}

// writeRequestError reports a malformed request rejected before reaching the
// service layer (bad body, bad path parameter).
func writeRequestError(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Details: message})
}

// unwrapMessage strips the "service.X.Method:" wrapping prefixes from an
// error chain, leaving the human-readable tail for the response body.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		idx := strings.Index(msg, ": ")
		if idx == -1 {
			return msg
		}
		prefix := msg[:idx]
		if strings.HasPrefix(prefix, "service.") || strings.HasPrefix(prefix, "repo.") ||
			strings.HasPrefix(prefix, "reconcile") || prefix == "validation error" {
			msg = msg[idx+2:]
			continue
		}
		return msg
	}
}
