package service

import (
	"fmt"
	"strings"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// unsafeMarkers are substrings that get a free-text field rejected before any
// generation attempt: prompt-injection phrasing and markup that has no place
// in a travel preference.
var unsafeMarkers = []string{
	"ignore previous instructions",
	"ignora le istruzioni precedenti",
	"disregard the above",
	"system prompt",
	"<script",
	"javascript:",
	"data:text/html",
	"drop table",
	"'; --",
}

// checkSafeContent scans free-text fields for unsafe markers.
// Returns domain.ErrUnsafeContent naming the offending field on a hit.
func checkSafeContent(fields map[string]string) error {
	for name, value := range fields {
		lower := strings.ToLower(value)
		for _, marker := range unsafeMarkers {
			if strings.Contains(lower, marker) {
				return fmt.Errorf("field %s: %w", name, domain.ErrUnsafeContent)
			}
		}
	}
	return nil
}
