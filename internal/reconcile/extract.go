package reconcile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// fencedJSONRe matches the first ```json fenced block in a model response.
var fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)```")

// ExtractJSON pulls the JSON payload out of a raw model response.
// It prefers the first fenced ```json block; when no fence is present it
// falls back to the first balanced {...} span. Returns domain.ErrParse when
// neither is found.
func ExtractJSON(raw string) (string, error) {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	if span, ok := firstJSONObject(raw); ok {
		return span, nil
	}
	return "", fmt.Errorf("reconcile.ExtractJSON: %w: no JSON object in response", domain.ErrParse)
}

// firstJSONObject scans for the first balanced JSON object span.
func firstJSONObject(s string) (string, bool) {
	start := -1
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
