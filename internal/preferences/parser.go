// Package preferences converts a free-text Italian preference string into a
// structured constraint set for itinerary generation.
//
// Parsing is pattern-matching over fixed templates, not NLU: unmatched text
// is skipped silently and Parse never fails. An empty or blank input yields
// the zero-value constraint set.
package preferences

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// cityPatterns are preposition-anchored templates for city candidates.
// Each pattern captures up to two lowercase words after the anchor; the
// capture (or its first word) must also appear in the gazetteer to count.
var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|\s)a\s+([a-zàèéìíòóù']+(?:\s[a-zàèéìíòóù']+)?)`),
	regexp.MustCompile(`(?:^|\s)in\s+([a-zàèéìíòóù']+(?:\s[a-zàèéìíòóù']+)?)`),
	regexp.MustCompile(`(?:^|\s)per\s+([a-zàèéìíòóù']+(?:\s[a-zàèéìíòóù']+)?)`),
	regexp.MustCompile(`visitare\s+([a-zàèéìíòóù']+(?:\s[a-zàèéìíòóù']+)?)`),
	regexp.MustCompile(`andare\s+(?:a|in)\s+([a-zàèéìíòóù']+(?:\s[a-zàèéìíòóù']+)?)`),
}

// timeTemplate binds one regex to the constraint it emits.
// Templates run in slice order, and matches are emitted in that order
// regardless of where they appear in the text.
type timeTemplate struct {
	re   *regexp.Regexp
	kind domain.ConstraintKind
	meal domain.Meal
}

var timeTemplates = []timeTemplate{
	{re: regexp.MustCompile(`entro\s+le\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`), kind: domain.ConstraintEndBy},
	{re: regexp.MustCompile(`prima\s+delle\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`), kind: domain.ConstraintEndBy},
	{re: regexp.MustCompile(`non\s+dopo\s+le\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`), kind: domain.ConstraintEndBy},
	{re: regexp.MustCompile(`dalle\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`), kind: domain.ConstraintStartAt},
	{re: regexp.MustCompile(`inizi\w*\s+alle\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`), kind: domain.ConstraintStartAt},
	{re: regexp.MustCompile(`colazione\s+alle\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`), kind: domain.ConstraintMealAt, meal: domain.MealBreakfast},
	{re: regexp.MustCompile(`pranzo\s+alle\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`), kind: domain.ConstraintMealAt, meal: domain.MealLunch},
	{re: regexp.MustCompile(`cena\s+alle\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`), kind: domain.ConstraintMealAt, meal: domain.MealDinner},
	{re: regexp.MustCompile(`aperitivo\s+alle\s+(?:ore\s+)?(\d{1,2})(?:[:.](\d{2}))?`), kind: domain.ConstraintMealAt, meal: domain.MealAperitivo},
}

// requestPatterns capture the clause following a desire/imperative verb,
// up to the next punctuation.
var requestPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:vorrei|voglio|desidero)\s+([^,.;!?]+)`),
	regexp.MustCompile(`(?:aggiungi|includi)\s+([^,.;!?]+)`),
}

var (
	explicitCountRe = regexp.MustCompile(`(\d{1,2})\s+attività`)
	onlyRe          = regexp.MustCompile(`(?:solo|solamente|soltanto|unicamente)\s+([^,.;!?]+)`)
	clauseSplitRe   = regexp.MustCompile(`\s+e\s+|,`)
)

// numberWords maps Italian count words to their value, for fragments like
// "solo due attività".
var numberWords = map[string]int{
	"un": 1, "una": 1, "un'attività": 1,
	"due": 2, "tre": 3, "quattro": 4, "cinque": 5, "sei": 6,
}

// Parse extracts a constraint set from one preference string.
// mainDestination is the trip's primary destination; tripDestinations are its
// secondary destinations, which widen the recognized-city gazetteer.
func Parse(text, mainDestination string, tripDestinations []string) domain.ConstraintSet {
	var cs domain.ConstraintSet

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return cs
	}
	lower := strings.ToLower(trimmed)

	parseCities(&cs, lower, mainDestination, tripDestinations)
	parseTimeConstraints(&cs, lower)
	parseSpecificRequests(&cs, lower, trimmed)
	parseLimitedRequest(&cs, lower)

	return cs
}

// parseCities runs the preposition-anchored patterns and a direct gazetteer
// scan. The first candidate distinct from the main destination becomes the
// specific destination; all distinct candidates become destinations to visit.
func parseCities(cs *domain.ConstraintSet, lower, mainDestination string, tripDestinations []string) {
	known := make(map[string]struct{}, len(cityIndex)+len(tripDestinations))
	for c := range cityIndex {
		known[c] = struct{}{}
	}
	for _, d := range tripDestinations {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			known[d] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	var candidates []string
	add := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		candidates = append(candidates, name)
	}

	for _, re := range cityPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			cand := strings.TrimSpace(m[1])
			if _, ok := known[cand]; ok {
				add(cand)
				continue
			}
			// The two-word capture may have swallowed a trailing word
			// ("a roma e dintorni"); retry with the first word alone.
			if first, _, cut := strings.Cut(cand, " "); cut {
				if _, ok := known[first]; ok {
					add(first)
				}
			}
		}
	}

	// Direct mentions without a preposition anchor ("weekend Firenze!").
	for _, city := range gazetteerCities {
		if strings.Contains(lower, city) {
			add(city)
		}
	}
	for _, d := range tripDestinations {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" && strings.Contains(lower, d) {
			add(d)
		}
	}

	mainLower := strings.ToLower(strings.TrimSpace(mainDestination))
	for _, cand := range candidates {
		cs.DestinationsToVisit = append(cs.DestinationsToVisit, capitalize(cand))
		if cs.SpecificDestination == "" && cand != mainLower {
			cs.SpecificDestination = capitalize(cand)
		}
	}
}

// parseTimeConstraints emits one constraint per template match, in template
// order. Hours below 12 are shifted to the afternoon when the text mentions
// "pomeriggio" or "sera".
func parseTimeConstraints(cs *domain.ConstraintSet, lower string) {
	pmContext := strings.Contains(lower, "pomeriggio") || strings.Contains(lower, "sera")

	for _, tmpl := range timeTemplates {
		for _, m := range tmpl.re.FindAllStringSubmatch(lower, -1) {
			hour, err := strconv.Atoi(m[1])
			if err != nil || hour > 23 {
				continue
			}
			minute := 0
			if m[2] != "" {
				minute, err = strconv.Atoi(m[2])
				if err != nil || minute > 59 {
					continue
				}
			}
			if pmContext && hour < 12 {
				hour += 12
			}
			cs.TimeConstraints = append(cs.TimeConstraints, domain.Constraint{
				Kind:   tmpl.kind,
				Meal:   tmpl.meal,
				Hour:   hour,
				Minute: minute,
			})
		}
	}
}

// parseSpecificRequests captures verb-anchored request clauses. When nothing
// matches, the entire preference string stands in as the sole request.
func parseSpecificRequests(cs *domain.ConstraintSet, lower, original string) {
	for _, re := range requestPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if req := strings.TrimSpace(m[1]); req != "" {
				cs.SpecificRequests = append(cs.SpecificRequests, req)
			}
		}
	}
	if len(cs.SpecificRequests) == 0 {
		cs.SpecificRequests = []string{original}
	}
}

// parseLimitedRequest detects "only N activities" style directives.
func parseLimitedRequest(cs *domain.ConstraintSet, lower string) {
	if m := explicitCountRe.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 {
			cs.IsLimitedRequest = true
			cs.RequestedActivityCount = n
			return
		}
	}

	if m := onlyRe.FindStringSubmatch(lower); m != nil {
		fragment := strings.TrimSpace(m[1])
		cs.IsLimitedRequest = true
		cs.RequestedActivityCount = countClauses(fragment)
		return
	}

	// Final pass: a bare singular meal mention ("cena alle 20") reads as an
	// implicit single-activity request when the text is short enough to be
	// about nothing else.
	mentions := 0
	for _, meal := range domain.Meals {
		if strings.Contains(lower, string(meal)) {
			mentions++
		}
	}
	if mentions == 1 && len(strings.Fields(lower)) <= 6 {
		cs.IsLimitedRequest = true
		cs.RequestedActivityCount = 1
	}
}

// countClauses estimates how many activities a "solo ..." fragment asks for:
// an Italian number word wins, otherwise "e"/comma-separated clauses are
// counted.
func countClauses(fragment string) int {
	if first, _, _ := strings.Cut(fragment, " "); first != "" {
		if n, ok := numberWords[first]; ok {
			return n
		}
	}
	count := 0
	for _, part := range clauseSplitRe.Split(fragment, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

// capitalize upper-cases the first letter of each word ("san gimignano" →
// "San Gimignano").
func capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
