// Package reconcile turns a raw generative-model response into a validated,
// conflict-free activity list.
//
// The pipeline has two stages. Parse extracts and repairs the model's JSON
// under a repair policy: missing fields are backfilled (or, in strict mode,
// rejected) and bare clock strings are anchored to their day's date. Adjust
// then sorts the activities, applies the extracted time constraints, and
// cascades start times so no two same-day activities overlap.
//
// Adjust is idempotent: running it over its own output with the same
// constraints changes nothing.
package reconcile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// morningStart is the backfill start time for an activity at index 0.
const morningStartHour = 9

// slotCycle spaces backfilled start times: index i starts at
// 09:00 + (i % slotCycle) * slotStep.
const (
	slotCycle = 4
	slotStep  = 2 * time.Hour
)

// Reconciler validates, repairs, and time-adjusts generated activity lists.
type Reconciler struct {
	policy domain.RepairPolicy
	logger *slog.Logger
}

// New constructs a Reconciler. A nil logger falls back to slog.Default().
func New(policy domain.RepairPolicy, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{policy: policy, logger: logger}
}

// Reconcile runs the full pipeline over one raw model response.
// days must be non-empty; constraints come straight from the preference
// parser. JSON failures wrap domain.ErrParse; in strict mode, incomplete
// activities wrap domain.ErrValidation. Time adjustments never fail.
func (r *Reconciler) Reconcile(raw string, days []domain.Day, constraints domain.ConstraintSet) ([]domain.Activity, error) {
	activities, err := r.Parse(raw, days)
	if err != nil {
		return nil, err
	}
	return r.Adjust(activities, constraints), nil
}

// rawActivity is the wire shape of one model-produced activity. All fields
// are optional at this stage; Parse repairs the holes.
type rawActivity struct {
	DayID     string   `json:"day_id"`
	DayDate   string   `json:"day_date"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Location  string   `json:"location"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Priority  *int     `json:"priority"`
	Cost      *float64 `json:"cost"`
	Currency  string   `json:"currency"`
	Notes     string   `json:"notes"`
	Status    string   `json:"status"`
}

type modelResponse struct {
	Activities *[]rawActivity `json:"activities"`
}

// Parse extracts the JSON payload from raw and repairs each activity per the
// policy. Activities referencing an unknown day are reassigned to the first
// known day.
func (r *Reconciler) Parse(raw string, days []domain.Day) ([]domain.Activity, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("reconcile.Reconciler.Parse: %w: no days to schedule into", domain.ErrValidation)
	}

	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp modelResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, fmt.Errorf("reconcile.Reconciler.Parse: %w: %v", domain.ErrParse, err)
	}
	if resp.Activities == nil {
		return nil, fmt.Errorf("reconcile.Reconciler.Parse: %w: missing activities array", domain.ErrParse)
	}

	dayByID := make(map[uuid.UUID]domain.Day, len(days))
	for _, d := range days {
		dayByID[d.ID] = d
	}

	activities := make([]domain.Activity, 0, len(*resp.Activities))
	for i, ra := range *resp.Activities {
		act, err := r.repair(ra, i, days, dayByID)
		if err != nil {
			return nil, err
		}
		activities = append(activities, act)
	}
	return activities, nil
}

// repair fills the holes in one raw activity, or rejects it in strict mode.
func (r *Reconciler) repair(ra rawActivity, index int, days []domain.Day, dayByID map[uuid.UUID]domain.Day) (domain.Activity, error) {
	day := days[0]
	if id, err := uuid.Parse(ra.DayID); err == nil {
		if d, ok := dayByID[id]; ok {
			day = d
		} else if r.policy.Strict {
			return domain.Activity{}, fmt.Errorf("reconcile: activity %d: %w: unknown day_id %s", index, domain.ErrValidation, ra.DayID)
		}
	} else if r.policy.Strict {
		return domain.Activity{}, fmt.Errorf("reconcile: activity %d: %w: missing day_id", index, domain.ErrValidation)
	}

	if r.policy.Strict {
		var missing []string
		if strings.TrimSpace(ra.Name) == "" {
			missing = append(missing, "name")
		}
		if strings.TrimSpace(ra.StartTime) == "" {
			missing = append(missing, "start_time")
		}
		if strings.TrimSpace(ra.EndTime) == "" {
			missing = append(missing, "end_time")
		}
		if len(missing) > 0 {
			return domain.Activity{}, fmt.Errorf("reconcile: activity %d: %w: missing %s", index, domain.ErrValidation, strings.Join(missing, ", "))
		}
	}

	act := domain.Activity{
		DayID:    day.ID,
		DayDate:  day.Date,
		Name:     strings.TrimSpace(ra.Name),
		Type:     strings.TrimSpace(ra.Type),
		Location: strings.TrimSpace(ra.Location),
		Currency: strings.TrimSpace(ra.Currency),
		Notes:    strings.TrimSpace(ra.Notes),
		Status:   strings.TrimSpace(ra.Status),
		Priority: domain.DefaultPriority,
	}
	if act.Name == "" {
		act.Name = fmt.Sprintf("Attività %d", index+1)
	}
	if act.Type == "" {
		act.Type = "sightseeing"
	}
	if act.Location == "" {
		act.Location = "Da definire"
	}
	if act.Notes == "" {
		act.Notes = defaultNotes(act.Type)
	}
	if act.Status == "" {
		act.Status = domain.StatusPlanned
	}
	if act.Currency == "" {
		act.Currency = "EUR"
	}
	if ra.Priority != nil && *ra.Priority >= 1 && *ra.Priority <= 3 {
		act.Priority = *ra.Priority
	}
	if ra.Cost != nil && *ra.Cost >= 0 {
		act.Cost = *ra.Cost
	}

	start, startOK := parseClock(ra.StartTime, day.Date)
	end, endOK := parseClock(ra.EndTime, day.Date)
	switch {
	case !startOK:
		// Index-derived backfill: 09:00, 11:00, 13:00, 15:00, then wrap.
		start = day.Date.Add(time.Duration(morningStartHour)*time.Hour + time.Duration(index%slotCycle)*slotStep)
		end = start.Add(r.policy.DefaultDuration)
	case !endOK:
		end = start.Add(r.policy.DefaultDuration)
	}
	if !end.After(start) {
		end = start.Add(r.policy.DefaultDuration)
	}
	act.StartTime = start
	act.EndTime = end

	return act, nil
}

// Adjust sorts activities by start time and resolves each day's schedule:
// the day's first activity not claimed by a meal anchor honors any start-at
// constraint, overlapping activities are cascaded apart by the policy's
// buffer, and meal anchors pull their matching activity to the requested
// time. Input order is not preserved; input values are not mutated.
func (r *Reconciler) Adjust(activities []domain.Activity, cs domain.ConstraintSet) []domain.Activity {
	out := make([]domain.Activity, len(activities))
	copy(out, activities)

	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })

	startAt, hasStartAt := cs.StartAt()
	meals := cs.MealAnchors()

	for _, group := range groupByDay(out) {
		if hasStartAt {
			if first := firstUnanchored(group, meals); first != nil {
				dur := first.Duration()
				first.StartTime = at(first.DayDate, startAt.Hour, startAt.Minute)
				first.EndTime = first.StartTime.Add(dur)
			}
		}
		r.cascade(group)

		if len(meals) > 0 {
			for _, meal := range meals {
				r.applyMealAnchor(group, meal)
			}
			sort.SliceStable(group, func(i, j int) bool { return group[i].StartTime.Before(group[j].StartTime) })
			r.cascade(group)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

// firstUnanchored returns the day's first activity that no meal anchor
// claims. The start-at shift never moves a meal-anchored activity; the
// anchor decides its time.
func firstUnanchored(day []domain.Activity, meals []domain.Constraint) *domain.Activity {
	for i := range day {
		if !claimedByMeal(day[i], meals) {
			return &day[i]
		}
	}
	return nil
}

func claimedByMeal(a domain.Activity, meals []domain.Constraint) bool {
	for _, m := range meals {
		if matchesMeal(a, m.Meal) {
			return true
		}
	}
	return false
}

// groupByDay splits a start-sorted slice into per-day subslices that share
// the backing array, so in-place edits flow back to the caller's slice.
func groupByDay(sorted []domain.Activity) [][]domain.Activity {
	var groups [][]domain.Activity
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || !sameDate(sorted[i].DayDate, sorted[start].DayDate) {
			groups = append(groups, sorted[start:i:i])
			start = i
		}
	}
	return groups
}

// cascade pushes every activity that starts at or before its predecessor's
// end to predecessor end + buffer, preserving durations. Times are clamped
// so nothing runs past the end of its day.
func (r *Reconciler) cascade(day []domain.Activity) {
	if len(day) > 0 {
		r.clampToDay(&day[0])
	}
	for i := 1; i < len(day); i++ {
		prev := day[i-1]
		cur := &day[i]
		if !cur.StartTime.After(prev.EndTime) {
			dur := cur.Duration()
			cur.StartTime = prev.EndTime.Add(r.policy.OverlapBuffer)
			cur.EndTime = cur.StartTime.Add(dur)
		}
		r.clampToDay(cur)
	}
}

// clampToDay truncates an activity that a cascade pushed past 23:59 of its
// day. Activities are pinned to their day's calendar date, so rolling into
// the next day is never allowed.
func (r *Reconciler) clampToDay(a *domain.Activity) {
	dayEnd := at(a.DayDate, 23, 59)
	if !a.EndTime.After(dayEnd) {
		return
	}
	r.logger.Warn("activity truncated at end of day",
		"activity", a.Name,
		"day", a.DayDate.Format("2006-01-02"),
	)
	a.EndTime = dayEnd
	if !a.StartTime.Before(a.EndTime) {
		a.StartTime = a.EndTime.Add(-time.Minute)
	}
}

// applyMealAnchor moves the day's matching meal activity to the anchored
// time, preserving its duration. When no activity matches, the anchor is
// logged and skipped — no activity is synthesized.
func (r *Reconciler) applyMealAnchor(day []domain.Activity, anchor domain.Constraint) {
	for i := range day {
		if !matchesMeal(day[i], anchor.Meal) {
			continue
		}
		dur := day[i].Duration()
		day[i].StartTime = at(day[i].DayDate, anchor.Hour, anchor.Minute)
		day[i].EndTime = day[i].StartTime.Add(dur)
		return
	}
	if len(day) > 0 {
		r.logger.Warn("no activity matches meal constraint",
			"meal", string(anchor.Meal),
			"time", anchor.Clock(),
			"day", day[0].DayDate.Format("2006-01-02"),
		)
	}
}

// matchesMeal reports whether an activity is the one a meal anchor refers
// to: its name mentions the meal, or it is a food activity whose time slot
// implies that meal.
func matchesMeal(a domain.Activity, meal domain.Meal) bool {
	if strings.Contains(strings.ToLower(a.Name), string(meal)) {
		return true
	}
	return a.Type == "food" && mealCategory(a) == meal
}

// mealCategory infers which meal a food activity is from its start hour.
func mealCategory(a domain.Activity) domain.Meal {
	switch h := a.StartTime.Hour(); {
	case h < 11:
		return domain.MealBreakfast
	case h < 15:
		return domain.MealLunch
	case h < 19:
		return domain.MealAperitivo
	default:
		return domain.MealDinner
	}
}

// clockLayouts are accepted time formats, tried in order. Full timestamps
// are re-anchored to the activity's day date; only the clock part survives.
var clockLayouts = []string{
	"15:04",
	"15.04",
	"15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// parseClock parses a time string and anchors it to day's calendar date.
func parseClock(s string, day time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return at(day, t.Hour(), t.Minute()), true
	}
	return time.Time{}, false
}

// at returns the given wall-clock time on day's calendar date.
func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// activityNotes are the type-specific defaults used when the model returns an
// activity with blank notes.
var activityNotes = map[string]string{
	"sightseeing": "Verifica gli orari di apertura in anticipo.",
	"food":        "Consigliata la prenotazione.",
	"culture":     "Controlla la disponibilità dei biglietti online.",
	"nature":      "Porta scarpe comode e acqua.",
	"shopping":    "Molti negozi chiudono nella pausa pranzo.",
	"transport":   "Convalida il biglietto prima di salire.",
}

func defaultNotes(activityType string) string {
	if n, ok := activityNotes[activityType]; ok {
		return n
	}
	return "Da confermare sul posto."
}
