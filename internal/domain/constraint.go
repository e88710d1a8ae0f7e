package domain

import "fmt"

// ConstraintKind discriminates the time-constraint union. The preference
// parser emits constraints once as structured values; the reconciler consumes
// them directly, so no constraint sentence is ever re-parsed.
type ConstraintKind int

const (
	// ConstraintStartAt pins the first activity of a day to a start time.
	ConstraintStartAt ConstraintKind = iota
	// ConstraintEndBy requires all activities to finish by a time.
	ConstraintEndBy
	// ConstraintMealAt anchors a specific meal to a clock time.
	ConstraintMealAt
)

// Meal identifies one of the four meal anchors the parser recognizes.
// Values are the Italian keywords as they appear in preference text.
type Meal string

const (
	MealBreakfast Meal = "colazione"
	MealLunch     Meal = "pranzo"
	MealDinner    Meal = "cena"
	MealAperitivo Meal = "aperitivo"
)

// Meals lists all known meals in canonical order.
var Meals = []Meal{MealBreakfast, MealLunch, MealDinner, MealAperitivo}

// Constraint is one extracted time directive. Meal is set only for
// ConstraintMealAt. Hour and Minute are a 24h wall-clock time on whichever
// day the constraint is applied to.
type Constraint struct {
	Kind   ConstraintKind
	Meal   Meal
	Hour   int
	Minute int
}

// Clock renders the constraint time as "HH:MM".
func (c Constraint) Clock() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// String renders the canonical constraint sentence used in prompts, e.g.
// "includi aperitivo alle 18:00".
func (c Constraint) String() string {
	switch c.Kind {
	case ConstraintStartAt:
		return fmt.Sprintf("la prima attività deve iniziare alle %s", c.Clock())
	case ConstraintEndBy:
		return fmt.Sprintf("le attività devono terminare entro le %s", c.Clock())
	case ConstraintMealAt:
		return fmt.Sprintf("includi %s alle %s", c.Meal, c.Clock())
	}
	return fmt.Sprintf("vincolo sconosciuto alle %s", c.Clock())
}

// ConstraintSet is the structured result of parsing one free-text preference
// string. It is built fresh on every generation call and never persisted.
type ConstraintSet struct {
	// SpecificDestination overrides the trip's main destination for this
	// generation batch. Empty when no override was detected.
	SpecificDestination string

	// TimeConstraints holds extracted directives in extraction order.
	// Order reflects pattern-template order, not priority.
	TimeConstraints []Constraint

	// SpecificRequests are free-text fragments the model should honor verbatim.
	SpecificRequests []string

	// DestinationsToVisit are all distinct city mentions, insertion-ordered.
	DestinationsToVisit []string

	// IsLimitedRequest is true when the user asked for only N activities
	// instead of a full day plan. RequestedActivityCount is then >= 1.
	IsLimitedRequest       bool
	RequestedActivityCount int
}

// StartAt returns the first start-at constraint, if any.
func (s ConstraintSet) StartAt() (Constraint, bool) {
	return s.firstOfKind(ConstraintStartAt)
}

// EndBy returns the first end-by constraint, if any.
func (s ConstraintSet) EndBy() (Constraint, bool) {
	return s.firstOfKind(ConstraintEndBy)
}

// MealAnchors returns all meal constraints in extraction order.
func (s ConstraintSet) MealAnchors() []Constraint {
	var out []Constraint
	for _, c := range s.TimeConstraints {
		if c.Kind == ConstraintMealAt {
			out = append(out, c)
		}
	}
	return out
}

func (s ConstraintSet) firstOfKind(k ConstraintKind) (Constraint, bool) {
	for _, c := range s.TimeConstraints {
		if c.Kind == k {
			return c, true
		}
	}
	return Constraint{}, false
}
