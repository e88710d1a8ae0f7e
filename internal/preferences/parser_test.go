package preferences_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbellini/viaggio/backend/internal/domain"
	"github.com/pbellini/viaggio/backend/internal/preferences"
)

func TestParse_BlankInputYieldsZeroSet(t *testing.T) {
	cs := preferences.Parse("   ", "Roma", nil)

	assert.Empty(t, cs.SpecificDestination)
	assert.Empty(t, cs.TimeConstraints)
	assert.Empty(t, cs.SpecificRequests)
	assert.Empty(t, cs.DestinationsToVisit)
	assert.False(t, cs.IsLimitedRequest)
}

func TestParse_SpecificDestinationDiffersFromMain(t *testing.T) {
	cs := preferences.Parse("vorrei visitare Firenze", "Roma", nil)

	assert.Equal(t, "Firenze", cs.SpecificDestination)
	assert.Contains(t, cs.DestinationsToVisit, "Firenze")
}

func TestParse_MainDestinationIsNotSpecific(t *testing.T) {
	cs := preferences.Parse("una giornata a roma", "Roma", nil)

	assert.Empty(t, cs.SpecificDestination)
	assert.Contains(t, cs.DestinationsToVisit, "Roma")
}

func TestParse_TripDestinationsExtendGazetteer(t *testing.T) {
	// "chamonix" is not in the Italian gazetteer; the trip's own
	// destinations make it recognizable.
	cs := preferences.Parse("andare a chamonix di mattina", "Ginevra", []string{"Chamonix"})

	assert.Equal(t, "Chamonix", cs.SpecificDestination)
}

func TestParse_MultipleDestinationsKeepOrder(t *testing.T) {
	cs := preferences.Parse("visitare pisa e lucca", "Firenze", nil)

	require.Len(t, cs.DestinationsToVisit, 2)
	assert.Equal(t, "Pisa", cs.SpecificDestination)
	assert.Equal(t, []string{"Pisa", "Lucca"}, cs.DestinationsToVisit)
}

func TestParse_AperitivoConstraint(t *testing.T) {
	cs := preferences.Parse("un aperitivo alle 18:00 con vista", "Milano", nil)

	require.NotEmpty(t, cs.TimeConstraints)
	found := false
	for _, c := range cs.TimeConstraints {
		if c.Kind == domain.ConstraintMealAt && c.Meal == domain.MealAperitivo {
			found = true
			assert.Equal(t, 18, c.Hour)
			assert.Equal(t, 0, c.Minute)
			assert.Contains(t, c.String(), "aperitivo alle 18:00")
		}
	}
	assert.True(t, found, "expected an aperitivo meal anchor")
}

func TestParse_BreakfastWithLimitedRequest(t *testing.T) {
	cs := preferences.Parse("colazione alle 9 di mattina, solo un'attività", "Roma", nil)

	assert.True(t, cs.IsLimitedRequest)
	assert.Equal(t, 1, cs.RequestedActivityCount)

	require.NotEmpty(t, cs.TimeConstraints)
	c := cs.TimeConstraints[0]
	assert.Equal(t, domain.ConstraintMealAt, c.Kind)
	assert.Equal(t, domain.MealBreakfast, c.Meal)
	assert.Contains(t, c.String(), "colazione alle 09:00")
}

func TestParse_EndByConstraint(t *testing.T) {
	cs := preferences.Parse("vorrei finire tutto entro le 18", "Roma", nil)

	c, ok := cs.EndBy()
	require.True(t, ok)
	assert.Equal(t, 18, c.Hour)
}

func TestParse_StartAtConstraint(t *testing.T) {
	cs := preferences.Parse("iniziamo alle 9:30", "Roma", nil)

	c, ok := cs.StartAt()
	require.True(t, ok)
	assert.Equal(t, 9, c.Hour)
	assert.Equal(t, 30, c.Minute)
}

func TestParse_PMShiftWithSera(t *testing.T) {
	cs := preferences.Parse("cena alle 8 di sera", "Roma", nil)

	require.NotEmpty(t, cs.TimeConstraints)
	assert.Equal(t, 20, cs.TimeConstraints[0].Hour)
}

func TestParse_NoPMShiftWithoutContext(t *testing.T) {
	cs := preferences.Parse("pranzo alle 13, aperitivo poi cena insieme alle tre attività preferite", "Roma", nil)

	require.NotEmpty(t, cs.TimeConstraints)
	assert.Equal(t, 13, cs.TimeConstraints[0].Hour)
}

func TestParse_TemplateOrderNotTextOrder(t *testing.T) {
	// The meal template runs after the start-at template, so the start-at
	// constraint is emitted first even though "cena" appears first in text.
	cs := preferences.Parse("cena alle 20:00 e dalle 9 in giro per musei", "Roma", nil)

	require.Len(t, cs.TimeConstraints, 2)
	assert.Equal(t, domain.ConstraintStartAt, cs.TimeConstraints[0].Kind)
	assert.Equal(t, domain.ConstraintMealAt, cs.TimeConstraints[1].Kind)
}

func TestParse_SpecificRequestsFromVerbs(t *testing.T) {
	cs := preferences.Parse("vorrei un giro in gondola, includi una degustazione di vini", "Venezia", nil)

	require.Len(t, cs.SpecificRequests, 2)
	assert.Equal(t, "un giro in gondola", cs.SpecificRequests[0])
	assert.Equal(t, "una degustazione di vini", cs.SpecificRequests[1])
}

func TestParse_WholeTextFallbackRequest(t *testing.T) {
	text := "qualcosa di tranquillo lontano dalla folla"
	cs := preferences.Parse(text, "Roma", nil)

	require.Len(t, cs.SpecificRequests, 1)
	assert.Equal(t, text, cs.SpecificRequests[0])
}

func TestParse_ExplicitActivityCount(t *testing.T) {
	cs := preferences.Parse("genera 3 attività per domani", "Roma", nil)

	assert.True(t, cs.IsLimitedRequest)
	assert.Equal(t, 3, cs.RequestedActivityCount)
}

func TestParse_OnlyFragmentClauseCount(t *testing.T) {
	cs := preferences.Parse("solo il museo e una passeggiata", "Roma", nil)

	assert.True(t, cs.IsLimitedRequest)
	assert.Equal(t, 2, cs.RequestedActivityCount)
}

func TestParse_BareMealIsImplicitSingleActivity(t *testing.T) {
	cs := preferences.Parse("cena alle 20:00", "Roma", nil)

	assert.True(t, cs.IsLimitedRequest)
	assert.Equal(t, 1, cs.RequestedActivityCount)
}

func TestParse_FullPlanIsNotLimited(t *testing.T) {
	cs := preferences.Parse("un itinerario completo con musei, parchi e quartieri storici", "Roma", nil)

	assert.False(t, cs.IsLimitedRequest)
}
