// Package prompt renders a constraint set, trip metadata, and day list into
// the instruction block sent to the external generative model.
//
// Build is deterministic and side-effect free: identical inputs produce the
// identical string. The output is plain text; whether the model honors the
// embedded format instructions is validated downstream by the reconciler.
package prompt

import (
	"fmt"
	"strings"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// Build assembles the full generation prompt for one trip.
func Build(trip domain.Trip, days []domain.Day, cs domain.ConstraintSet) string {
	destination := trip.Destination
	if cs.SpecificDestination != "" {
		destination = cs.SpecificDestination
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Sei un assistente di viaggio esperto. Genera attività per un itinerario a %s.\n\n", destination)

	fmt.Fprintf(&b, "Viaggio: %s\n", trip.Name)
	if guidance, ok := tripTypeGuidance[strings.ToLower(trip.TripType)]; ok {
		fmt.Fprintf(&b, "Tema del viaggio (%s): %s\n", strings.ToLower(trip.TripType), guidance)
	}
	if guidance, ok := paceGuidance[strings.ToLower(trip.Pace)]; ok {
		fmt.Fprintf(&b, "Ritmo (%s): %s\n", strings.ToLower(trip.Pace), guidance)
	}

	b.WriteString("\nGiorni da pianificare:\n")
	for i, d := range days {
		fmt.Fprintf(&b, "- Giorno %d: %s (day_id: %s)\n", i+1, d.Date.Format("2006-01-02"), d.ID)
	}

	if len(cs.DestinationsToVisit) > 0 {
		fmt.Fprintf(&b, "\nDestinazioni da toccare: %s\n", strings.Join(cs.DestinationsToVisit, ", "))
	}

	if len(cs.TimeConstraints) > 0 {
		b.WriteString("\nVincoli orari da rispettare:\n")
		for _, c := range cs.TimeConstraints {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	if len(cs.SpecificRequests) > 0 {
		b.WriteString("\nRichieste specifiche dell'utente:\n")
		for _, r := range cs.SpecificRequests {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	if cs.IsLimitedRequest {
		fmt.Fprintf(&b, "\nGenera SOLO %d attività in totale, non un programma completo.\n", cs.RequestedActivityCount)
	} else {
		b.WriteString("\nGenera un programma completo per ogni giorno elencato.\n")
	}

	b.WriteString(outputFormat)

	return b.String()
}

// outputFormat instructs the model to answer with a single fenced JSON
// object. The field list mirrors domain.Activity; the reconciler repairs any
// field the model omits anyway.
const outputFormat = `
Rispondi ESCLUSIVAMENTE con un blocco JSON in questo formato, senza testo aggiuntivo:

` + "```json" + `
{
  "activities": [
    {
      "day_id": "uuid del giorno",
      "day_date": "2006-01-02",
      "name": "nome attività",
      "type": "sightseeing|food|culture|nature|shopping|transport",
      "location": "luogo",
      "start_time": "09:00",
      "end_time": "10:30",
      "priority": 3,
      "cost": 0,
      "currency": "EUR",
      "notes": "consigli pratici"
    }
  ]
}
` + "```" + `
Ogni attività deve usare un day_id tra quelli elencati e orari nel formato HH:MM.
`
