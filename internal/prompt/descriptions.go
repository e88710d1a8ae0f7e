package prompt

// tripTypeGuidance maps each trip type to the thematic guidance embedded in
// the generation prompt. Initialized once at process start, never mutated.
var tripTypeGuidance = map[string]string{
	"cultura":     "Privilegia musei, monumenti, siti storici e quartieri caratteristici.",
	"avventura":   "Privilegia escursioni, attività all'aperto e esperienze fuori dai percorsi turistici.",
	"relax":       "Mantieni un ritmo tranquillo con terme, passeggiate e lunghe pause.",
	"gastronomia": "Metti al centro mercati, degustazioni, cantine e ristoranti tipici.",
	"romantico":   "Scegli luoghi panoramici, cene intime e passeggiate al tramonto.",
	"famiglia":    "Scegli attività adatte ai bambini con spostamenti brevi e pause frequenti.",
	"natura":      "Privilegia parchi, giardini, sentieri e punti panoramici naturali.",
	"mare":        "Alterna spiagge, lungomare e borghi costieri.",
	"business":    "Mantieni le attività compatte, vicine al centro e a orari prevedibili.",
}

// paceGuidance maps each pacing level to its scheduling guidance.
var paceGuidance = map[string]string{
	"rilassato": "Programma al massimo 3 attività al giorno con ampie pause.",
	"moderato":  "Programma 4-5 attività al giorno con pause regolari.",
	"intenso":   "Programma 6-7 attività al giorno riducendo i tempi morti.",
	"completo":  "Riempi la giornata dalla mattina alla sera, pasti inclusi.",
}
