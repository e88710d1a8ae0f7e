package preferences

// gazetteerCities is the static list of Italian city names the parser can
// recognize without any trip context. Order matters: direct-mention scanning
// walks this slice front to back, so extraction order is deterministic.
//
// This is a heuristic lookup, not NLU: a common word that happens to contain
// a city substring will be accepted as a city mention.
var gazetteerCities = []string{
	"roma",
	"milano",
	"napoli",
	"torino",
	"firenze",
	"venezia",
	"bologna",
	"genova",
	"palermo",
	"verona",
	"pisa",
	"siena",
	"bari",
	"catania",
	"cagliari",
	"trieste",
	"padova",
	"perugia",
	"rimini",
	"parma",
	"modena",
	"ravenna",
	"lucca",
	"bergamo",
	"como",
	"amalfi",
	"sorrento",
	"positano",
	"capri",
	"matera",
	"lecce",
	"taormina",
	"assisi",
	"orvieto",
	"ferrara",
	"mantova",
	"urbino",
	"cinque terre",
	"portofino",
	"san gimignano",
}

// cityIndex provides O(1) membership checks over gazetteerCities.
// Built once at process start and never mutated.
var cityIndex = func() map[string]struct{} {
	idx := make(map[string]struct{}, len(gazetteerCities))
	for _, c := range gazetteerCities {
		idx[c] = struct{}{}
	}
	return idx
}()
