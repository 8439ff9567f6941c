package search

// nearbyAirports maps an airport or metro code to its nearby alternates.
var nearbyAirports = map[string][]string{
	"GRU": {"CGH", "VCP"},
	"GIG": {"SDU"},
	"MAD": {"MAD"},
	"BCN": {"GRO", "REU"},
	"NYC": {"JFK", "EWR", "LGA"},
	"LON": {"LHR", "LGW", "STN", "LTN"},
	"PAR": {"CDG", "ORY"},
	"MIL": {"MXP", "LIN", "BGY"},
	"ROM": {"FCO", "CIA"},
}

// expandAirports returns the code itself followed by its known alternates.
func expandAirports(code string) []string {
	return append([]string{code}, nearbyAirports[code]...)
}
