package airports

// Airport is one entry in the local airport table, used as a fallback when
// the provider's location API is unavailable and for UI autocomplete.
type Airport struct {
	IATACode string   `json:"iataCode"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Country  string   `json:"country"`
	Aliases  []string `json:"-"`
}

// table is the built-in airport database. Aliases carry common search terms
// (local spellings, abbreviations) on top of name/city/country.
var table = []Airport{
	// Brazil
	{IATACode: "GRU", Name: "Aeroporto Internacional de São Paulo-Guarulhos", City: "São Paulo", Country: "Brasil", Aliases: []string{"guarulhos", "sao paulo", "sp"}},
	{IATACode: "CGH", Name: "Aeroporto de Congonhas", City: "São Paulo", Country: "Brasil", Aliases: []string{"congonhas", "sao paulo", "sp"}},
	{IATACode: "VCP", Name: "Aeroporto Internacional de Viracopos", City: "Campinas", Country: "Brasil", Aliases: []string{"viracopos", "campinas", "sp"}},
	{IATACode: "GIG", Name: "Aeroporto Internacional do Galeão", City: "Rio de Janeiro", Country: "Brasil", Aliases: []string{"galeao", "rio", "rj"}},
	{IATACode: "SDU", Name: "Aeroporto Santos Dumont", City: "Rio de Janeiro", Country: "Brasil", Aliases: []string{"santos dumont", "rio", "rj"}},
	{IATACode: "BSB", Name: "Aeroporto Internacional de Brasília", City: "Brasília", Country: "Brasil", Aliases: []string{"brasilia", "df"}},
	{IATACode: "CNF", Name: "Aeroporto Internacional de Confins", City: "Belo Horizonte", Country: "Brasil", Aliases: []string{"confins", "tancredo neves", "bh", "mg"}},
	{IATACode: "SSA", Name: "Aeroporto Internacional de Salvador", City: "Salvador", Country: "Brasil", Aliases: []string{"salvador", "bahia", "ba"}},
	{IATACode: "REC", Name: "Aeroporto Internacional do Recife", City: "Recife", Country: "Brasil", Aliases: []string{"recife", "pernambuco", "pe"}},
	{IATACode: "FOR", Name: "Aeroporto Internacional de Fortaleza", City: "Fortaleza", Country: "Brasil", Aliases: []string{"fortaleza", "ceara", "ce"}},
	{IATACode: "CWB", Name: "Aeroporto Internacional Afonso Pena", City: "Curitiba", Country: "Brasil", Aliases: []string{"curitiba", "parana", "pr"}},
	{IATACode: "POA", Name: "Aeroporto Internacional Salgado Filho", City: "Porto Alegre", Country: "Brasil", Aliases: []string{"porto alegre", "rs"}},
	{IATACode: "FLN", Name: "Aeroporto Internacional de Florianópolis", City: "Florianópolis", Country: "Brasil", Aliases: []string{"florianopolis", "floripa", "sc"}},
	{IATACode: "MAO", Name: "Aeroporto Internacional de Manaus", City: "Manaus", Country: "Brasil", Aliases: []string{"manaus", "amazonas", "am"}},
	{IATACode: "NAT", Name: "Aeroporto Internacional de Natal", City: "Natal", Country: "Brasil", Aliases: []string{"natal", "rn"}},
	{IATACode: "IGU", Name: "Aeroporto Internacional de Foz do Iguaçu", City: "Foz do Iguaçu", Country: "Brasil", Aliases: []string{"foz", "iguacu", "pr"}},

	// United States
	{IATACode: "JFK", Name: "John F Kennedy International Airport", City: "New York", Country: "Estados Unidos", Aliases: []string{"nova york", "new york", "ny", "nyc", "kennedy"}},
	{IATACode: "EWR", Name: "Newark Liberty International Airport", City: "Newark", Country: "Estados Unidos", Aliases: []string{"newark", "new jersey", "nj", "new york"}},
	{IATACode: "LGA", Name: "LaGuardia Airport", City: "New York", Country: "Estados Unidos", Aliases: []string{"laguardia", "new york", "nyc"}},
	{IATACode: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "Estados Unidos", Aliases: []string{"los angeles", "la", "california"}},
	{IATACode: "MIA", Name: "Miami International Airport", City: "Miami", Country: "Estados Unidos", Aliases: []string{"miami", "florida", "fl"}},
	{IATACode: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "Estados Unidos", Aliases: []string{"chicago", "ohare", "illinois"}},
	{IATACode: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "Estados Unidos", Aliases: []string{"san francisco", "sf", "california"}},
	{IATACode: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "Estados Unidos", Aliases: []string{"atlanta", "georgia"}},
	{IATACode: "BOS", Name: "Boston Logan International Airport", City: "Boston", Country: "Estados Unidos", Aliases: []string{"boston", "logan", "massachusetts"}},
	{IATACode: "MCO", Name: "Orlando International Airport", City: "Orlando", Country: "Estados Unidos", Aliases: []string{"orlando", "florida"}},

	// Europe
	{IATACode: "LHR", Name: "Heathrow Airport", City: "Londres", Country: "Reino Unido", Aliases: []string{"london", "londres", "heathrow", "uk", "inglaterra"}},
	{IATACode: "LGW", Name: "Gatwick Airport", City: "Londres", Country: "Reino Unido", Aliases: []string{"london", "londres", "gatwick", "uk"}},
	{IATACode: "STN", Name: "Stansted Airport", City: "Londres", Country: "Reino Unido", Aliases: []string{"london", "londres", "stansted", "uk"}},
	{IATACode: "LTN", Name: "Luton Airport", City: "Londres", Country: "Reino Unido", Aliases: []string{"london", "londres", "luton", "uk"}},
	{IATACode: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "França", Aliases: []string{"paris", "cdg", "charles de gaulle", "franca", "france"}},
	{IATACode: "ORY", Name: "Orly Airport", City: "Paris", Country: "França", Aliases: []string{"paris", "orly", "franca"}},
	{IATACode: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Alemanha", Aliases: []string{"frankfurt", "alemanha", "germany"}},
	{IATACode: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdã", Country: "Holanda", Aliases: []string{"amsterdam", "schiphol", "holanda", "netherlands"}},
	{IATACode: "MAD", Name: "Madrid-Barajas Adolfo Suárez Airport", City: "Madrid", Country: "Espanha", Aliases: []string{"madrid", "barajas", "espanha", "spain"}},
	{IATACode: "BCN", Name: "Barcelona-El Prat Airport", City: "Barcelona", Country: "Espanha", Aliases: []string{"barcelona", "el prat", "espanha"}},
	{IATACode: "GRO", Name: "Girona-Costa Brava Airport", City: "Girona", Country: "Espanha", Aliases: []string{"girona", "barcelona", "costa brava"}},
	{IATACode: "REU", Name: "Reus Airport", City: "Reus", Country: "Espanha", Aliases: []string{"reus", "barcelona", "tarragona"}},
	{IATACode: "LIS", Name: "Aeroporto Humberto Delgado", City: "Lisboa", Country: "Portugal", Aliases: []string{"lisboa", "lisbon", "portela"}},
	{IATACode: "FCO", Name: "Leonardo da Vinci-Fiumicino Airport", City: "Roma", Country: "Itália", Aliases: []string{"roma", "rome", "fiumicino", "italia"}},
	{IATACode: "CIA", Name: "Ciampino Airport", City: "Roma", Country: "Itália", Aliases: []string{"roma", "ciampino", "italia"}},
	{IATACode: "MXP", Name: "Milan Malpensa Airport", City: "Milão", Country: "Itália", Aliases: []string{"milao", "milan", "malpensa", "italia"}},
	{IATACode: "LIN", Name: "Milan Linate Airport", City: "Milão", Country: "Itália", Aliases: []string{"milao", "milan", "linate", "italia"}},
	{IATACode: "BGY", Name: "Milan Bergamo Airport", City: "Bergamo", Country: "Itália", Aliases: []string{"bergamo", "milao", "milan", "orio al serio", "italia"}},
}

// ByCode returns the airport for a IATA code, if known.
func ByCode(code string) (Airport, bool) {
	for _, a := range table {
		if a.IATACode == code {
			return a, true
		}
	}
	return Airport{}, false
}

// All returns the full airport table.
func All() []Airport {
	return table
}
