package amadeus

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	State       string `json:"state"`
}

// offersResponse is the raw flight-offers search payload.
type offersResponse struct {
	Data []rawOffer `json:"data"`
}

type rawOffer struct {
	ID                     string         `json:"id"`
	Price                  rawPrice       `json:"price"`
	Itineraries            []rawItinerary `json:"itineraries"`
	ValidatingAirlineCodes []string       `json:"validatingAirlineCodes"`
	NumberOfBookableSeats  int            `json:"numberOfBookableSeats"`
}

type rawPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type rawItinerary struct {
	Duration string       `json:"duration"`
	Segments []rawSegment `json:"segments"`
}

type rawSegment struct {
	Departure       rawEndpoint  `json:"departure"`
	Arrival         rawEndpoint  `json:"arrival"`
	CarrierCode     string       `json:"carrierCode"`
	Operating       *rawCarrier  `json:"operating"`
	Number          string       `json:"number"`
	Aircraft        *rawAircraft `json:"aircraft"`
	Duration        string       `json:"duration"`
	NumberOfStops   int          `json:"numberOfStops"`
	BlacklistedInEU bool         `json:"blacklistedInEU"`
}

type rawEndpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

type rawCarrier struct {
	CarrierCode string `json:"carrierCode"`
}

type rawAircraft struct {
	Code string `json:"code"`
}

// locationsResponse is the raw reference-data locations payload.
type locationsResponse struct {
	Data []rawLocation `json:"data"`
}

type rawLocation struct {
	IATACode string      `json:"iataCode"`
	Name     string      `json:"name"`
	SubType  string      `json:"subType"`
	Address  *rawAddress `json:"address"`
}

type rawAddress struct {
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
}

// Location is a normalized airport or city suggestion.
type Location struct {
	IATACode string `json:"iataCode"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Type     string `json:"type"`
	Label    string `json:"label"`
}
