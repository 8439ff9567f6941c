// Package amadeus is the flight-offers provider client. It handles OAuth2
// token refresh, response normalization into the reference currency, and a
// TTL cache in front of both the offers and the locations endpoints.
package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voalerta/flight-service/internal/airports"
	"github.com/voalerta/flight-service/internal/currency"
	"github.com/voalerta/flight-service/internal/flight"
	httpx "github.com/voalerta/flight-service/internal/http"
	"github.com/voalerta/flight-service/internal/searchcache"
)

const (
	tokenPath     = "/v1/security/oauth2/token"
	offersPath    = "/v2/shopping/flight-offers"
	locationsPath = "/v1/reference-data/locations"

	// DefaultOfferLimit caps provider results when the caller does not ask
	// for a specific number of offers.
	DefaultOfferLimit = 10

	// tokenSafetyMargin renews the access token this long before it expires.
	tokenSafetyMargin = 60 * time.Second
)

// Client talks to the Amadeus self-service API.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string

	http      *httpx.Client
	converter *currency.Converter

	offerCache    *searchcache.Cache[[]flight.Offer]
	locationCache *searchcache.Cache[[]Location]

	tokenMu      sync.Mutex
	token        string
	tokenExpires time.Time

	now    func() time.Time
	logger zerolog.Logger
}

// Options configures a Client beyond its required collaborators.
type Options struct {
	CacheTTL time.Duration
	Now      func() time.Time
}

// NewClient creates a provider client. baseURL selects the test or the
// production Amadeus environment.
func NewClient(baseURL, clientID, clientSecret string, httpClient *httpx.Client, converter *currency.Converter, opts Options) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("missing amadeus credentials")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Minute
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		clientID:      clientID,
		clientSecret:  clientSecret,
		http:          httpClient,
		converter:     converter,
		offerCache:    searchcache.New[[]flight.Offer](opts.CacheTTL, opts.Now),
		locationCache: searchcache.New[[]Location](opts.CacheTTL, opts.Now),
		now:           opts.Now,
		logger:        log.With().Str("component", "amadeus").Logger(),
	}, nil
}

// accessToken returns a valid bearer token, requesting a new one when the
// cached token is missing or about to expire.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpires.Add(-tokenSafetyMargin)) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	resp, err := c.http.PostForm(ctx, c.baseURL+tokenPath, form, nil)
	if err != nil {
		return "", fmt.Errorf("requesting access token: %w", err)
	}
	defer resp.Body.Close()

	var tok tokenResponse
	if err := httpx.DecodeJSON(resp, &tok); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("empty access token in response")
	}

	c.token = tok.AccessToken
	c.tokenExpires = c.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.logger.Debug().Time("expires", c.tokenExpires).Msg("access token refreshed")
	return c.token, nil
}

// SearchOffers queries flight offers for the given parameters, returning them
// sorted by normalized price ascending. Results are cached per parameter set.
func (c *Client) SearchOffers(ctx context.Context, params flight.SearchParams, limit int) ([]flight.Offer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params = params.Normalized()
	if limit <= 0 {
		limit = DefaultOfferLimit
	}

	cacheKey := fmt.Sprintf("%s:%d", params.CacheKey(), limit)
	if offers, ok := c.offerCache.Get(cacheKey); ok {
		cacheHits.WithLabelValues("offers").Inc()
		return offers, nil
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("originLocationCode", params.Origin)
	q.Set("destinationLocationCode", params.Destination)
	q.Set("departureDate", params.DepartureDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("travelClass", params.TravelClass)
	q.Set("max", strconv.Itoa(limit))
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	if params.Children > 0 {
		q.Set("children", strconv.Itoa(params.Children))
	}
	if params.Infants > 0 {
		q.Set("infants", strconv.Itoa(params.Infants))
	}

	var raw offersResponse
	reqURL := c.baseURL + offersPath + "?" + q.Encode()
	headers := map[string]string{"Authorization": "Bearer " + token}
	if err := c.http.GetJSON(ctx, reqURL, headers, &raw); err != nil {
		apiErrors.WithLabelValues("offers").Inc()
		return nil, fmt.Errorf("searching offers %s-%s: %w", params.Origin, params.Destination, err)
	}
	apiRequests.WithLabelValues("offers").Inc()

	offers := make([]flight.Offer, 0, len(raw.Data))
	for _, ro := range raw.Data {
		offer, err := c.normalizeOffer(ctx, ro)
		if err != nil {
			c.logger.Warn().Err(err).Str("offer_id", ro.ID).Msg("skipping malformed offer")
			continue
		}
		offers = append(offers, offer)
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price.TotalBRL < offers[j].Price.TotalBRL
	})

	c.offerCache.Set(cacheKey, offers)
	c.logger.Debug().
		Str("route", params.Origin+"-"+params.Destination).
		Str("date", params.DepartureDate).
		Int("offers", len(offers)).
		Msg("offers fetched")
	return offers, nil
}

func (c *Client) normalizeOffer(ctx context.Context, ro rawOffer) (flight.Offer, error) {
	total, err := strconv.ParseFloat(ro.Price.Total, 64)
	if err != nil {
		return flight.Offer{}, fmt.Errorf("parsing price %q: %w", ro.Price.Total, err)
	}

	totalBRL, err := c.converter.Convert(ctx, total, ro.Price.Currency, flight.ReferenceCurrency)
	if err != nil {
		return flight.Offer{}, fmt.Errorf("converting %s to %s: %w", ro.Price.Currency, flight.ReferenceCurrency, err)
	}

	offer := flight.Offer{
		ID: ro.ID,
		Price: flight.Price{
			Total:    total,
			Currency: ro.Price.Currency,
			TotalBRL: totalBRL,
		},
		ValidatingAirlineCodes: ro.ValidatingAirlineCodes,
		NumberOfBookableSeats:  ro.NumberOfBookableSeats,
	}

	for _, ri := range ro.Itineraries {
		itin := flight.Itinerary{Duration: ri.Duration}
		for _, rs := range ri.Segments {
			seg := flight.Segment{
				Departure:       flight.Endpoint(rs.Departure),
				Arrival:         flight.Endpoint(rs.Arrival),
				CarrierCode:     rs.CarrierCode,
				CarrierName:     rs.CarrierCode,
				Number:          rs.Number,
				Duration:        rs.Duration,
				NumberOfStops:   rs.NumberOfStops,
				BlacklistedInEU: rs.BlacklistedInEU,
			}
			if rs.Operating != nil && rs.Operating.CarrierCode != "" {
				seg.CarrierName = rs.Operating.CarrierCode
			}
			if rs.Aircraft != nil {
				seg.Aircraft = rs.Aircraft.Code
			}
			itin.Segments = append(itin.Segments, seg)
		}
		offer.Itineraries = append(offer.Itineraries, itin)
	}
	return offer, nil
}

// Quote is the cheapest offer for a parameter set, priced in the reference
// currency alongside the provider's original quote.
type Quote struct {
	Price            float64      `json:"price"`
	Currency         string       `json:"currency"`
	OriginalPrice    float64      `json:"originalPrice"`
	OriginalCurrency string       `json:"originalCurrency"`
	Offer            flight.Offer `json:"offer"`
}

// LowestPrice returns the cheapest offer for the parameters, or (nil, nil)
// when the provider has no offers for them.
func (c *Client) LowestPrice(ctx context.Context, params flight.SearchParams) (*Quote, error) {
	offers, err := c.SearchOffers(ctx, params, DefaultOfferLimit)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, nil
	}

	lowest := offers[0]
	for _, o := range offers[1:] {
		if o.Price.TotalBRL < lowest.Price.TotalBRL {
			lowest = o
		}
	}
	return &Quote{
		Price:            lowest.Price.TotalBRL,
		Currency:         flight.ReferenceCurrency,
		OriginalPrice:    lowest.Price.Total,
		OriginalCurrency: lowest.Price.Currency,
		Offer:            lowest,
	}, nil
}

// Locations searches airports and cities by keyword. When the provider is
// unreachable it falls back to the built-in airport table.
func (c *Client) Locations(ctx context.Context, keyword string) ([]Location, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < 2 {
		return nil, nil
	}

	cacheKey := "location:" + strings.ToLower(keyword)
	if locs, ok := c.locationCache.Get(cacheKey); ok {
		cacheHits.WithLabelValues("locations").Inc()
		return locs, nil
	}

	locs, err := c.remoteLocations(ctx, keyword)
	if err != nil {
		c.logger.Info().Err(err).Str("keyword", keyword).Msg("provider locations unavailable, using local airport table")
		locs = localLocations(keyword)
	}

	c.locationCache.Set(cacheKey, locs)
	return locs, nil
}

func (c *Client) remoteLocations(ctx context.Context, keyword string) ([]Location, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("subType", "AIRPORT,CITY")

	var raw locationsResponse
	reqURL := c.baseURL + locationsPath + "?" + q.Encode()
	headers := map[string]string{"Authorization": "Bearer " + token}
	if err := c.http.GetJSON(ctx, reqURL, headers, &raw); err != nil {
		apiErrors.WithLabelValues("locations").Inc()
		return nil, err
	}
	apiRequests.WithLabelValues("locations").Inc()

	locs := make([]Location, 0, len(raw.Data))
	for _, rl := range raw.Data {
		loc := Location{
			IATACode: rl.IATACode,
			Name:     rl.Name,
			Type:     rl.SubType,
		}
		if rl.Address != nil {
			loc.City = rl.Address.CityName
			loc.Country = rl.Address.CountryName
		}
		loc.Label = locationLabel(loc.IATACode, loc.Name, loc.City)
		locs = append(locs, loc)
	}
	return locs, nil
}

func localLocations(keyword string) []Location {
	matches := airports.Search(keyword)
	locs := make([]Location, 0, len(matches))
	for _, m := range matches {
		locs = append(locs, Location{
			IATACode: m.IATACode,
			Name:     m.Name,
			City:     m.City,
			Country:  m.Country,
			Type:     "AIRPORT",
			Label:    locationLabel(m.IATACode, m.Name, m.City),
		})
	}
	return locs
}

func locationLabel(code, name, city string) string {
	if city == "" {
		return fmt.Sprintf("%s - %s", code, name)
	}
	return fmt.Sprintf("%s - %s, %s", code, name, city)
}

// PurgeCaches drops expired entries from both caches and returns how many
// were removed. The cleanup job calls this on its schedule.
func (c *Client) PurgeCaches() int {
	return c.offerCache.PurgeExpired() + c.locationCache.PurgeExpired()
}
