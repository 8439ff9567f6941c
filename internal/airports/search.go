package airports

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match is an airport with its relevance score for a query.
type Match struct {
	Airport
	Score     int    `json:"score"`
	MatchedOn string `json:"matchedOn"`
}

const maxResults = 20

// rule scores one field of an airport against the query. Rules are evaluated
// in priority order and the first hit wins; fallback rules only apply when no
// primary rule matched.
type rule struct {
	tag      string
	score    int
	fallback bool
	match    func(a *normalized, q string) bool
}

// normalized holds the accent-folded, lowercased fields of an airport.
type normalized struct {
	iata    string
	name    string
	city    string
	country string
	aliases []string
}

var rules = []rule{
	{tag: "iata", score: 1000, match: func(a *normalized, q string) bool { return a.iata == q }},
	{tag: "iata", score: 900, match: func(a *normalized, q string) bool { return strings.HasPrefix(a.iata, q) }},
	{tag: "iata", score: 800, match: func(a *normalized, q string) bool { return strings.Contains(a.iata, q) }},
	{tag: "city", score: 700, match: func(a *normalized, q string) bool { return a.city == q }},
	{tag: "city", score: 600, match: func(a *normalized, q string) bool { return strings.HasPrefix(a.city, q) }},
	{tag: "alias", score: 550, match: func(a *normalized, q string) bool { return a.hasAlias(func(s string) bool { return s == q }) }},
	{tag: "country", score: 500, match: func(a *normalized, q string) bool { return a.country == q }},
	{tag: "alias", score: 450, match: func(a *normalized, q string) bool { return a.hasAlias(func(s string) bool { return strings.HasPrefix(s, q) }) }},
	{tag: "country", score: 400, match: func(a *normalized, q string) bool { return strings.HasPrefix(a.country, q) }},
	{tag: "alias", score: 350, match: func(a *normalized, q string) bool { return a.hasAlias(func(s string) bool { return strings.Contains(s, q) }) }},
	{tag: "name", score: 300, fallback: true, match: func(a *normalized, q string) bool { return strings.Contains(a.name, q) }},
	{tag: "city", score: 200, fallback: true, match: func(a *normalized, q string) bool { return strings.Contains(a.city, q) }},
	{tag: "country", score: 100, fallback: true, match: func(a *normalized, q string) bool { return strings.Contains(a.country, q) }},
}

func (n *normalized) hasAlias(pred func(string) bool) bool {
	for _, al := range n.aliases {
		if pred(al) {
			return true
		}
	}
	return false
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases the string and strips diacritics, so "São Paulo" and
// "sao paulo" compare equal.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func normalize(a Airport) normalized {
	n := normalized{
		iata:    fold(a.IATACode),
		name:    fold(a.Name),
		city:    fold(a.City),
		country: fold(a.Country),
	}
	for _, al := range a.Aliases {
		n.aliases = append(n.aliases, fold(al))
	}
	return n
}

// Search ranks the airport table against a free-text query and returns the
// best matches, highest score first, ties broken by city name. Queries
// shorter than two characters return nothing.
func Search(query string) []Match {
	q := fold(strings.TrimSpace(query))
	if len(q) < 2 {
		return nil
	}

	var matches []Match
	for i := range table {
		n := normalize(table[i])
		score, tag := scoreAirport(&n, q)
		if score == 0 {
			continue
		}
		matches = append(matches, Match{Airport: table[i], Score: score, MatchedOn: tag})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].City < matches[j].City
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

func scoreAirport(n *normalized, q string) (int, string) {
	for _, r := range rules {
		if r.fallback {
			continue
		}
		if r.match(n, q) {
			return r.score, r.tag
		}
	}
	for _, r := range rules {
		if !r.fallback {
			continue
		}
		if r.match(n, q) {
			return r.score, r.tag
		}
	}
	return 0, ""
}
