package airports

import "testing"

func TestSearchExactIATA(t *testing.T) {
	matches := Search("GRU")
	if len(matches) == 0 {
		t.Fatal("expected matches for GRU")
	}
	if matches[0].IATACode != "GRU" {
		t.Errorf("top match = %s, want GRU", matches[0].IATACode)
	}
	if matches[0].Score != 1000 {
		t.Errorf("score = %d, want 1000", matches[0].Score)
	}
	if matches[0].MatchedOn != "iata" {
		t.Errorf("matchedOn = %s, want iata", matches[0].MatchedOn)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	upper := Search("GIG")
	lower := Search("gig")
	if len(upper) == 0 || len(lower) == 0 {
		t.Fatal("expected matches for both cases")
	}
	if upper[0].IATACode != lower[0].IATACode {
		t.Errorf("case changed top match: %s vs %s", upper[0].IATACode, lower[0].IATACode)
	}
}

func TestSearchAccentInsensitive(t *testing.T) {
	plain := Search("sao paulo")
	accented := Search("são paulo")
	if len(plain) == 0 || len(accented) == 0 {
		t.Fatal("expected matches for both spellings")
	}
	if len(plain) != len(accented) {
		t.Errorf("accent variants differ: %d vs %d matches", len(plain), len(accented))
	}
	if plain[0].City != "São Paulo" {
		t.Errorf("top city = %s, want São Paulo", plain[0].City)
	}
}

func TestSearchCityBeatsAlias(t *testing.T) {
	// "rio" is an exact alias of GIG and SDU, and a prefix of the city
	// "Rio de Janeiro". City prefix (600) ranks above alias exact (550).
	matches := Search("rio")
	if len(matches) < 2 {
		t.Fatalf("expected at least 2 matches, got %d", len(matches))
	}
	for _, m := range matches[:2] {
		if m.City != "Rio de Janeiro" {
			t.Errorf("match %s has city %s, want Rio de Janeiro", m.IATACode, m.City)
		}
		if m.Score != 600 {
			t.Errorf("score for %s = %d, want 600", m.IATACode, m.Score)
		}
	}
}

func TestSearchNameFallback(t *testing.T) {
	matches := Search("santos dumont")
	if len(matches) == 0 {
		t.Fatal("expected match for santos dumont")
	}
	if matches[0].IATACode != "SDU" {
		t.Errorf("top match = %s, want SDU", matches[0].IATACode)
	}
}

func TestSearchShortQuery(t *testing.T) {
	if got := Search("g"); got != nil {
		t.Errorf("single-char query returned %d matches, want none", len(got))
	}
	if got := Search("  "); got != nil {
		t.Errorf("blank query returned %d matches, want none", len(got))
	}
}

func TestSearchSortedByScore(t *testing.T) {
	matches := Search("londres")
	if len(matches) == 0 {
		t.Fatal("expected matches for londres")
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Fatalf("matches not sorted by score at %d: %d > %d", i, matches[i].Score, matches[i-1].Score)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	// Every entry's country contains a vowel-heavy fragment, so a broad
	// query can exceed the cap.
	matches := Search("aeroporto")
	if len(matches) > maxResults {
		t.Errorf("got %d matches, cap is %d", len(matches), maxResults)
	}
}

func TestByCode(t *testing.T) {
	a, ok := ByCode("BSB")
	if !ok {
		t.Fatal("BSB not found")
	}
	if a.City != "Brasília" {
		t.Errorf("city = %s, want Brasília", a.City)
	}
	if _, ok := ByCode("XXX"); ok {
		t.Error("XXX unexpectedly found")
	}
}
