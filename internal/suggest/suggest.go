// Package suggest serves the typeahead lookups that populate the search
// form inputs. Matching is diacritic-insensitive so "Brasilia" finds
// Brasília; exact code and prefix matches rank ahead of substring hits.
package suggest

import (
	"sort"
	"strings"

	"github.com/zecfly/zecfly-api/internal/models"
)

const maxSuggestions = 8

// minQueryLen mirrors the form behavior: a single character yields nothing.
const minQueryLen = 2

func Airports(query string) []models.Suggestion {
	query = fold(query)
	if len(query) < minQueryLen {
		return nil
	}

	type scored struct {
		s    models.Suggestion
		rank int
	}
	var matches []scored
	for _, a := range airports {
		rank := matchRank(query, fold(a.IATA), fold(a.City), fold(a.Name))
		if rank < 0 {
			continue
		}
		matches = append(matches, scored{
			s: models.Suggestion{
				Name:    a.Name,
				Code:    a.IATA,
				City:    a.City,
				Country: "Brasil",
			},
			rank: rank,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	result := make([]models.Suggestion, 0, maxSuggestions)
	for _, m := range matches {
		if len(result) == maxSuggestions {
			break
		}
		result = append(result, m.s)
	}
	return result
}

func Cities(query string) []models.Suggestion {
	query = fold(query)
	if len(query) < minQueryLen {
		return nil
	}

	type scored struct {
		name string
		rank int
	}
	var matches []scored
	for _, city := range cities {
		rank := matchRank(query, fold(city))
		if rank < 0 {
			continue
		}
		matches = append(matches, scored{name: city, rank: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	result := make([]models.Suggestion, 0, maxSuggestions)
	for _, m := range matches {
		if len(result) == maxSuggestions {
			break
		}
		result = append(result, models.Suggestion{Name: m.name, Country: "Brasil"})
	}
	return result
}

// matchRank: 0 exact, 1 prefix, 2 substring, -1 no match. The best rank
// across the candidate fields wins.
func matchRank(query string, fields ...string) int {
	best := -1
	for _, f := range fields {
		var rank int
		switch {
		case f == query:
			rank = 0
		case strings.HasPrefix(f, query):
			rank = 1
		case strings.Contains(f, query):
			rank = 2
		default:
			continue
		}
		if best < 0 || rank < best {
			best = rank
		}
	}
	return best
}

var diacritics = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

func fold(s string) string {
	return diacritics.Replace(strings.ToLower(strings.TrimSpace(s)))
}
