// Package filter holds the pure filter/sort engine applied to stored
// search results. Apply never mutates its input and never fails: every
// structurally valid record is either admitted or excluded, and sorting is
// stable so ties keep their received order.
package filter

import (
	"sort"
	"strings"

	"github.com/zecfly/zecfly-api/internal/bucket"
	"github.com/zecfly/zecfly-api/internal/models"
	"github.com/zecfly/zecfly-api/internal/ranking"
)

const (
	SortPrice     = "price"
	SortDuration  = "duration"
	SortDeparture = "departure"
	SortBestValue = "best_value"
)

func ApplyFlights(offers []models.FlightOffer, cfg *models.FlightFilter, sortBy string) []models.FlightOffer {
	result := make([]models.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if matchesFlight(o, cfg) {
			result = append(result, o)
		}
	}

	if strings.ToLower(sortBy) == SortBestValue {
		result = ranking.CalculateScores(result)
	}

	return sortFlights(result, sortBy)
}

func matchesFlight(o models.FlightOffer, cfg *models.FlightFilter) bool {
	if cfg == nil {
		return true
	}

	// An inverted price range admits nothing; bounds are never swapped
	// behind the caller's back.
	if cfg.PriceMin != nil && cfg.PriceMax != nil && *cfg.PriceMin > *cfg.PriceMax {
		return false
	}
	if cfg.PriceMin != nil && o.Price.Total < *cfg.PriceMin {
		return false
	}
	if cfg.PriceMax != nil && o.Price.Total > *cfg.PriceMax {
		return false
	}

	if len(cfg.Airlines) > 0 {
		found := false
		for _, code := range cfg.Airlines {
			if strings.EqualFold(o.CarrierCode(), code) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if !memberOrUnknown(bucket.StopClass(o), cfg.Stops) {
		return false
	}
	if !memberOrUnknown(bucket.TimeOfDay(o), cfg.Times) {
		return false
	}
	if !memberOrUnknown(bucket.DurationClass(o), cfg.Durations) {
		return false
	}

	return true
}

// memberOrUnknown is the category predicate: an empty selection is
// inactive, and records in the unknown bucket stay visible even when the
// selection is active.
func memberOrUnknown(label string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	if label == bucket.Unknown {
		return true
	}
	for _, s := range selected {
		if s == label {
			return true
		}
	}
	return false
}

func sortFlights(offers []models.FlightOffer, sortBy string) []models.FlightOffer {
	switch strings.ToLower(sortBy) {
	case SortPrice:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].Price.Total < offers[j].Price.Total
		})
	case SortDuration:
		sort.SliceStable(offers, func(i, j int) bool {
			return durationForSort(offers[i]) < durationForSort(offers[j])
		})
	case SortDeparture:
		sort.SliceStable(offers, func(i, j int) bool {
			return departureKey(offers[i]) < departureKey(offers[j])
		})
	case SortBestValue:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].BestValueScore < offers[j].BestValueScore
		})
	default:
		// Received order is the default presentation order.
	}
	return offers
}

// durationForSort pushes unparseable records to the end instead of
// interleaving them with real durations.
func durationForSort(o models.FlightOffer) int {
	d := bucket.DurationMinutes(o)
	if d < 0 {
		return int(^uint(0) >> 1)
	}
	return d
}

func departureKey(o models.FlightOffer) string {
	segs := o.Segments()
	if len(segs) == 0 {
		return "\xff"
	}
	return segs[0].Departure.At
}
