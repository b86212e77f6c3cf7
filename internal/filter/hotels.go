package filter

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/zecfly/zecfly-api/internal/bucket"
	"github.com/zecfly/zecfly-api/internal/models"
)

const (
	SortReviewScore = "review_score"
	SortDistance    = "distance"
	SortPopularity  = "popularity"
)

const (
	AmenityBreakfast        = "breakfast"
	AmenityFreeCancellation = "free_cancellation"
	AmenityPreferred        = "preferred"
)

func ApplyHotels(listings []models.HotelListing, cfg *models.HotelFilter, sortBy string) []models.HotelListing {
	result := make([]models.HotelListing, 0, len(listings))
	for _, h := range listings {
		if matchesHotel(h, cfg) {
			result = append(result, h)
		}
	}
	return sortHotels(result, sortBy)
}

func matchesHotel(h models.HotelListing, cfg *models.HotelFilter) bool {
	if cfg == nil {
		return true
	}

	if cfg.PriceMin != nil && cfg.PriceMax != nil && *cfg.PriceMin > *cfg.PriceMax {
		return false
	}
	if cfg.PriceMin != nil && h.MinTotalPrice < *cfg.PriceMin {
		return false
	}
	if cfg.PriceMax != nil && h.MinTotalPrice > *cfg.PriceMax {
		return false
	}

	if len(cfg.Stars) > 0 {
		stars := bucket.StarRating(h)
		found := false
		for _, s := range cfg.Stars {
			if s == stars {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Amenities are conjunctive: selecting breakfast and free cancellation
	// means the listing must offer both.
	for _, amenity := range cfg.Amenities {
		if !hasAmenity(h, amenity) {
			return false
		}
	}

	return true
}

func hasAmenity(h models.HotelListing, amenity string) bool {
	switch amenity {
	case AmenityBreakfast:
		return h.Breakfast
	case AmenityFreeCancellation:
		return h.FreeCancellation
	case AmenityPreferred:
		return h.Preferred || h.PreferredPlus
	default:
		// Unrecognized labels never exclude a listing.
		return true
	}
}

func sortHotels(listings []models.HotelListing, sortBy string) []models.HotelListing {
	switch strings.ToLower(sortBy) {
	case SortPrice:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].MinTotalPrice < listings[j].MinTotalPrice
		})
	case SortReviewScore:
		// Better-first: higher scores lead.
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].ReviewScore > listings[j].ReviewScore
		})
	case SortDistance:
		sort.SliceStable(listings, func(i, j int) bool {
			return ParseDistanceKm(listings[i].DistanceToCenter) < ParseDistanceKm(listings[j].DistanceToCenter)
		})
	default:
		// "popularity" and anything else keep the received order.
	}
	return listings
}

// ParseDistanceKm converts the provider's localized distance string
// ("1,2 km", "0.8 km", "350 m") to kilometers. Anything that does not
// parse cleanly maps to +Inf so unknown distances sort last rather than
// masquerading as nearby.
func ParseDistanceKm(s string) float64 {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return math.Inf(1)
	}

	meters := false
	switch {
	case strings.HasSuffix(s, "km"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "km"))
	case strings.HasSuffix(s, "m"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "m"))
		meters = true
	}

	// Localized decimal comma, at most one.
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return math.Inf(1)
	}
	if meters {
		v /= 1000
	}
	return v
}
