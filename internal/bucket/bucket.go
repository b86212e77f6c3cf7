// Package bucket derives the coarse category labels the filter engine
// matches selections against. Every function is pure and total: a record
// with unparseable data lands in the Unknown bucket instead of being
// dropped or aborting the filter pass.
package bucket

import (
	"math"

	"github.com/zecfly/zecfly-api/internal/models"
	"github.com/zecfly/zecfly-api/internal/timezone"
)

const (
	Direct       = "direct"
	OneStop      = "one-stop"
	TwoPlusStops = "two-plus-stops"

	Morning   = "morning"
	Afternoon = "afternoon"
	Evening   = "evening"
	Night     = "night"

	Short  = "short"
	Medium = "medium"
	Long   = "long"

	Unknown = "unknown"
)

func StopClass(offer models.FlightOffer) string {
	switch offer.Stops() {
	case 0:
		return Direct
	case 1:
		return OneStop
	default:
		return TwoPlusStops
	}
}

// TimeOfDay buckets the local hour of the first segment's departure:
// [6,12) morning, [12,18) afternoon, [18,23) evening, otherwise night.
func TimeOfDay(offer models.FlightOffer) string {
	segs := offer.Segments()
	if len(segs) == 0 {
		return Unknown
	}
	t, err := timezone.ParseLocal(segs[0].Departure.At, segs[0].Departure.IataCode)
	if err != nil {
		return Unknown
	}
	hour := t.Hour()
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 23:
		return Evening
	default:
		return Night
	}
}

// DurationMinutes is the elapsed time between the first segment's departure
// and the last segment's arrival, each anchored to its own airport's zone.
// Returns -1 when either timestamp cannot be parsed.
func DurationMinutes(offer models.FlightOffer) int {
	segs := offer.Segments()
	if len(segs) == 0 {
		return -1
	}
	first := segs[0].Departure
	last := segs[len(segs)-1].Arrival

	dep, err := timezone.ParseLocal(first.At, first.IataCode)
	if err != nil {
		return -1
	}
	arr, err := timezone.ParseLocal(last.At, last.IataCode)
	if err != nil {
		return -1
	}

	return int(math.Round(arr.Sub(dep).Minutes()))
}

func DurationClass(offer models.FlightOffer) string {
	minutes := DurationMinutes(offer)
	switch {
	case minutes < 0:
		return Unknown
	case minutes <= 180:
		return Short
	case minutes <= 360:
		return Medium
	default:
		return Long
	}
}

// StarRating floors the fractional star class for membership against the
// selected integers 1-5.
func StarRating(listing models.HotelListing) int {
	return int(math.Floor(listing.StarClass))
}
