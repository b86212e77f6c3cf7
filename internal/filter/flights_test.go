package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zecfly/zecfly-api/internal/bucket"
	"github.com/zecfly/zecfly-api/internal/models"
)

func f64(v float64) *float64 { return &v }

func offer(id string, price float64, carrier string, depAt string, stops int) models.FlightOffer {
	segs := make([]models.Segment, stops+1)
	for i := range segs {
		segs[i] = models.Segment{
			Departure:   models.SegmentStop{IataCode: "GRU", At: depAt},
			Arrival:     models.SegmentStop{IataCode: "GIG", At: depAt},
			CarrierCode: carrier,
		}
	}
	segs[0].Departure.At = depAt
	return models.FlightOffer{
		ID:          id,
		Itineraries: []models.Itinerary{{Segments: segs}},
		Price:       models.Price{Total: price, Currency: "BRL"},
	}
}

func ids(offers []models.FlightOffer) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.ID
	}
	return out
}

func TestApplyFlightsEmptyStore(t *testing.T) {
	cfg := &models.FlightFilter{PriceMin: f64(100), Stops: []string{bucket.Direct}}
	result := ApplyFlights(nil, cfg, SortPrice)
	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestApplyFlightsNilConfigPassesAll(t *testing.T) {
	offers := []models.FlightOffer{
		offer("a", 1200, "LA", "2026-09-01T08:00:00", 0),
		offer("b", 900, "G3", "2026-09-01T19:00:00", 1),
	}
	result := ApplyFlights(offers, nil, "")
	assert.Equal(t, []string{"a", "b"}, ids(result))
}

func TestPriceRangeInclusive(t *testing.T) {
	offers := []models.FlightOffer{
		offer("low", 1200, "LA", "2026-09-01T08:00:00", 0),
		offer("mid", 2400, "LA", "2026-09-01T08:00:00", 0),
		offer("high", 3600, "LA", "2026-09-01T08:00:00", 0),
	}

	cfg := &models.FlightFilter{PriceMin: f64(1000), PriceMax: f64(3000)}
	result := ApplyFlights(offers, cfg, "")
	assert.Equal(t, []string{"low", "mid"}, ids(result))

	// Exact bounds are admitted.
	cfg = &models.FlightFilter{PriceMin: f64(1200), PriceMax: f64(2400)}
	result = ApplyFlights(offers, cfg, "")
	assert.Equal(t, []string{"low", "mid"}, ids(result))
}

func TestInvertedPriceRangeAdmitsNothing(t *testing.T) {
	offers := []models.FlightOffer{
		offer("a", 1200, "LA", "2026-09-01T08:00:00", 0),
	}
	cfg := &models.FlightFilter{PriceMin: f64(3000), PriceMax: f64(1000)}
	result := ApplyFlights(offers, cfg, "")
	assert.Empty(t, result)
}

func TestMonotonicNarrowing(t *testing.T) {
	offers := []models.FlightOffer{
		offer("a", 800, "LA", "2026-09-01T08:00:00", 0),
		offer("b", 1500, "LA", "2026-09-01T08:00:00", 0),
		offer("c", 2900, "LA", "2026-09-01T08:00:00", 0),
	}

	narrow := ApplyFlights(offers, &models.FlightFilter{PriceMin: f64(1000), PriceMax: f64(2000)}, "")
	wide := ApplyFlights(offers, &models.FlightFilter{PriceMin: f64(500), PriceMax: f64(3000)}, "")

	// Widening the range never evicts a previously visible record.
	for _, id := range ids(narrow) {
		assert.Contains(t, ids(wide), id)
	}
}

func TestCombinedFilters(t *testing.T) {
	offers := []models.FlightOffer{
		offer("direct-morning", 1000, "LA", "2026-09-01T08:00:00", 0),
		offer("onestop-night", 1000, "LA", "2026-09-01T23:30:00", 1),
		offer("twostop-afternoon", 1000, "LA", "2026-09-01T14:00:00", 2),
		offer("direct-afternoon", 1000, "LA", "2026-09-01T14:00:00", 0),
	}

	cfg := &models.FlightFilter{
		Stops: []string{bucket.Direct},
		Times: []string{bucket.Morning},
	}
	result := ApplyFlights(offers, cfg, "")

	// AND across groups: matching only one criterion is not enough.
	assert.Equal(t, []string{"direct-morning"}, ids(result))
}

func TestAirlineSelectionIsMembership(t *testing.T) {
	offers := []models.FlightOffer{
		offer("latam", 1000, "LA", "2026-09-01T08:00:00", 0),
		offer("gol", 1000, "G3", "2026-09-01T08:00:00", 0),
		offer("azul", 1000, "AD", "2026-09-01T08:00:00", 0),
	}

	cfg := &models.FlightFilter{Airlines: []string{"la", "g3"}}
	result := ApplyFlights(offers, cfg, "")
	assert.Equal(t, []string{"latam", "gol"}, ids(result))
}

func TestUnknownBucketStaysVisible(t *testing.T) {
	offers := []models.FlightOffer{
		offer("morning", 1000, "LA", "2026-09-01T08:00:00", 0),
		offer("broken", 1000, "LA", "not-a-timestamp", 0),
		offer("night", 1000, "LA", "2026-09-01T23:30:00", 0),
	}

	cfg := &models.FlightFilter{Times: []string{bucket.Morning}}
	result := ApplyFlights(offers, cfg, "")
	assert.Equal(t, []string{"morning", "broken"}, ids(result))
}

func TestIdempotence(t *testing.T) {
	offers := []models.FlightOffer{
		offer("a", 2400, "LA", "2026-09-01T08:00:00", 1),
		offer("b", 1200, "G3", "2026-09-01T14:00:00", 0),
		offer("c", 1200, "AD", "2026-09-01T19:00:00", 0),
	}
	cfg := &models.FlightFilter{PriceMax: f64(3000)}

	first := ApplyFlights(offers, cfg, SortPrice)
	second := ApplyFlights(offers, cfg, SortPrice)
	assert.Equal(t, first, second)
}

func TestSortStabilityOnTies(t *testing.T) {
	offers := []models.FlightOffer{
		offer("a", 1200, "LA", "2026-09-01T08:00:00", 0),
		offer("b", 1200, "G3", "2026-09-01T14:00:00", 0),
		offer("c", 900, "AD", "2026-09-01T19:00:00", 0),
	}

	result := ApplyFlights(offers, nil, SortPrice)
	// Equal prices keep their received relative order.
	assert.Equal(t, []string{"c", "a", "b"}, ids(result))
}

func TestSortByDuration(t *testing.T) {
	short := models.FlightOffer{ID: "short", Itineraries: []models.Itinerary{{Segments: []models.Segment{{
		Departure: models.SegmentStop{IataCode: "GRU", At: "2026-09-01T08:00:00"},
		Arrival:   models.SegmentStop{IataCode: "GIG", At: "2026-09-01T09:00:00"},
	}}}}}
	long := models.FlightOffer{ID: "long", Itineraries: []models.Itinerary{{Segments: []models.Segment{{
		Departure: models.SegmentStop{IataCode: "GRU", At: "2026-09-01T08:00:00"},
		Arrival:   models.SegmentStop{IataCode: "REC", At: "2026-09-01T16:00:00"},
	}}}}}
	broken := models.FlightOffer{ID: "broken", Itineraries: []models.Itinerary{{Segments: []models.Segment{{
		Departure: models.SegmentStop{IataCode: "GRU", At: "garbage"},
		Arrival:   models.SegmentStop{IataCode: "GIG", At: "garbage"},
	}}}}}

	result := ApplyFlights([]models.FlightOffer{broken, long, short}, nil, SortDuration)
	// Unparseable durations sort last.
	assert.Equal(t, []string{"short", "long", "broken"}, ids(result))
}

func TestSortByDeparture(t *testing.T) {
	offers := []models.FlightOffer{
		offer("late", 1000, "LA", "2026-09-01T19:00:00", 0),
		offer("early", 1000, "LA", "2026-09-01T06:30:00", 0),
	}
	result := ApplyFlights(offers, nil, SortDeparture)
	assert.Equal(t, []string{"early", "late"}, ids(result))
}

func TestSortByBestValue(t *testing.T) {
	cheap := offer("cheap-direct", 500, "LA", "2026-09-01T08:00:00", 0)
	pricey := offer("pricey-twostop", 3000, "LA", "2026-09-01T08:00:00", 2)

	result := ApplyFlights([]models.FlightOffer{pricey, cheap}, nil, SortBestValue)
	require.Len(t, result, 2)
	assert.Equal(t, "cheap-direct", result[0].ID)
	assert.Less(t, result[0].BestValueScore, result[1].BestValueScore)
}

func TestResetRestoresFullSet(t *testing.T) {
	offers := []models.FlightOffer{
		offer("a", 800, "LA", "2026-09-01T08:00:00", 0),
		offer("b", 1500, "G3", "2026-09-01T14:00:00", 1),
		offer("c", 2900, "AD", "2026-09-01T23:30:00", 2),
	}

	cfg := &models.FlightFilter{
		PriceMin: f64(1000),
		PriceMax: f64(2000),
		Stops:    []string{bucket.OneStop},
		Airlines: []string{"G3"},
	}
	assert.Equal(t, []string{"b"}, ids(ApplyFlights(offers, cfg, "")))

	cfg.Reset()
	assert.Equal(t, []string{"a", "b", "c"}, ids(ApplyFlights(offers, cfg, "")))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	offers := []models.FlightOffer{
		offer("b", 2000, "LA", "2026-09-01T08:00:00", 0),
		offer("a", 1000, "G3", "2026-09-01T14:00:00", 0),
	}

	_ = ApplyFlights(offers, nil, SortPrice)
	assert.Equal(t, []string{"b", "a"}, ids(offers))
}
