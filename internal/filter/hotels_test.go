package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zecfly/zecfly-api/internal/models"
)

func hotel(id int64, price float64, stars float64) models.HotelListing {
	return models.HotelListing{
		ID:            id,
		MinTotalPrice: price,
		StarClass:     stars,
		Currency:      "BRL",
	}
}

func hotelIDs(listings []models.HotelListing) []int64 {
	out := make([]int64, len(listings))
	for i, h := range listings {
		out[i] = h.ID
	}
	return out
}

func TestApplyHotelsEmptyStore(t *testing.T) {
	result := ApplyHotels(nil, &models.HotelFilter{Stars: []int{5}}, SortPrice)
	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestHotelPriceRange(t *testing.T) {
	listings := []models.HotelListing{
		hotel(1, 250, 3),
		hotel(2, 480, 4),
		hotel(3, 900, 5),
	}
	cfg := &models.HotelFilter{PriceMin: f64(250), PriceMax: f64(480)}
	result := ApplyHotels(listings, cfg, "")
	assert.Equal(t, []int64{1, 2}, hotelIDs(result))
}

func TestHotelInvertedRangeAdmitsNothing(t *testing.T) {
	listings := []models.HotelListing{hotel(1, 250, 3)}
	cfg := &models.HotelFilter{PriceMin: f64(500), PriceMax: f64(100)}
	assert.Empty(t, ApplyHotels(listings, cfg, ""))
}

func TestStarSelectionUsesFlooredClass(t *testing.T) {
	listings := []models.HotelListing{
		hotel(1, 100, 4.5),
		hotel(2, 100, 4.0),
		hotel(3, 100, 3.5),
	}
	cfg := &models.HotelFilter{Stars: []int{4}}
	result := ApplyHotels(listings, cfg, "")
	assert.Equal(t, []int64{1, 2}, hotelIDs(result))
}

func TestAmenitiesAreConjunctive(t *testing.T) {
	both := hotel(1, 100, 4)
	both.Breakfast = true
	both.FreeCancellation = true

	breakfastOnly := hotel(2, 100, 4)
	breakfastOnly.Breakfast = true

	neither := hotel(3, 100, 4)

	cfg := &models.HotelFilter{Amenities: []string{AmenityBreakfast, AmenityFreeCancellation}}
	result := ApplyHotels([]models.HotelListing{both, breakfastOnly, neither}, cfg, "")
	assert.Equal(t, []int64{1}, hotelIDs(result))
}

func TestPreferredCoversPreferredPlus(t *testing.T) {
	plus := hotel(1, 100, 4)
	plus.PreferredPlus = true

	cfg := &models.HotelFilter{Amenities: []string{AmenityPreferred}}
	result := ApplyHotels([]models.HotelListing{plus}, cfg, "")
	assert.Equal(t, []int64{1}, hotelIDs(result))
}

func TestUnrecognizedAmenityNeverExcludes(t *testing.T) {
	listings := []models.HotelListing{hotel(1, 100, 4)}
	cfg := &models.HotelFilter{Amenities: []string{"spa"}}
	result := ApplyHotels(listings, cfg, "")
	assert.Equal(t, []int64{1}, hotelIDs(result))
}

func TestSortHotelsByPrice(t *testing.T) {
	listings := []models.HotelListing{
		hotel(1, 900, 5),
		hotel(2, 250, 3),
		hotel(3, 480, 4),
	}
	result := ApplyHotels(listings, nil, SortPrice)
	assert.Equal(t, []int64{2, 3, 1}, hotelIDs(result))
}

func TestSortHotelsByReviewScoreDescending(t *testing.T) {
	a := hotel(1, 100, 4)
	a.ReviewScore = 7.5
	b := hotel(2, 100, 4)
	b.ReviewScore = 9.1
	c := hotel(3, 100, 4)
	c.ReviewScore = 8.2

	result := ApplyHotels([]models.HotelListing{a, b, c}, nil, SortReviewScore)
	assert.Equal(t, []int64{2, 3, 1}, hotelIDs(result))
}

func TestSortHotelsByDistance(t *testing.T) {
	near := hotel(1, 100, 4)
	near.DistanceToCenter = "0,8 km"
	far := hotel(2, 100, 4)
	far.DistanceToCenter = "2,5 km"
	unknown := hotel(3, 100, 4)
	unknown.DistanceToCenter = "perto do centro"

	result := ApplyHotels([]models.HotelListing{far, unknown, near}, nil, SortDistance)
	// Unknown distances sort last.
	assert.Equal(t, []int64{1, 2, 3}, hotelIDs(result))
}

func TestPopularityKeepsReceivedOrder(t *testing.T) {
	listings := []models.HotelListing{
		hotel(3, 900, 5),
		hotel(1, 250, 3),
		hotel(2, 480, 4),
	}
	result := ApplyHotels(listings, nil, SortPopularity)
	assert.Equal(t, []int64{3, 1, 2}, hotelIDs(result))
}

func TestParseDistanceKm(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1,2 km", 1.2},
		{"0.8 km", 0.8},
		{"350 m", 0.35},
		{"3 km", 3},
		{"2,5km", 2.5},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.InDelta(t, tc.want, ParseDistanceKm(tc.in), 1e-9)
		})
	}

	for _, bad := range []string{"", "abc", "1,2,3 km", "-4 km"} {
		assert.True(t, math.IsInf(ParseDistanceKm(bad), 1), "expected +Inf for %q", bad)
	}
}
