package ranking

import (
	"math"

	"github.com/zecfly/zecfly-api/internal/bucket"
	"github.com/zecfly/zecfly-api/internal/models"
)

const (
	PriceWeight    = 0.5
	DurationWeight = 0.3
	StopsWeight    = 0.2
)

func CalculateScores(offers []models.FlightOffer) []models.FlightOffer {
	if len(offers) == 0 {
		return offers
	}

	maxPrice := findMaxPrice(offers)
	maxDuration := findMaxDuration(offers)

	result := make([]models.FlightOffer, len(offers))
	for i, o := range offers {
		result[i] = o
		result[i].BestValueScore = CalculateBestValue(o, maxPrice, maxDuration)
	}

	return result
}

// Lower score = better value
func CalculateBestValue(offer models.FlightOffer, maxPrice, maxDuration float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (offer.Price.Total / maxPrice) * 100
	}

	durationScore := 0.0
	if duration := bucket.DurationMinutes(offer); duration > 0 && maxDuration > 0 {
		durationScore = (float64(duration) / maxDuration) * 100
	}

	stopsScore := float64(offer.Stops()) * 15
	score := (priceScore * PriceWeight) + (durationScore * DurationWeight) + (stopsScore * StopsWeight)

	return math.Round(score*100) / 100
}

func findMaxPrice(offers []models.FlightOffer) float64 {
	maxPrice := 0.0
	for _, o := range offers {
		if o.Price.Total > maxPrice {
			maxPrice = o.Price.Total
		}
	}
	return maxPrice
}

func findMaxDuration(offers []models.FlightOffer) float64 {
	maxDuration := 0.0
	for _, o := range offers {
		if d := bucket.DurationMinutes(o); d > 0 && float64(d) > maxDuration {
			maxDuration = float64(d)
		}
	}
	return maxDuration
}
