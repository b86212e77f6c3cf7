// Package amadeus is the flight-offer search boundary. Failures are
// terminal for the current search: no automatic retry, the caller clears
// its result store and surfaces the error.
package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/zecfly/zecfly-api/internal/models"
	"github.com/zecfly/zecfly-api/internal/ratelimit"
	"github.com/zecfly/zecfly-api/pkg/currency"
)

const limiterHost = "amadeus"

type Config struct {
	BaseURL      string // e.g. https://test.api.amadeus.com
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client
	Limiter      *ratelimit.HostLimiter
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokenSource
	limiter    *ratelimit.HostLimiter
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		limiter:    cfg.Limiter,
		tokens: &tokenSource{
			tokenURL:     cfg.BaseURL + "/v1/security/oauth2/token",
			clientID:     cfg.ClientID,
			clientSecret: cfg.ClientSecret,
			httpClient:   httpClient,
		},
	}
}

type offerSearchRequest struct {
	CurrencyCode       string              `json:"currencyCode"`
	OriginDestinations []originDestination `json:"originDestinations"`
	Travelers          []traveler          `json:"travelers"`
	Sources            []string            `json:"sources"`
	TravelClass        string              `json:"travelClass,omitempty"`
}

type originDestination struct {
	ID                      string    `json:"id"`
	OriginLocationCode      string    `json:"originLocationCode"`
	DestinationLocationCode string    `json:"destinationLocationCode"`
	DepartureDateTimeRange  dateRange `json:"departureDateTimeRange"`
}

type dateRange struct {
	Date string `json:"date"`
}

type traveler struct {
	ID           string `json:"id"`
	TravelerType string `json:"travelerType"`
}

type offerSearchResponse struct {
	Data []models.FlightOffer `json:"data"`
}

// SearchOffers runs one flight-offer search. A round trip is expressed as
// a second origin/destination leg, mirroring how the provider models it;
// each returned offer covers the whole journey and is evaluated by its
// first itinerary.
func (c *Client) SearchOffers(ctx context.Context, req models.FlightSearchRequest) ([]models.FlightOffer, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, limiterHost); err != nil {
			return nil, err
		}
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	body := offerSearchRequest{
		CurrencyCode: req.Currency,
		OriginDestinations: []originDestination{
			{
				ID:                      "1",
				OriginLocationCode:      req.Origin,
				DestinationLocationCode: req.Destination,
				DepartureDateTimeRange:  dateRange{Date: req.DepartureDate},
			},
		},
		Sources:     []string{"GDS"},
		TravelClass: req.CabinClass,
	}
	if req.ReturnDate != nil && *req.ReturnDate != "" {
		body.OriginDestinations = append(body.OriginDestinations, originDestination{
			ID:                      "2",
			OriginLocationCode:      req.Destination,
			DestinationLocationCode: req.Origin,
			DepartureDateTimeRange:  dateRange{Date: *req.ReturnDate},
		})
	}
	for i := 0; i < req.Passengers; i++ {
		body.Travelers = append(body.Travelers, traveler{
			ID:           strconv.Itoa(i + 1),
			TravelerType: "ADULT",
		})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/shopping/flight-offers", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("amadeus flight search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{Status: resp.StatusCode, Body: string(errBody)}
	}

	var parsed offerSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("amadeus flight search response: %w", err)
	}

	offers := parsed.Data
	for i := range offers {
		if offers[i].Price.Currency == "BRL" {
			offers[i].Price.Formatted = currency.FormatBRL(offers[i].Price.Total)
		}
	}

	return offers, nil
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amadeus: status %d: %s", e.Status, e.Body)
}
