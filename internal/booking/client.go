// Package booking is the hotel-search boundary (rapidapi Booking.com
// host). Wire records are normalized into models.HotelListing here; the
// localized distance string is carried through untouched.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zecfly/zecfly-api/internal/geocode"
	"github.com/zecfly/zecfly-api/internal/models"
	"github.com/zecfly/zecfly-api/internal/ratelimit"
	"github.com/zecfly/zecfly-api/pkg/currency"
)

const limiterHost = "booking"

type Config struct {
	BaseURL    string // e.g. https://booking-com15.p.rapidapi.com/api/v1
	APIKey     string
	APIHost    string // x-rapidapi-host value
	HTTPClient *http.Client
	Limiter    *ratelimit.HostLimiter
}

type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	limiter    *ratelimit.HostLimiter
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		apiHost:    cfg.APIHost,
		httpClient: httpClient,
		limiter:    cfg.Limiter,
	}
}

type searchResponse struct {
	Result []wireProperty `json:"result"`
}

type wireProperty struct {
	HotelID          int64    `json:"hotel_id"`
	Name             string   `json:"name"`
	MainPhotoURL     string   `json:"main_photo_url"`
	ReviewScore      float64  `json:"review_score"`
	ReviewScoreWord  string   `json:"review_score_word"`
	ReviewNr         int      `json:"review_nr"`
	MinTotalPrice    float64  `json:"min_total_price"`
	CurrencyCode     string   `json:"currencycode"`
	Address          wireAddr `json:"address"`
	DistanceToCC     string   `json:"distance_to_cc"`
	IncludeBreakfast int      `json:"hotel_include_breakfast"`
	FreeCancellable  int      `json:"is_free_cancellable"`
	Class            float64  `json:"class"`
	ClassIsEstimated int      `json:"class_is_estimated"`
	Preferred        int      `json:"preferred"`
	PreferredPlus    int      `json:"preferred_plus"`
	Districts        []string `json:"districts"`
	Timezone         string   `json:"timezone"`
	URL              string   `json:"url"`
}

type wireAddr struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	District string `json:"district"`
}

// SearchHotels queries listings inside a bounding box derived from the
// resolved city center.
func (c *Client) SearchHotels(ctx context.Context, req models.HotelSearchRequest, box geocode.BBox) ([]models.HotelListing, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, limiterHost); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("arrival_date", req.CheckIn)
	params.Set("departure_date", req.CheckOut)
	params.Set("room_qty", strconv.Itoa(req.Rooms))
	params.Set("guest_qty", strconv.Itoa(req.Guests))
	params.Set("bbox", box.String())
	params.Set("languagecode", "pt-br")
	params.Set("travel_purpose", "leisure")
	params.Set("order_by", orderBy(req.SortBy))
	params.Set("price_filter_currencycode", req.Currency)
	if req.Children > 0 {
		params.Set("children_qty", strconv.Itoa(req.Children))
		params.Set("children_age", joinAges(req.ChildrenAges))
	}

	var parsed searchResponse
	if err := c.get(ctx, "/hotels/searchHotels", params, &parsed); err != nil {
		return nil, err
	}

	listings := make([]models.HotelListing, 0, len(parsed.Result))
	for _, p := range parsed.Result {
		listings = append(listings, normalize(p))
	}
	return listings, nil
}

// SearchDestination resolves a free-text place query into ranked
// destination suggestions.
func (c *Client) SearchDestination(ctx context.Context, query string) ([]models.Suggestion, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, limiterHost); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("query", query)

	var parsed struct {
		Data []struct {
			Name    string `json:"name"`
			CityID  string `json:"city_ufi,omitempty"`
			City    string `json:"city_name"`
			Country string `json:"country"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/hotels/searchDestination", params, &parsed); err != nil {
		return nil, err
	}

	suggestions := make([]models.Suggestion, 0, len(parsed.Data))
	for _, d := range parsed.Data {
		suggestions = append(suggestions, models.Suggestion{
			Name:    d.Name,
			City:    d.City,
			Country: d.Country,
		})
	}
	return suggestions, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("x-rapidapi-host", c.apiHost)
	httpReq.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("booking %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("booking %s response: %w", path, err)
	}
	return nil
}

func normalize(p wireProperty) models.HotelListing {
	district := p.Address.District
	if district == "" && len(p.Districts) > 0 {
		district = p.Districts[0]
	}

	listing := models.HotelListing{
		ID:               p.HotelID,
		Name:             p.Name,
		City:             p.Address.City,
		District:         district,
		PhotoURL:         p.MainPhotoURL,
		StarClass:        p.Class,
		ClassEstimated:   p.ClassIsEstimated == 1,
		ReviewScore:      p.ReviewScore,
		ReviewScoreWord:  p.ReviewScoreWord,
		ReviewCount:      p.ReviewNr,
		MinTotalPrice:    p.MinTotalPrice,
		Currency:         p.CurrencyCode,
		Breakfast:        p.IncludeBreakfast == 1,
		FreeCancellation: p.FreeCancellable == 1,
		Preferred:        p.Preferred == 1,
		PreferredPlus:    p.PreferredPlus == 1,
		DistanceToCenter: p.DistanceToCC,
		Timezone:         p.Timezone,
		URL:              p.URL,
	}
	if listing.Currency == "BRL" {
		listing.Formatted = currency.FormatBRL(listing.MinTotalPrice)
	}
	return listing
}

func orderBy(sortBy string) string {
	switch sortBy {
	case "price", "distance", "review_score", "popularity",
		"class_descending", "class_ascending", "deals":
		return sortBy
	default:
		return "popularity"
	}
}

func joinAges(ages []int) string {
	parts := make([]string, len(ages))
	for i, age := range ages {
		parts[i] = strconv.Itoa(age)
	}
	return strings.Join(parts, ",")
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking: status %d: %s", e.Status, e.Body)
}
