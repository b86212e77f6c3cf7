// Package geocode resolves a city name to coordinates before a hotel
// search is issued. An unresolvable query aborts the search with
// ErrNoMatch; no hotel request is made.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cast"

	"github.com/zecfly/zecfly-api/internal/ratelimit"
)

const limiterHost = "nominatim"

var ErrNoMatch = errors.New("no match for location query")

// bboxDelta is the half-width in degrees of the search box drawn around
// the resolved city center.
const bboxDelta = 0.2

type Config struct {
	BaseURL    string // e.g. https://nominatim.openstreetmap.org
	UserAgent  string
	HTTPClient *http.Client
	Limiter    *ratelimit.HostLimiter
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *ratelimit.HostLimiter
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "zecfly-api/1.0"
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		limiter:    cfg.Limiter,
	}
}

type Point struct {
	Lat float64
	Lon float64
}

type BBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

func (b BBox) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.LatMin, b.LatMax, b.LonMin, b.LonMax)
}

// BoxAround draws the hotel-search bounding box around a city center.
func BoxAround(p Point) BBox {
	return BBox{
		LatMin: p.Lat - bboxDelta,
		LatMax: p.Lat + bboxDelta,
		LonMin: p.Lon - bboxDelta,
		LonMax: p.Lon + bboxDelta,
	}
}

type wireResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// CityCenter resolves a Brazilian city name to its center coordinates.
func (c *Client) CityCenter(ctx context.Context, city string) (Point, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, limiterHost); err != nil {
			return Point{}, err
		}
	}

	params := url.Values{}
	params.Set("city", city)
	params.Set("country", "Brazil")
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Point{}, err
	}
	req.Header.Set("Accept-Language", "pt-BR")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("geocode %q: status %d", city, resp.StatusCode)
	}

	var results []wireResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Point{}, fmt.Errorf("geocode %q response: %w", city, err)
	}
	if len(results) == 0 {
		return Point{}, ErrNoMatch
	}

	lat, err := cast.ToFloat64E(results[0].Lat)
	if err != nil {
		return Point{}, fmt.Errorf("geocode %q: bad latitude %q", city, results[0].Lat)
	}
	lon, err := cast.ToFloat64E(results[0].Lon)
	if err != nil {
		return Point{}, fmt.Errorf("geocode %q: bad longitude %q", city, results[0].Lon)
	}
	return Point{Lat: lat, Lon: lon}, nil
}
