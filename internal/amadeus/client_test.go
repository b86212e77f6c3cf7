package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zecfly/zecfly-api/internal/models"
)

func newTestServer(t *testing.T, tokenCalls *int32, searchHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "test-id", r.Form.Get("client_id"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"token_type":   "Bearer",
			"expires_in":   1799,
		})
	})
	mux.HandleFunc("/v2/shopping/flight-offers", searchHandler)
	return httptest.NewServer(mux)
}

func searchRequest() models.FlightSearchRequest {
	req := models.FlightSearchRequest{
		Origin:        "GRU",
		Destination:   "GIG",
		DepartureDate: "2026-09-01",
		Passengers:    2,
	}
	if err := req.Validate(); err != nil {
		panic(err)
	}
	return req
}

func TestSearchOffersRequestShape(t *testing.T) {
	var tokenCalls int32
	var captured offerSearchRequest

	ts := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"id":    "1",
					"price": map[string]any{"total": "1234.56", "currency": "BRL"},
				},
			},
		})
	})
	defer ts.Close()

	client := New(Config{BaseURL: ts.URL, ClientID: "test-id", ClientSecret: "secret", HTTPClient: ts.Client()})

	offers, err := client.SearchOffers(context.Background(), searchRequest())
	require.NoError(t, err)
	require.Len(t, offers, 1)

	assert.Equal(t, "BRL", captured.CurrencyCode)
	assert.Equal(t, []string{"GDS"}, captured.Sources)
	assert.Equal(t, "ECONOMY", captured.TravelClass)
	require.Len(t, captured.OriginDestinations, 1)
	assert.Equal(t, "GRU", captured.OriginDestinations[0].OriginLocationCode)
	assert.Equal(t, "2026-09-01", captured.OriginDestinations[0].DepartureDateTimeRange.Date)
	assert.Len(t, captured.Travelers, 2)

	assert.Equal(t, 1234.56, offers[0].Price.Total)
	assert.Equal(t, "R$ 1.234,56", offers[0].Price.Formatted)
}

func TestSearchOffersRoundTripAddsSecondLeg(t *testing.T) {
	var tokenCalls int32
	var captured offerSearchRequest

	ts := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})
	defer ts.Close()

	client := New(Config{BaseURL: ts.URL, ClientID: "test-id", ClientSecret: "secret", HTTPClient: ts.Client()})

	req := searchRequest()
	ret := "2026-09-08"
	req.ReturnDate = &ret

	_, err := client.SearchOffers(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, captured.OriginDestinations, 2)
	assert.Equal(t, "GIG", captured.OriginDestinations[1].OriginLocationCode)
	assert.Equal(t, "GRU", captured.OriginDestinations[1].DestinationLocationCode)
	assert.Equal(t, "2026-09-08", captured.OriginDestinations[1].DepartureDateTimeRange.Date)
}

func TestTokenIsCachedAcrossSearches(t *testing.T) {
	var tokenCalls int32

	ts := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})
	defer ts.Close()

	client := New(Config{BaseURL: ts.URL, ClientID: "test-id", ClientSecret: "secret", HTTPClient: ts.Client()})

	for i := 0; i < 3; i++ {
		_, err := client.SearchOffers(context.Background(), searchRequest())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestSearchOffersUpstreamError(t *testing.T) {
	var tokenCalls int32

	ts := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"title":"quota exceeded"}]}`, http.StatusTooManyRequests)
	})
	defer ts.Close()

	client := New(Config{BaseURL: ts.URL, ClientID: "test-id", ClientSecret: "secret", HTTPClient: ts.Client()})

	_, err := client.SearchOffers(context.Background(), searchRequest())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
}
