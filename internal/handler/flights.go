package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/zecfly/zecfly-api/internal/filter"
	"github.com/zecfly/zecfly-api/internal/models"
	"github.com/zecfly/zecfly-api/internal/store"
)

type FlightSearcher interface {
	SearchOffers(ctx context.Context, req models.FlightSearchRequest) ([]models.FlightOffer, error)
}

type FlightsHandler struct {
	searcher FlightSearcher
	cache    store.ResultCache
	latest   *store.Store[models.FlightOffer]
}

func NewFlightsHandler(searcher FlightSearcher, cache store.ResultCache) *FlightsHandler {
	return &FlightsHandler{
		searcher: searcher,
		cache:    cache,
		latest:   store.New[models.FlightOffer](),
	}
}

func (h *FlightsHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.FlightSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	seq := h.latest.Begin()

	offers, err := h.searcher.SearchOffers(ctx, req)
	if err != nil {
		// Terminal for this search: the store is cleared, no partial
		// results, no retry.
		h.latest.Fail(seq)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search flights: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	if !h.latest.Publish(seq, offers) {
		log.Printf("flight search seq %d superseded, result set not stored", seq)
	}

	searchID := uuid.NewString()
	if err := h.cache.SaveFlights(ctx, searchID, offers); err != nil {
		log.Printf("failed to cache flight results for %s: %v", searchID, err)
	}

	filtered := filter.ApplyFlights(offers, req.Filters, req.SortBy)

	return c.JSON(http.StatusOK, models.FlightSearchResponse{
		SearchID:       searchID,
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			TotalResults:    len(filtered),
			UnfilteredCount: len(offers),
			SearchTimeMs:    time.Since(startTime).Milliseconds(),
			Currency:        req.Currency,
		},
		Flights: filtered,
	})
}

// Refine re-runs the filter/sort engine against the stored result set of a
// previous search. No upstream call is made.
func (h *FlightsHandler) Refine(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.RefineFlightsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	offers, found := h.cache.LoadFlights(ctx, req.SearchID)
	if !found {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "search_expired",
			Message: "No stored results for search_id " + req.SearchID,
			Code:    http.StatusNotFound,
		})
	}

	filtered := filter.ApplyFlights(offers, req.Filters, req.SortBy)

	return c.JSON(http.StatusOK, models.RefineFlightsResponse{
		SearchID: req.SearchID,
		Metadata: models.SearchMetadata{
			TotalResults:    len(filtered),
			UnfilteredCount: len(offers),
			SearchTimeMs:    time.Since(startTime).Milliseconds(),
			CacheHit:        true,
		},
		Flights: filtered,
	})
}

// Latest filters the most recent published result set. Filter values come
// in as query parameters.
func (h *FlightsHandler) Latest(c echo.Context) error {
	startTime := time.Now()

	cfg, err := flightFilterFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	offers := h.latest.Snapshot()
	filtered := filter.ApplyFlights(offers, cfg, c.QueryParam("sort_by"))

	return c.JSON(http.StatusOK, models.RefineFlightsResponse{
		Metadata: models.SearchMetadata{
			TotalResults:    len(filtered),
			UnfilteredCount: len(offers),
			SearchTimeMs:    time.Since(startTime).Milliseconds(),
		},
		Flights: filtered,
	})
}

func flightFilterFromQuery(c echo.Context) (*models.FlightFilter, error) {
	cfg := &models.FlightFilter{
		Airlines:  splitParam(c.QueryParam("airlines")),
		Stops:     splitParam(c.QueryParam("stops")),
		Times:     splitParam(c.QueryParam("times")),
		Durations: splitParam(c.QueryParam("durations")),
	}

	if v := c.QueryParam("price_min"); v != "" {
		min, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, models.ValidationError("price_min must be numeric")
		}
		cfg.PriceMin = &min
	}
	if v := c.QueryParam("price_max"); v != "" {
		max, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, models.ValidationError("price_max must be numeric")
		}
		cfg.PriceMax = &max
	}

	return cfg, nil
}

func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
