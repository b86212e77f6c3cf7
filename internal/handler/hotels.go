package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/zecfly/zecfly-api/internal/filter"
	"github.com/zecfly/zecfly-api/internal/geocode"
	"github.com/zecfly/zecfly-api/internal/models"
	"github.com/zecfly/zecfly-api/internal/store"
)

type HotelSearcher interface {
	SearchHotels(ctx context.Context, req models.HotelSearchRequest, box geocode.BBox) ([]models.HotelListing, error)
}

type Geocoder interface {
	CityCenter(ctx context.Context, city string) (geocode.Point, error)
}

type HotelsHandler struct {
	searcher HotelSearcher
	geocoder Geocoder
	cache    store.ResultCache
	latest   *store.Store[models.HotelListing]
}

func NewHotelsHandler(searcher HotelSearcher, geocoder Geocoder, cache store.ResultCache) *HotelsHandler {
	return &HotelsHandler{
		searcher: searcher,
		geocoder: geocoder,
		cache:    cache,
		latest:   store.New[models.HotelListing](),
	}
}

func (h *HotelsHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.HotelSearchRequest
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

	// Location resolution happens before the hotel call; an unresolvable
	// city aborts the search as a validation problem.
	center, err := h.geocoder.CityCenter(ctx, req.Location)
	if err != nil {
		if errors.Is(err, geocode.ErrNoMatch) {
			return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:   "location_not_found",
				Message: "No match for location " + req.Location,
				Code:    http.StatusUnprocessableEntity,
			})
		}
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "geocode_error",
			Message: "Failed to resolve location: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	seq := h.latest.Begin()

	listings, err := h.searcher.SearchHotels(ctx, req, geocode.BoxAround(center))
	if err != nil {
		h.latest.Fail(seq)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search hotels: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	if !h.latest.Publish(seq, listings) {
		log.Printf("hotel search seq %d superseded, result set not stored", seq)
	}

	searchID := uuid.NewString()
	if err := h.cache.SaveHotels(ctx, searchID, listings); err != nil {
		log.Printf("failed to cache hotel results for %s: %v", searchID, err)
	}

	filtered := filter.ApplyHotels(listings, req.Filters, req.SortBy)

	return c.JSON(http.StatusOK, models.HotelSearchResponse{
		SearchID:       searchID,
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			TotalResults:    len(filtered),
			UnfilteredCount: len(listings),
			SearchTimeMs:    time.Since(startTime).Milliseconds(),
			Currency:        req.Currency,
		},
		Hotels: filtered,
	})
}

func (h *HotelsHandler) Refine(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.RefineHotelsRequest
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

	listings, found := h.cache.LoadHotels(ctx, req.SearchID)
	if !found {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "search_expired",
			Message: "No stored results for search_id " + req.SearchID,
			Code:    http.StatusNotFound,
		})
	}

	filtered := filter.ApplyHotels(listings, req.Filters, req.SortBy)

	return c.JSON(http.StatusOK, models.RefineHotelsResponse{
		SearchID: req.SearchID,
		Metadata: models.SearchMetadata{
			TotalResults:    len(filtered),
			UnfilteredCount: len(listings),
			SearchTimeMs:    time.Since(startTime).Milliseconds(),
			CacheHit:        true,
		},
		Hotels: filtered,
	})
}
