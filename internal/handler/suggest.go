package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zecfly/zecfly-api/internal/models"
	"github.com/zecfly/zecfly-api/internal/suggest"
)

type DestinationResolver interface {
	SearchDestination(ctx context.Context, query string) ([]models.Suggestion, error)
}

type SuggestHandler struct {
	resolver DestinationResolver
}

func NewSuggestHandler(resolver DestinationResolver) *SuggestHandler {
	return &SuggestHandler{resolver: resolver}
}

func (h *SuggestHandler) Airports(c echo.Context) error {
	query := c.QueryParam("q")
	return c.JSON(http.StatusOK, models.SuggestionResponse{
		Query:       query,
		Suggestions: suggest.Airports(query),
	})
}

func (h *SuggestHandler) Cities(c echo.Context) error {
	query := c.QueryParam("q")
	return c.JSON(http.StatusOK, models.SuggestionResponse{
		Query:       query,
		Suggestions: suggest.Cities(query),
	})
}

// Destinations proxies the hotel provider's place lookup for queries the
// static tables cannot answer.
func (h *SuggestHandler) Destinations(c echo.Context) error {
	query := c.QueryParam("q")
	if len(query) < 2 {
		return c.JSON(http.StatusOK, models.SuggestionResponse{Query: query})
	}

	suggestions, err := h.resolver.SearchDestination(c.Request().Context(), query)
	if err != nil {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "suggest_error",
			Message: "Failed to look up destinations: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	return c.JSON(http.StatusOK, models.SuggestionResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
