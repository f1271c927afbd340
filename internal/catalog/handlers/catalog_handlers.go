package handlers

import (
	"math/rand"
	"net/http"

	"github.com/architect/city-events/internal/catalog/models"
	"github.com/architect/city-events/internal/catalog/services"
	"github.com/architect/city-events/internal/common/errors"
	"github.com/architect/city-events/internal/common/middleware"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the event catalog endpoints
type CatalogHandler struct {
	service *services.CatalogService
}

func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListEvents returns the visible set for a city and filter parameters
// GET /api/v1/events
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	query, err := bindQuery(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	response, err := h.service.ListVisible(c.Request.Context(), models.City(query.City), filterStateFrom(query))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetEvent returns one event's detail
// GET /api/v1/events/:id
func (h *CatalogHandler) GetEvent(c *gin.Context) {
	event, err := h.service.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Surprise returns one event picked uniformly at random from the visible
// set; 204 when the visible set is empty.
// GET /api/v1/events/surprise
func (h *CatalogHandler) Surprise(c *gin.Context) {
	query, err := bindQuery(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	response, err := h.service.ListVisible(c.Request.Context(), models.City(query.City), filterStateFrom(query))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	if len(response.Events) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, response.Events[rand.Intn(len(response.Events))])
}

// Categories returns the category universe of a city's unfiltered catalog
// GET /api/v1/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	city := models.City(c.Query("city"))

	categories, err := h.service.Categories(c.Request.Context(), city)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CategoriesResponse{
		City:       city,
		Categories: categories,
	})
}

func bindQuery(c *gin.Context) (*models.ListEventsQuery, error) {
	var query models.ListEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, errors.BadRequest("missing or invalid query parameters")
	}
	return &query, nil
}

// filterStateFrom maps query parameters onto a filter state, falling back
// to defaults for omitted bounds.
func filterStateFrom(query *models.ListEventsQuery) models.FilterState {
	state := models.DefaultFilterState()
	state.SearchQuery = query.Search
	state.SelectedCategories = query.Categories

	if query.CostMin != nil {
		state.CostRange.Min = *query.CostMin
	}
	if query.CostMax != nil {
		state.CostRange.Max = *query.CostMax
	}
	if query.DurationMin != nil {
		state.DurationRange.Min = *query.DurationMin
	}
	if query.DurationMax != nil {
		state.DurationRange.Max = *query.DurationMax
	}
	return state
}
