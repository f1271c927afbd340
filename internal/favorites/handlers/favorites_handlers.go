package handlers

import (
	"net/http"

	"github.com/architect/city-events/internal/common/errors"
	"github.com/architect/city-events/internal/common/middleware"
	"github.com/architect/city-events/internal/favorites/models"
	"github.com/architect/city-events/internal/favorites/services"
	"github.com/gin-gonic/gin"
)

// FavoritesHandler serves the favorites endpoints. Both require auth; the
// user id is resolved by the auth middleware.
type FavoritesHandler struct {
	manager *services.Manager
}

func NewFavoritesHandler(manager *services.Manager) *FavoritesHandler {
	return &FavoritesHandler{manager: manager}
}

// List returns the favorited event ids of the signed-in user
// GET /api/v1/favorites
func (h *FavoritesHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing or invalid authentication"))
		return
	}

	store, err := h.manager.StoreFor(c.Request.Context(), userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	ids := store.EventIDs()
	c.JSON(http.StatusOK, models.FavoritesResponse{
		UserID:   userID,
		EventIDs: ids,
		Total:    len(ids),
	})
}

// Toggle flips the favorite state of one event for the signed-in user
// POST /api/v1/favorites/toggle
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing or invalid authentication"))
		return
	}

	var req models.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("missing event_id"))
		return
	}

	store, err := h.manager.StoreFor(c.Request.Context(), userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	favorited, err := store.Toggle(c.Request.Context(), req.EventID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ToggleResponse{
		EventID:   req.EventID,
		Favorited: favorited,
	})
}

func currentUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}
