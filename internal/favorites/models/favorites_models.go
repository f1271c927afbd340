package models

import "time"

// FavoriteRecord relates a user and an event. One row per (user, event)
// pair; owned by the persistence collaborator.
type FavoriteRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_favorites_user_event;not null" json:"user_id"`
	EventID   string    `gorm:"uniqueIndex:idx_favorites_user_event;not null" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (FavoriteRecord) TableName() string {
	return "favorites"
}

// API request/response DTOs

// ToggleRequest asks to flip the favorite state of one event
type ToggleRequest struct {
	EventID string `json:"event_id" binding:"required"`
}

// ToggleResponse reports the state after the toggle
type ToggleResponse struct {
	EventID   string `json:"event_id"`
	Favorited bool   `json:"favorited"`
}

// FavoritesResponse lists the favorited event ids for a user
type FavoritesResponse struct {
	UserID   string   `json:"user_id"`
	EventIDs []string `json:"event_ids"`
	Total    int      `json:"total"`
}
