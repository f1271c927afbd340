package auth

import (
	"context"
	"time"

	"github.com/architect/city-events/internal/common/database"
	"github.com/architect/city-events/internal/common/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocalProvider is a sessions-table-backed auth provider for development
// and self-hosted deployments. Unknown usernames are registered on first
// login.
type LocalProvider struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewLocalProvider(db *gorm.DB, ttl time.Duration) *LocalProvider {
	return &LocalProvider{db: db, ttl: ttl}
}

func (p *LocalProvider) Login(ctx context.Context, username string) (*User, string, error) {
	if username == "" {
		return nil, "", errors.BadRequest("missing username")
	}

	var record database.User
	result := p.db.WithContext(ctx).Where("username = ?", username).First(&record)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			return nil, "", errors.Internal("failed to look up user", result.Error.Error())
		}
		record = database.User{
			ID:          uuid.NewString(),
			Username:    username,
			Email:       username + "@local",
			DisplayName: username,
		}
		if err := p.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, "", errors.Internal("failed to register user", err.Error())
		}
	}

	now := time.Now()
	session := database.Session{
		UserID:       record.ID,
		SessionToken: uuid.NewString(),
		ExpiresAt:    now.Add(p.ttl),
		LastActivity: now,
	}
	if err := p.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, "", errors.Internal("failed to open session", err.Error())
	}

	record.LastLogin = &now
	p.db.WithContext(ctx).Model(&record).Update("last_login", now)

	return toUser(&record), session.SessionToken, nil
}

func (p *LocalProvider) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	result := p.db.WithContext(ctx).Delete(&database.Session{}, "session_token = ?", token)
	if result.Error != nil {
		return errors.Internal("failed to close session", result.Error.Error())
	}
	return nil
}

func (p *LocalProvider) UserForToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, nil
	}

	var session database.Session
	result := p.db.WithContext(ctx).Where("session_token = ?", token).First(&session)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to look up session", result.Error.Error())
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, nil
	}

	var record database.User
	if err := p.db.WithContext(ctx).First(&record, "id = ?", session.UserID).Error; err != nil {
		return nil, nil
	}

	return toUser(&record), nil
}

func toUser(record *database.User) *User {
	return &User{
		ID:          record.ID,
		Username:    record.Username,
		DisplayName: record.DisplayName,
	}
}
