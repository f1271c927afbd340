package repository

import (
	"context"

	"github.com/architect/city-events/internal/common/errors"
	"github.com/architect/city-events/internal/favorites/models"
	"gorm.io/gorm"
)

// FavoriteRepository is the persistence collaborator for the favorites
// collection. Create and Delete fail with WriteError; Delete of a missing
// record is a WriteError too, per the collaborator contract.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.FavoriteRecord, error)
	Create(ctx context.Context, record *models.FavoriteRecord) error
	Delete(ctx context.Context, id string) error
}

type gormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a gorm-backed favorite repository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &gormFavoriteRepository{db: db}
}

func (r *gormFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.FavoriteRecord, error) {
	var records []models.FavoriteRecord
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records)

	if result.Error != nil {
		return nil, errors.Load("favorites", result.Error.Error())
	}
	return records, nil
}

func (r *gormFavoriteRepository) Create(ctx context.Context, record *models.FavoriteRecord) error {
	result := r.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return errors.Write("create", result.Error.Error())
	}
	return nil
}

func (r *gormFavoriteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.FavoriteRecord{}, "id = ?", id)
	if result.Error != nil {
		return errors.Write("delete", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.Write("delete", "favorite record not found")
	}
	return nil
}
