package repository

import (
	"context"

	"github.com/architect/city-events/internal/catalog/models"
	"github.com/architect/city-events/internal/common/errors"
	"gorm.io/gorm"
)

// EventRepository is the persistence collaborator for the event collection.
// Listing is sorted by name; the store downstream must not re-sort.
type EventRepository interface {
	ListByCity(ctx context.Context, city string) ([]models.EventRecord, error)
	GetByID(ctx context.Context, id string) (*models.EventRecord, error)
	Create(ctx context.Context, record *models.EventRecord) error
}

type gormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a gorm-backed event repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) ListByCity(ctx context.Context, city string) ([]models.EventRecord, error) {
	var records []models.EventRecord
	result := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("name ASC").
		Find(&records)

	if result.Error != nil {
		return nil, errors.Load("events", result.Error.Error())
	}
	return records, nil
}

func (r *gormEventRepository) GetByID(ctx context.Context, id string) (*models.EventRecord, error) {
	var record models.EventRecord
	result := r.db.WithContext(ctx).First(&record, "id = ?", id)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("event")
		}
		return nil, errors.Load("event", result.Error.Error())
	}
	return &record, nil
}

func (r *gormEventRepository) Create(ctx context.Context, record *models.EventRecord) error {
	result := r.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return errors.Internal("failed to create event", result.Error.Error())
	}
	return nil
}
