package services

import (
	"context"

	"github.com/architect/city-events/internal/catalog/models"
	"github.com/architect/city-events/internal/catalog/repository"
	"github.com/architect/city-events/internal/common/errors"
	"github.com/architect/city-events/internal/common/validation"
	"github.com/architect/city-events/pkg/logger"
	"github.com/architect/city-events/pkg/metrics"
)

// CatalogService answers stateless catalog queries for the HTTP API. The
// stateful per-session view (current city, stale-load protection) lives in
// Store.
type CatalogService struct {
	repo repository.EventRepository
}

func NewCatalogService(repo repository.EventRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// LoadCatalog fetches and normalizes the full catalog for a city. The
// returned slice is sorted by name (repository contract) and free of
// malformed records; exclusions are reported, never silent.
func (s *CatalogService) LoadCatalog(ctx context.Context, city models.City) ([]models.Event, []DataQualityIssue, error) {
	if !city.Valid() {
		return nil, nil, errors.BadRequest("unknown city")
	}

	records, err := s.repo.ListByCity(ctx, string(city))
	if err != nil {
		metrics.CatalogLoads.WithLabelValues(string(city), "error").Inc()
		return nil, nil, err
	}

	events, issues := NormalizeCatalog(records)
	reportIssues(string(city), issues)

	metrics.CatalogLoads.WithLabelValues(string(city), "success").Inc()
	metrics.CatalogSize.WithLabelValues(string(city)).Set(float64(len(events)))

	return events, issues, nil
}

// ListVisible loads the catalog for a city and applies the filter state
func (s *CatalogService) ListVisible(ctx context.Context, city models.City, state models.FilterState) (*models.ListEventsResponse, error) {
	if err := validation.ValidateRange(state.CostRange.Min, state.CostRange.Max); err != nil {
		return nil, errors.Validation("invalid cost range", err.Error())
	}
	if err := validation.ValidateRange(state.DurationRange.Min, state.DurationRange.Max); err != nil {
		return nil, errors.Validation("invalid duration range", err.Error())
	}

	catalog, issues, err := s.LoadCatalog(ctx, city)
	if err != nil {
		return nil, err
	}

	visible := Visible(catalog, state)
	metrics.FilterEvaluations.Inc()

	return &models.ListEventsResponse{
		City:         city,
		Events:       visible,
		Total:        len(visible),
		CatalogTotal: len(catalog),
		Excluded:     len(issues),
	}, nil
}

// GetEvent fetches one event by id. A record with malformed numerics
// surfaces as a DataQualityError rather than a zeroed event.
func (s *CatalogService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	if id == "" {
		return nil, errors.BadRequest("missing event id")
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event, issues := NormalizeRecord(*record)
	if len(issues) > 0 {
		reportIssues(record.City, issues)
		return nil, issues[0].Err()
	}
	return &event, nil
}

// Categories derives the category universe for a city from its unfiltered
// catalog, paired with presentation info.
func (s *CatalogService) Categories(ctx context.Context, city models.City) ([]models.CategoryInfo, error) {
	catalog, _, err := s.LoadCatalog(ctx, city)
	if err != nil {
		return nil, err
	}

	universe := CategoryUniverse(catalog)
	infos := make([]models.CategoryInfo, len(universe))
	for i, category := range universe {
		infos[i] = models.DisplayForCategory(category)
	}
	return infos, nil
}

func reportIssues(city string, issues []DataQualityIssue) {
	for _, issue := range issues {
		metrics.DataQualityExclusions.WithLabelValues(city, issue.Field).Inc()
		logger.Log.Sugar().Warnw("event excluded for malformed numeric field",
			"event_id", issue.EventID,
			"field", issue.Field,
			"value", issue.Value,
		)
	}
}
