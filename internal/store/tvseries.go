package store

import (
	"context"

	"tvshow_admin/internal/domain"
)

// ListTVSeries returns every series
func (s *Store) ListTVSeries(ctx context.Context) ([]domain.TVSeries, error) {
	out := []domain.TVSeries{}
	if err := s.DB.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTVSeries inserts series and assigns its ID
func (s *Store) CreateTVSeries(ctx context.Context, series *domain.TVSeries) error {
	return s.DB.WithContext(ctx).Create(series).Error
}

// UpdateTVSeries applies fields (column -> value) and returns the stored
// record.
func (s *Store) UpdateTVSeries(ctx context.Context, id string, fields map[string]any) (*domain.TVSeries, error) {
	db := s.DB.WithContext(ctx)
	var series domain.TVSeries
	if err := db.First(&series, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	if len(fields) == 0 {
		return &series, nil
	}
	if err := db.Model(&series).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := db.First(&series, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &series, nil
}

// DeleteTVSeries removes the series only. Its seasons and episodes are
// left in place.
func (s *Store) DeleteTVSeries(ctx context.Context, id string) error {
	return deleteByID(s.DB.WithContext(ctx), &domain.TVSeries{}, id)
}
