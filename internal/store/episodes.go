package store

import (
	"context"

	"tvshow_admin/internal/domain"
)

// ListEpisodes returns the episodes of a season. An unknown season yields an
// empty list.
func (s *Store) ListEpisodes(ctx context.Context, seasonID string) ([]domain.Episode, error) {
	out := []domain.Episode{}
	if err := s.DB.WithContext(ctx).Where("season_id = ?", seasonID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEpisode inserts ep; the season reference is not checked
func (s *Store) CreateEpisode(ctx context.Context, ep *domain.Episode) error {
	return s.DB.WithContext(ctx).Create(ep).Error
}

// UpdateEpisode applies fields (column -> value) and returns the stored
// record.
func (s *Store) UpdateEpisode(ctx context.Context, id string, fields map[string]any) (*domain.Episode, error) {
	db := s.DB.WithContext(ctx)
	var ep domain.Episode
	if err := db.First(&ep, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	if len(fields) == 0 {
		return &ep, nil
	}
	if err := db.Model(&ep).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := db.First(&ep, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ep, nil
}

// DeleteEpisode removes one episode
func (s *Store) DeleteEpisode(ctx context.Context, id string) error {
	return deleteByID(s.DB.WithContext(ctx), &domain.Episode{}, id)
}
