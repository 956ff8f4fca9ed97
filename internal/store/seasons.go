package store

import (
	"context"

	"tvshow_admin/internal/domain"

	"gorm.io/gorm"
)

// ListSeasons returns the seasons of one series with their access lists
// expanded.
func (s *Store) ListSeasons(ctx context.Context, tvSeriesID string) ([]domain.Season, error) {
	db := s.DB.WithContext(ctx)
	out := []domain.Season{}
	if err := db.Where("tv_series_id = ?", tvSeriesID).Find(&out).Error; err != nil {
		return nil, err
	}
	if err := expandUsers(db, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSeason stores season and its ordered access list. The access list
// may reference users that do not exist; those are dropped on expansion.
func (s *Store) CreateSeason(ctx context.Context, season *domain.Season, userIDs []string) error {
	db := s.DB.WithContext(ctx)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(season).Error; err != nil {
			return err
		}
		return writeAccessList(tx, season.ID, userIDs)
	})
	if err != nil {
		return err
	}
	seasons := []domain.Season{*season}
	if err := expandUsers(db, seasons); err != nil {
		return err
	}
	*season = seasons[0]
	return nil
}

// UpdateSeason applies fields and, when userIDs is non-nil, replaces the
// access list. The result has its users expanded.
func (s *Store) UpdateSeason(ctx context.Context, id string, fields map[string]any, userIDs []string) (*domain.Season, error) {
	db := s.DB.WithContext(ctx)
	var season domain.Season
	if err := db.First(&season, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&season).Updates(fields).Error; err != nil {
				return err
			}
		}
		if userIDs == nil {
			return nil
		}
		if err := tx.Where("season_id = ?", id).Delete(&domain.SeasonUser{}).Error; err != nil {
			return err
		}
		return writeAccessList(tx, id, userIDs)
	})
	if err != nil {
		return nil, err
	}

	seasons := []domain.Season{}
	if err := db.Where("id = ?", id).Find(&seasons).Error; err != nil {
		return nil, err
	}
	if len(seasons) == 0 {
		return nil, ErrNotFound
	}
	if err := expandUsers(db, seasons); err != nil {
		return nil, err
	}
	return &seasons[0], nil
}

// DeleteSeason removes the season and its access list. Episodes and
// payments that reference it are left in place.
func (s *Store) DeleteSeason(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteByID(tx, &domain.Season{}, id); err != nil {
			return err
		}
		return tx.Where("season_id = ?", id).Delete(&domain.SeasonUser{}).Error
	})
}

func writeAccessList(tx *gorm.DB, seasonID string, userIDs []string) error {
	seen := make(map[string]bool, len(userIDs))
	links := make([]domain.SeasonUser, 0, len(userIDs))
	for _, uid := range userIDs {
		if uid == "" || seen[uid] {
			continue
		}
		seen[uid] = true
		links = append(links, domain.SeasonUser{SeasonID: seasonID, UserID: uid, Position: len(links)})
	}
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}

// expandUsers fills Users on every season from the access list table,
// keeping stored order and skipping references to missing users.
func expandUsers(db *gorm.DB, seasons []domain.Season) error {
	if len(seasons) == 0 {
		return nil
	}
	index := make(map[string]int, len(seasons))
	ids := make([]string, len(seasons))
	for i := range seasons {
		seasons[i].Users = []domain.User{}
		index[seasons[i].ID] = i
		ids[i] = seasons[i].ID
	}

	var links []domain.SeasonUser
	if err := db.Where("season_id IN ?", ids).Order("position").Find(&links).Error; err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}

	userIDs := make([]string, 0, len(links))
	for _, l := range links {
		userIDs = append(userIDs, l.UserID)
	}
	var users []domain.User
	if err := db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return err
	}
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, l := range links {
		u, ok := byID[l.UserID]
		if !ok {
			continue
		}
		i := index[l.SeasonID]
		seasons[i].Users = append(seasons[i].Users, u)
	}
	return nil
}
