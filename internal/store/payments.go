package store

import (
	"context"

	"tvshow_admin/internal/domain"
)

// ListPayments returns every payment with its season expanded. Payments
// whose season no longer exists keep the bare reference.
func (s *Store) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	db := s.DB.WithContext(ctx)
	out := []domain.Payment{}
	if err := db.Preload("Season").Find(&out).Error; err != nil {
		return nil, err
	}

	// Expand the access list of every loaded season once
	index := map[string]int{}
	seasons := []domain.Season{}
	for _, p := range out {
		if p.Season == nil {
			continue
		}
		if _, ok := index[p.Season.ID]; !ok {
			index[p.Season.ID] = len(seasons)
			seasons = append(seasons, *p.Season)
		}
	}
	if err := expandUsers(db, seasons); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Season != nil {
			out[i].Season = &seasons[index[out[i].Season.ID]]
		}
	}
	return out, nil
}

// CreatePayment records p; a zero Date becomes now
func (s *Store) CreatePayment(ctx context.Context, p *domain.Payment) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

// UpdatePayment applies fields and returns the stored record with the bare
// season reference.
func (s *Store) UpdatePayment(ctx context.Context, id string, fields map[string]any) (*domain.Payment, error) {
	db := s.DB.WithContext(ctx)
	var p domain.Payment
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	if len(fields) == 0 {
		return &p, nil
	}
	if err := db.Model(&p).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// DeletePayment removes one payment
func (s *Store) DeletePayment(ctx context.Context, id string) error {
	return deleteByID(s.DB.WithContext(ctx), &domain.Payment{}, id)
}
