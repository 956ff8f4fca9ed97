package store

import (
	"context"
	"testing"

	"tvshow_admin/internal/db/dbtest"
	"tvshow_admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	return New(dbtest.New(t))
}

func mustUser(t *testing.T, s *Store, name, role string) *domain.User {
	t.Helper()
	u := &domain.User{Username: name, Password: "x", Role: role}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func TestUsers(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	admin := mustUser(t, s, "admin", domain.RoleAdmin)
	assert.NotEmpty(t, admin.ID)

	got, err := s.GetUser(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin())

	byName, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byName.ID)

	_, err = s.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.CreateUser(ctx, &domain.User{Username: "root", Password: "x", Role: "superuser"})
	assert.Error(t, err)

	plain := mustUser(t, s, "viewer", "")
	assert.Equal(t, domain.RoleUser, plain.Role)
}

func TestTVSeriesCRUD(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	series := &domain.TVSeries{Title: "Dark", Description: "Time travel in Winden"}
	require.NoError(t, s.CreateTVSeries(ctx, series))
	require.NotEmpty(t, series.ID)

	all, err := s.ListTVSeries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *series, all[0])

	updated, err := s.UpdateTVSeries(ctx, series.ID, map[string]any{"title": "Dark (2017)"})
	require.NoError(t, err)
	assert.Equal(t, "Dark (2017)", updated.Title)
	assert.Equal(t, "Time travel in Winden", updated.Description)

	_, err = s.UpdateTVSeries(ctx, "missing", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteTVSeries(ctx, series.ID))
	assert.ErrorIs(t, s.DeleteTVSeries(ctx, series.ID), ErrNotFound)
}

func TestSeasons_FilterAndExpandUsers(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	u1 := mustUser(t, s, "user1", domain.RoleUser)
	u2 := mustUser(t, s, "user2", domain.RoleUser)

	a := &domain.TVSeries{Title: "A", Description: "a"}
	b := &domain.TVSeries{Title: "B", Description: "b"}
	require.NoError(t, s.CreateTVSeries(ctx, a))
	require.NoError(t, s.CreateTVSeries(ctx, b))

	s1 := &domain.Season{Title: "Season 1", TVSeriesID: a.ID}
	require.NoError(t, s.CreateSeason(ctx, s1, []string{u2.ID, "ghost", u1.ID, u2.ID}))
	require.Len(t, s1.Users, 2)
	assert.Equal(t, u2.ID, s1.Users[0].ID)
	assert.Equal(t, u1.ID, s1.Users[1].ID)

	s2 := &domain.Season{Title: "Season 1", TVSeriesID: b.ID}
	require.NoError(t, s.CreateSeason(ctx, s2, nil))

	seasons, err := s.ListSeasons(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, s1.ID, seasons[0].ID)
	assert.Equal(t, []string{u2.ID, u1.ID}, []string{seasons[0].Users[0].ID, seasons[0].Users[1].ID})
	assert.Equal(t, "user2", seasons[0].Users[0].Username)

	other, err := s.ListSeasons(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Empty(t, other[0].Users)
	assert.NotNil(t, other[0].Users)
}

func TestSeasons_StorageRequiresTitle(t *testing.T) {
	s := newStore(t)
	err := s.CreateSeason(context.Background(), &domain.Season{TVSeriesID: "x"}, nil)
	assert.ErrorIs(t, err, domain.ErrRequiredField)
}

func TestSeasons_UpdateAndDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	u1 := mustUser(t, s, "user1", domain.RoleUser)

	season := &domain.Season{Title: "S1", TVSeriesID: "series"}
	require.NoError(t, s.CreateSeason(ctx, season, nil))

	updated, err := s.UpdateSeason(ctx, season.ID, map[string]any{"title": "Season One"}, []string{u1.ID})
	require.NoError(t, err)
	assert.Equal(t, "Season One", updated.Title)
	require.Len(t, updated.Users, 1)
	assert.Equal(t, u1.ID, updated.Users[0].ID)

	kept, err := s.UpdateSeason(ctx, season.ID, map[string]any{"title": "S1"}, nil)
	require.NoError(t, err)
	assert.Len(t, kept.Users, 1)

	cleared, err := s.UpdateSeason(ctx, season.ID, nil, []string{})
	require.NoError(t, err)
	assert.Empty(t, cleared.Users)

	_, err = s.UpdateSeason(ctx, "missing", map[string]any{"title": "x"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteSeason(ctx, season.ID))
	assert.ErrorIs(t, s.DeleteSeason(ctx, season.ID), ErrNotFound)
}

func TestEpisodesCRUD(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	ep := &domain.Episode{Title: "Pilot", SeasonID: "s1"}
	require.NoError(t, s.CreateEpisode(ctx, ep))
	require.NoError(t, s.CreateEpisode(ctx, &domain.Episode{Title: "Other", SeasonID: "s2"}))

	eps, err := s.ListEpisodes(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, eps, 1)
	assert.Equal(t, "Pilot", eps[0].Title)

	updated, err := s.UpdateEpisode(ctx, ep.ID, map[string]any{"title": "Pilot (Extended)"})
	require.NoError(t, err)
	assert.Equal(t, "Pilot (Extended)", updated.Title)
	assert.Equal(t, "s1", updated.SeasonID)

	_, err = s.UpdateEpisode(ctx, "missing", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.DeleteEpisode(ctx, ep.ID))
	assert.ErrorIs(t, s.DeleteEpisode(ctx, ep.ID), ErrNotFound)

	assert.ErrorIs(t, s.CreateEpisode(ctx, &domain.Episode{Title: "No season"}), domain.ErrRequiredField)
}

func TestPayments_ExpandSeason(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	viewer := mustUser(t, s, "viewer", domain.RoleUser)
	season := &domain.Season{Title: "S1", TVSeriesID: "series"}
	require.NoError(t, s.CreateSeason(ctx, season, []string{viewer.ID}))

	p := &domain.Payment{UserID: "u1", SeasonID: season.ID, Amount: 9.99}
	require.NoError(t, s.CreatePayment(ctx, p))
	assert.False(t, p.Date.IsZero())
	again := &domain.Payment{UserID: "u3", SeasonID: season.ID, Amount: 1}
	require.NoError(t, s.CreatePayment(ctx, again))

	dangling := &domain.Payment{UserID: "u2", SeasonID: "gone", Amount: 5}
	require.NoError(t, s.CreatePayment(ctx, dangling))

	payments, err := s.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 3)
	for _, pm := range payments {
		if pm.ID == dangling.ID {
			assert.Nil(t, pm.Season)
			continue
		}
		require.NotNil(t, pm.Season)
		assert.Equal(t, "S1", pm.Season.Title)
		require.Len(t, pm.Season.Users, 1)
		assert.Equal(t, viewer.ID, pm.Season.Users[0].ID)
	}

	updated, err := s.UpdatePayment(ctx, p.ID, map[string]any{"amount": 12.5})
	require.NoError(t, err)
	assert.Equal(t, 12.5, updated.Amount)
	assert.Equal(t, "u1", updated.UserID)

	_, err = s.UpdatePayment(ctx, "missing", map[string]any{"amount": 1})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.DeletePayment(ctx, p.ID))
	assert.ErrorIs(t, s.DeletePayment(ctx, p.ID), ErrNotFound)
}
