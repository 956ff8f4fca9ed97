// Package seed fills an empty database with demo series, seasons, episodes,
// payments and users.
package seed

import (
	"context"
	"fmt"

	"tvshow_admin/internal/db"
	"tvshow_admin/internal/domain"
	"tvshow_admin/internal/store"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminEnvKey is the variable WriteAdminEnv stores the admin's ID under
const AdminEnvKey = "ADMIN_USER_ID"

// Result holds what Run inserted
type Result struct {
	Users    []domain.User
	Series   []domain.TVSeries
	Seasons  []domain.Season
	Episodes []domain.Episode
	Payments []domain.Payment
}

// Admin returns the seeded admin user, if any
func (r *Result) Admin() (*domain.User, bool) {
	for i := range r.Users {
		if r.Users[i].IsAdmin() {
			return &r.Users[i], true
		}
	}
	return nil, false
}

var demoUsers = []struct {
	username, password, role string
}{
	{"user1", "password1", domain.RoleUser},
	{"user2", "password2", domain.RoleUser},
	{"admin", "adminpass", domain.RoleAdmin},
}

// seasons: title, series index, user indexes
var demoSeasons = []struct {
	title  string
	series int
	users  []int
}{
	{"Season 1", 0, []int{0, 1}},
	{"Season 2", 0, []int{1}},
	{"Season 3", 1, []int{0}},
	{"Season 4", 2, []int{0, 2}},
	{"Season 5", 3, []int{1}},
	{"Season 6", 4, []int{0, 1, 2}},
}

var demoEpisodes = []struct {
	title  string
	season int
}{
	{"Episode 1", 0}, {"Episode 2", 0},
	{"Episode 1", 1},
	{"Episode 1", 2},
	{"Episode 1", 3},
	{"Episode 1", 4}, {"Episode 2", 4}, {"Episode 3", 4},
}

var demoPayments = []struct {
	user, season int
	amount       float64
}{
	{0, 0, 10}, {1, 1, 15}, {0, 2, 20}, {1, 3, 25}, {2, 4, 30},
}

// Run clears every table and inserts the demo data in one transaction
func Run(ctx context.Context, gdb *gorm.DB) (*Result, error) {
	res := &Result{}
	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearTables(tx); err != nil {
			return err
		}
		s := store.New(tx)

		for _, u := range demoUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", u.username, err)
			}
			user := domain.User{Username: u.username, Password: string(hash), Role: u.role}
			if err := s.CreateUser(ctx, &user); err != nil {
				return fmt.Errorf("create user %s: %w", u.username, err)
			}
			res.Users = append(res.Users, user)
		}

		for i := 1; i <= 5; i++ {
			series := domain.TVSeries{
				Title:       fmt.Sprintf("TV Series %d", i),
				Description: fmt.Sprintf("Description for TV Series %d", i),
			}
			if err := s.CreateTVSeries(ctx, &series); err != nil {
				return fmt.Errorf("create series: %w", err)
			}
			res.Series = append(res.Series, series)
		}

		for _, sd := range demoSeasons {
			season := domain.Season{Title: sd.title, TVSeriesID: res.Series[sd.series].ID}
			userIDs := make([]string, 0, len(sd.users))
			for _, ui := range sd.users {
				userIDs = append(userIDs, res.Users[ui].ID)
			}
			if err := s.CreateSeason(ctx, &season, userIDs); err != nil {
				return fmt.Errorf("create season: %w", err)
			}
			res.Seasons = append(res.Seasons, season)
		}

		for _, ed := range demoEpisodes {
			episode := domain.Episode{Title: ed.title, SeasonID: res.Seasons[ed.season].ID}
			if err := s.CreateEpisode(ctx, &episode); err != nil {
				return fmt.Errorf("create episode: %w", err)
			}
			res.Episodes = append(res.Episodes, episode)
		}

		for _, pd := range demoPayments {
			payment := domain.Payment{
				UserID:   res.Users[pd.user].ID,
				SeasonID: res.Seasons[pd.season].ID,
				Amount:   pd.amount,
			}
			if err := s.CreatePayment(ctx, &payment); err != nil {
				return fmt.Errorf("create payment: %w", err)
			}
			res.Payments = append(res.Payments, payment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func clearTables(tx *gorm.DB) error {
	del := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range db.Models {
		if err := del.Delete(m).Error; err != nil {
			return fmt.Errorf("clear %T: %w", m, err)
		}
	}
	return nil
}

// WriteAdminEnv overwrites path with a single ADMIN_USER_ID entry
func WriteAdminEnv(path, adminID string) error {
	return godotenv.Write(map[string]string{AdminEnvKey: adminID}, path)
}
