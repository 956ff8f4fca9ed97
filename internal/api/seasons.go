package api

import (
	"errors"
	"net/http"

	"tvshow_admin/internal/domain"
	"tvshow_admin/internal/store"

	"github.com/gin-gonic/gin"
)

// CreateSeasonRequest is the body of POST /seasons. It is not validated
// here; missing title or series fail in storage.
type CreateSeasonRequest struct {
	Title    string   `json:"title"`
	TVSeries string   `json:"tvSeries"`
	UserIDs  []string `json:"userIds"` // Ordered access list
}

// UpdateSeasonRequest is the partial body of PUT /seasons/:id. A present
// userIds replaces the whole access list.
type UpdateSeasonRequest struct {
	Title    *string   `json:"title"`
	TVSeries *string   `json:"tvSeries"`
	UserIDs  *[]string `json:"userIds"`
}

func (r UpdateSeasonRequest) fields() map[string]any {
	f := map[string]any{}
	setIf(f, "title", r.Title)
	setIf(f, "tv_series_id", r.TVSeries)
	return f
}

func (r UpdateSeasonRequest) userIDs() []string {
	if r.UserIDs == nil {
		return nil
	}
	if *r.UserIDs == nil {
		return []string{}
	}
	return *r.UserIDs
}

// ListSeasonsHandler returns the seasons of a series with their users expanded
func ListSeasonsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasons, err := s.ListSeasons(c.Request.Context(), c.Param("tvSeriesId"))
		if err != nil {
			storeFailure(c, err, "Season not found", "Failed to fetch seasons")
			return
		}
		c.JSON(http.StatusOK, seasons)
	}
}

// CreateSeasonHandler stores a season and its access list
func CreateSeasonHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSeasonRequest
		if !bindJSON(c, &req) {
			return
		}
		season := domain.Season{Title: req.Title, TVSeriesID: req.TVSeries}
		if err := s.CreateSeason(c.Request.Context(), &season, req.UserIDs); err != nil {
			storeFailure(c, err, "Season not found", "Failed to add season")
			return
		}
		c.JSON(http.StatusOK, season)
	}
}

// UpdateSeasonHandler applies a partial update. A missing season answers
// 200 with a null body.
func UpdateSeasonHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateSeasonRequest
		if !bindJSON(c, &req) {
			return
		}
		season, err := s.UpdateSeason(c.Request.Context(), c.Param("id"), req.fields(), req.userIDs())
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			storeFailure(c, err, "Season not found", "Failed to update season")
			return
		}
		c.JSON(http.StatusOK, season)
	}
}

// DeleteSeasonHandler removes a season; episodes and payments stay
func DeleteSeasonHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteSeason(c.Request.Context(), c.Param("id")); err != nil {
			storeFailure(c, err, "Season not found", "Failed to delete season")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
