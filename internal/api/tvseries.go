package api

import (
	"net/http"

	"tvshow_admin/internal/domain"
	"tvshow_admin/internal/store"

	"github.com/gin-gonic/gin"
)

// CreateTVSeriesRequest is the body of POST /tvseries
type CreateTVSeriesRequest struct {
	Title       string `json:"title" validate:"required"`       // Series title
	Description string `json:"description" validate:"required"` // Series description
}

// UpdateTVSeriesRequest is the partial body of PUT /tvseries/:id
type UpdateTVSeriesRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (r UpdateTVSeriesRequest) fields() map[string]any {
	f := map[string]any{}
	setIf(f, "title", r.Title)
	setIf(f, "description", r.Description)
	return f
}

// ListTVSeriesHandler returns every TV series
func ListTVSeriesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		series, err := s.ListTVSeries(c.Request.Context())
		if err != nil {
			storeFailure(c, err, "TV series not found", "Failed to fetch TV series")
			return
		}
		c.JSON(http.StatusOK, series)
	}
}

// CreateTVSeriesHandler validates and stores a new TV series
func CreateTVSeriesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTVSeriesRequest
		if !bindAndValidate(c, &req) {
			return
		}
		series := domain.TVSeries{Title: req.Title, Description: req.Description}
		if err := s.CreateTVSeries(c.Request.Context(), &series); err != nil {
			storeFailure(c, err, "TV series not found", "Failed to add TV series")
			return
		}
		c.JSON(http.StatusOK, series)
	}
}

// UpdateTVSeriesHandler applies a partial update
func UpdateTVSeriesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateTVSeriesRequest
		if !bindJSON(c, &req) {
			return
		}
		series, err := s.UpdateTVSeries(c.Request.Context(), c.Param("id"), req.fields())
		if err != nil {
			storeFailure(c, err, "TV series not found", "Failed to update TV series")
			return
		}
		c.JSON(http.StatusOK, series)
	}
}

// DeleteTVSeriesHandler removes a TV series; its seasons are left in place
func DeleteTVSeriesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteTVSeries(c.Request.Context(), c.Param("id")); err != nil {
			storeFailure(c, err, "TV series not found", "Failed to delete TV series")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
