package api

import (
	"net/http"

	"tvshow_admin/internal/domain"
	"tvshow_admin/internal/store"

	"github.com/gin-gonic/gin"
)

// CreateEpisodeRequest is the body of POST /episodes
type CreateEpisodeRequest struct {
	Title  string `json:"title"`  // Episode title
	Season string `json:"season"` // Owning season, not checked
}

// UpdateEpisodeRequest is the partial body of PUT /episodes/:id
type UpdateEpisodeRequest struct {
	Title  *string `json:"title"`  // Nil leaves the title unchanged
	Season *string `json:"season"` // Moves the episode to another season
}

func (r UpdateEpisodeRequest) fields() map[string]any {
	f := map[string]any{}
	setIf(f, "title", r.Title)
	setIf(f, "season_id", r.Season)
	return f
}

// ListEpisodesHandler lists the episodes of :seasonId
func ListEpisodesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodes, err := s.ListEpisodes(c.Request.Context(), c.Param("seasonId"))
		if err != nil {
			storeFailure(c, err, "Episode not found", "Failed to fetch episodes")
			return
		}
		c.JSON(http.StatusOK, episodes)
	}
}

// CreateEpisodeHandler stores a new episode. The body is not validated;
// missing fields fail in storage.
func CreateEpisodeHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateEpisodeRequest
		if !bindJSON(c, &req) {
			return
		}
		episode := domain.Episode{Title: req.Title, SeasonID: req.Season}
		if err := s.CreateEpisode(c.Request.Context(), &episode); err != nil {
			storeFailure(c, err, "Episode not found", "Failed to add episode")
			return
		}
		c.JSON(http.StatusOK, episode)
	}
}

// UpdateEpisodeHandler applies a partial update
func UpdateEpisodeHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateEpisodeRequest
		if !bindJSON(c, &req) {
			return
		}
		episode, err := s.UpdateEpisode(c.Request.Context(), c.Param("id"), req.fields())
		if err != nil {
			storeFailure(c, err, "Episode not found", "Failed to update episode")
			return
		}
		c.JSON(http.StatusOK, episode)
	}
}

// DeleteEpisodeHandler removes an episode and answers 204
func DeleteEpisodeHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteEpisode(c.Request.Context(), c.Param("id")); err != nil {
			storeFailure(c, err, "Episode not found", "Failed to delete episode")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
