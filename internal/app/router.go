package app

import (
	"fmt"

	"tvshow_admin/internal/api"
	"tvshow_admin/internal/auth"
	"tvshow_admin/internal/config"
	"tvshow_admin/internal/middleware"
	"tvshow_admin/internal/ratelimit"
	"tvshow_admin/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps are the services the router is built from
type Deps struct {
	Config    *config.Config
	Store     *store.Store
	Auth      auth.Authenticator
	Limiter   ratelimit.Store
	Log       logrus.FieldLogger // Access log
	ErrorSink logrus.FieldLogger // Full error records
}

// NewRouter builds the gin engine with the global middleware chain and
// every route of the admin API.
func NewRouter(d Deps) (*gin.Engine, error) {
	cfg := d.Config
	r := gin.New()

	// Client addresses come from the socket unless a trusted proxy forwarded
	// the request
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.ErrorHandler(d.ErrorSink),
		middleware.Recovery(),
		cors.New(corsConfig(cfg.CORSOrigins)),
		middleware.SecurityHeaders(cfg.IsProd),
		middleware.BodyLimit(cfg.BodyLimitBytes),
		middleware.RateLimitMiddleware(d.Limiter, cfg.RateLimitMax, cfg.RateLimitWindow),
	)

	// Health check
	r.GET("/health", api.HealthHandler(d.Store))

	admin := middleware.AdminOnlyMiddleware(d.Auth)
	s := d.Store

	g := r.Group(cfg.APIPrefix)
	{
		g.POST("/auth/token", api.TokenHandler(s, cfg.JWTSecret))

		g.GET("/tvseries", api.ListTVSeriesHandler(s))
		g.POST("/tvseries", admin, api.CreateTVSeriesHandler(s))
		g.PUT("/tvseries/:id", admin, api.UpdateTVSeriesHandler(s))
		g.DELETE("/tvseries/:id", admin, api.DeleteTVSeriesHandler(s))

		g.GET("/seasons/:tvSeriesId", api.ListSeasonsHandler(s))
		g.POST("/seasons", admin, api.CreateSeasonHandler(s))
		g.PUT("/seasons/:id", admin, api.UpdateSeasonHandler(s))
		g.DELETE("/seasons/:id", admin, api.DeleteSeasonHandler(s))

		g.GET("/episodes/:seasonId", api.ListEpisodesHandler(s))
		g.POST("/episodes", admin, api.CreateEpisodeHandler(s))
		g.PUT("/episodes/:id", admin, api.UpdateEpisodeHandler(s))
		g.DELETE("/episodes/:id", admin, api.DeleteEpisodeHandler(s))

		g.GET("/payments", admin, api.ListPaymentsHandler(s))
		g.POST("/payments", admin, api.CreatePaymentHandler(s))
		g.PUT("/payments/:id", admin, api.UpdatePaymentHandler(s))
		g.DELETE("/payments/:id", admin, api.DeletePaymentHandler(s))
	}

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-User-Id"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
