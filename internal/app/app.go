// Package app assembles the services of the admin API and runs the HTTP
// server with a start/stop lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"tvshow_admin/internal/auth"
	"tvshow_admin/internal/config"
	"tvshow_admin/internal/db"
	"tvshow_admin/internal/logging"
	"tvshow_admin/internal/ratelimit"
	"tvshow_admin/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	cfg         *config.Config
	log         *logrus.Logger
	db          *gorm.DB
	redisClient *redis.Client
	limiter     ratelimit.Store
	sink        *logrus.Logger
	sinkCloser  io.Closer
	httpServer  *http.Server
}

// NewApp connects every backing service and migrates the schema. Redis is
// optional; without it rate-limit counters live in memory.
func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logrus.StandardLogger()

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gdb); err != nil {
		closeDB(gdb, log)
		return nil, err
	}

	sink, sinkCloser, err := logging.NewErrorSink(cfg.ErrorLogPath)
	if err != nil {
		closeDB(gdb, log)
		return nil, fmt.Errorf("open error log: %w", err)
	}

	a := &App{cfg: cfg, log: log, db: gdb, sink: sink, sinkCloser: sinkCloser}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.WithError(err).Warn("redis unreachable, using in-memory rate limiting")
			_ = client.Close()
		} else {
			a.redisClient = client
			a.limiter = ratelimit.NewRedisStore(client)
		}
	}
	if a.limiter == nil {
		a.limiter = ratelimit.NewMemoryStore(time.Minute)
	}
	return a, nil
}

// Authenticator returns the identity resolver selected by AUTH_MODE
func Authenticator(cfg *config.Config, s *store.Store) auth.Authenticator {
	if cfg.AuthMode == config.AuthModeJWT {
		return auth.NewTokenAuthenticator(s, cfg.JWTSecret)
	}
	return auth.NewHeaderAuthenticator(s)
}

// Handler builds the router over the app's services
func (a *App) Handler() (http.Handler, error) {
	if a.cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	s := store.New(a.db)
	r, err := NewRouter(Deps{
		Config:    a.cfg,
		Store:     s,
		Auth:      Authenticator(a.cfg, s),
		Limiter:   a.limiter,
		Log:       a.log,
		ErrorSink: a.sink,
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully and
// releases every service.
func (a *App) Run(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		a.Close()
		return err
	}
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("Server running on %s", a.cfg.AppPort)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		a.Close()
		return err
	case <-ctx.Done():
	}

	a.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = a.httpServer.Shutdown(shutdownCtx)
	a.Close()
	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	a.log.Info("Server exited")
	return nil
}

// Close releases the rate limiter, Redis, the database and the error sink
func (a *App) Close() {
	if err := a.limiter.Close(); err != nil {
		a.log.WithError(err).Error("Error closing rate limiter")
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.WithError(err).Error("Error closing Redis")
		}
	}
	closeDB(a.db, a.log)
	if err := a.sinkCloser.Close(); err != nil {
		a.log.WithError(err).Error("Error closing error log")
	}
}

func closeDB(gdb *gorm.DB, log logrus.FieldLogger) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Error("Error closing database")
	}
}
