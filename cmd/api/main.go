package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "animal-shelter-api/internal/adapters/storage/memory"
	mg "animal-shelter-api/internal/adapters/storage/mongo"
	pg "animal-shelter-api/internal/adapters/storage/postgres"
	"animal-shelter-api/internal/middleware"
	"animal-shelter-api/internal/platform/config"
	"animal-shelter-api/internal/platform/logger"
	"animal-shelter-api/internal/ports/docstore"
	"animal-shelter-api/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", logger.Fields{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()
	log.Info("store ready", logger.Fields{"driver": string(cfg.ResolvedDriver())})

	opts := router.Options{
		Logger:     log,
		Store:      store,
		CORSOrigin: cfg.CORSOrigin,
	}
	if cfg.RateLimit.RPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		rl.Janitor(ctx, 2*time.Minute)
		opts.RateLimiter = rl
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore abre el backend elegido por STORE_DRIVER (auto => por env).
func openStore(ctx context.Context, cfg config.Config) (docstore.Client, error) {
	switch cfg.ResolvedDriver() {
	case config.DriverMongo:
		c, err := mg.Open(ctx, mg.Config{
			URI:      cfg.Mongo.URI,
			Host:     cfg.Mongo.Host,
			Port:     cfg.Mongo.Port,
			Database: cfg.Mongo.Database,
			Username: cfg.Mongo.Username,
			Password: cfg.Mongo.Password,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.DriverPostgres:
		if cfg.Postgres == "" {
			return nil, errors.New("postgres: DB_DSN required")
		}
		db, err := pg.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return pg.NewClient(db), nil
	default:
		return mem.NewClient(), nil
	}
}
