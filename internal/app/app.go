package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pet-health-journal/internal/adapter/periodcache"
	"github.com/heartmarshall/pet-health-journal/internal/config"
	"github.com/heartmarshall/pet-health-journal/internal/service/journal"
	"github.com/heartmarshall/pet-health-journal/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, opens the
// local store, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
		slog.Bool("remote", cfg.Remote.Enabled),
	)

	store, closeStore, err := OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	reader, mirror := newRemote(cfg.Remote, logger)
	// Pending mirror writes are flushed after the server stops accepting
	// requests and before the store is closed.
	defer mirror.Wait()

	journalSvc := journal.NewService(logger, JournalCollections(store), reader, mirror, periodcache.New(cfg.Cache.PeriodTTL))

	exportSvc, err := NewExportService(ctx, cfg.Archive, store, logger)
	if err != nil {
		return err
	}

	rl := middleware.NewRateLimiter(5 * time.Minute)
	defer rl.Stop()

	handler := NewRouter(RouterDeps{
		Config:   cfg,
		Store:    store,
		Journal:  journalSvc,
		Export:   exportSvc,
		Limiter:  rl,
		Logger:   logger,
		RemoteOn: cfg.Remote.Enabled,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
