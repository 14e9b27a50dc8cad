package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pet-health-journal/internal/adapter/archive"
	"github.com/heartmarshall/pet-health-journal/internal/adapter/localstore"
	"github.com/heartmarshall/pet-health-journal/internal/adapter/remote"
	"github.com/heartmarshall/pet-health-journal/internal/config"
	"github.com/heartmarshall/pet-health-journal/internal/domain"
	"github.com/heartmarshall/pet-health-journal/internal/service/export"
	"github.com/heartmarshall/pet-health-journal/internal/service/journal"
)

type remoteReader interface {
	FetchDaily(ctx context.Context, subject, date string) (*domain.DailyRecord, error)
	FetchToiletList(ctx context.Context, subject, date string) ([]domain.ToiletRecord, error)
	FetchPeriod(ctx context.Context, subject, start, end string) ([]domain.PeriodDay, error)
}

type remoteMirror interface {
	Send(ctx context.Context, action domain.SyncAction, record any)
	Wait()
}

// newRemote returns the endpoint reader and the background mirror. Both are
// no-ops when the endpoint is disabled.
func newRemote(cfg config.RemoteConfig, logger *slog.Logger) (remoteReader, remoteMirror) {
	if !cfg.Enabled {
		logger.Info("remote endpoint disabled, running local only")
		return remote.Disabled{}, remote.Disabled{}
	}

	client := remote.NewClient(cfg.URL, cfg.RequestTimeout, logger)
	return client, remote.NewMirror(client, cfg.MirrorWorkers, logger)
}

// JournalCollections exposes the store collections to the journal service.
func JournalCollections(store *localstore.Store) journal.Collections {
	return journal.Collections{
		Daily:    store.Daily,
		Toilet:   store.Toilet,
		Medicine: store.Medicine,
		Hospital: store.Hospital,
		LabTest:  store.LabTest,
	}
}

// NewExportService builds the export service, attaching the S3 uploader
// when an archive bucket is configured.
func NewExportService(ctx context.Context, cfg config.ArchiveConfig, store *localstore.Store, logger *slog.Logger) (*export.Service, error) {
	src := export.Sources{
		Daily:    store.Daily,
		Toilet:   store.Toilet,
		Medicine: store.Medicine,
		Hospital: store.Hospital,
		LabTest:  store.LabTest,
	}

	if !cfg.Enabled() {
		return export.NewService(logger, src, nil), nil
	}

	up, err := archive.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("archive uploader: %w", err)
	}
	return export.NewService(logger, src, up), nil
}
