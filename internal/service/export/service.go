// Package export renders the local journal as a JSON document and a daily
// CSV sheet, and optionally archives both to object storage.
package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type snapshotter[T any] interface {
	Snapshot() map[string]T
}

type uploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) error
}

// Sources are the local collections an export reads.
type Sources struct {
	Daily    snapshotter[domain.DailyRecord]
	Toilet   snapshotter[[]domain.ToiletRecord]
	Medicine snapshotter[domain.MedicineRecord]
	Hospital snapshotter[domain.HospitalRecord]
	LabTest  snapshotter[domain.LabTestRecord]
}

// Service builds exports from the local store.
type Service struct {
	log      *slog.Logger
	src      Sources
	uploader uploader
	now      func() time.Time
}

// NewService creates an export Service. up may be nil when archiving is not
// configured.
func NewService(logger *slog.Logger, src Sources, up uploader) *Service {
	return &Service{
		log:      logger.With("service", "export"),
		src:      src,
		uploader: up,
		now:      time.Now,
	}
}
