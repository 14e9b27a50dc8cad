// Package journal is the reconciliation engine. It applies the write
// protocol (local first, remote mirror in the background, cache
// invalidation) and the read fallback chain (cache, remote, local).
package journal

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pet-health-journal/internal/adapter/periodcache"
	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// Collection is the local store contract for one record kind.
type Collection[T any] interface {
	Get(key string) (T, bool)
	Put(ctx context.Context, key string, v T) bool
	Update(ctx context.Context, key string, fn func(cur T, ok bool) (T, error)) (T, error)
	Values() []T
}

// Collections bundles the local store collections.
type Collections struct {
	Daily    Collection[domain.DailyRecord]
	Toilet   Collection[[]domain.ToiletRecord]
	Medicine Collection[domain.MedicineRecord]
	Hospital Collection[domain.HospitalRecord]
	LabTest  Collection[domain.LabTestRecord]
}

type remoteReader interface {
	FetchDaily(ctx context.Context, subject, date string) (*domain.DailyRecord, error)
	FetchToiletList(ctx context.Context, subject, date string) ([]domain.ToiletRecord, error)
	FetchPeriod(ctx context.Context, subject, start, end string) ([]domain.PeriodDay, error)
}

type remoteMirror interface {
	Send(ctx context.Context, action domain.SyncAction, record any)
}

type periodCache interface {
	Get(k periodcache.Key) ([]domain.PeriodDay, bool)
	Generation() uint64
	Put(k periodcache.Key, days []domain.PeriodDay, gen uint64) bool
	Clear()
}

// Saved is the outcome of a write. The record is always applied in memory;
// Persisted is false when the local backend rejected it.
type Saved[T any] struct {
	Record    T    `json:"record"`
	Persisted bool `json:"persisted"`
}

// Service implements the journal operations.
type Service struct {
	log    *slog.Logger
	store  Collections
	remote remoteReader
	mirror remoteMirror
	cache  periodCache

	now   func() time.Time
	newID func() string

	// writeMu serializes local mutations so derived counts never interleave
	// with the toilet log they are derived from.
	writeMu sync.Mutex
}

// NewService creates a journal Service.
func NewService(
	logger *slog.Logger,
	store Collections,
	remote remoteReader,
	mirror remoteMirror,
	cache periodCache,
) *Service {
	return &Service{
		log:    logger.With("service", "journal"),
		store:  store,
		remote: remote,
		mirror: mirror,
		cache:  cache,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// persistOutcome separates a backend write failure, which is reported but
// not fatal, from real errors.
func persistOutcome(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotPersisted):
		return false, nil
	}
	return false, err
}

func (s *Service) logRemoteMiss(ctx context.Context, what string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		s.log.DebugContext(ctx, "remote has no "+what)
		return
	}
	s.log.WarnContext(ctx, "remote read failed, using local store",
		slog.String("read", what),
		slog.String("error", err.Error()),
	)
}

func (s *Service) stamp() time.Time { return s.now().UTC() }

func isNotFound(err error) bool { return errors.Is(err, domain.ErrNotFound) }
