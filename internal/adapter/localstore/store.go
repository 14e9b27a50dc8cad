package localstore

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// Store groups the journal collections that share one backend.
type Store struct {
	Daily    *Collection[domain.DailyRecord]
	Toilet   *Collection[[]domain.ToiletRecord]
	Medicine *Collection[domain.MedicineRecord]
	Hospital *Collection[domain.HospitalRecord]
	LabTest  *Collection[domain.LabTestRecord]

	backend Backend
}

// Open creates the collections under the given namespace prefix and loads
// their persisted state. Backend read failures abort; unreadable blobs do not.
func Open(ctx context.Context, backend Backend, prefix string, logger *slog.Logger) (*Store, error) {
	log := logger.With("component", "localstore")

	s := &Store{
		Daily:    newCollection[domain.DailyRecord](prefix+"_daily", backend, log),
		Toilet:   newCollection[[]domain.ToiletRecord](prefix+"_toilet", backend, log),
		Medicine: newCollection[domain.MedicineRecord](prefix+"_medicine", backend, log),
		Hospital: newCollection[domain.HospitalRecord](prefix+"_hospital", backend, log),
		LabTest:  newCollection[domain.LabTestRecord](prefix+"_labtest", backend, log),
		backend:  backend,
	}

	loaders := []func(context.Context) error{
		s.Daily.load, s.Toilet.load, s.Medicine.load, s.Hospital.load, s.LabTest.load,
	}
	for _, load := range loaders {
		if err := load(ctx); err != nil {
			return nil, err
		}
	}

	log.InfoContext(ctx, "local store loaded",
		slog.Int("daily", s.Daily.Len()),
		slog.Int("toilet", s.Toilet.Len()),
		slog.Int("medicine", s.Medicine.Len()),
		slog.Int("hospital", s.Hospital.Len()),
		slog.Int("labtest", s.LabTest.Len()),
	)

	return s, nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks the backend when it supports health checks.
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.backend.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
