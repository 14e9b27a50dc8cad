package journal

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// SaveHospital records a new clinic visit under a generated id. The drip
// volume is dropped unless the treatments include a drip.
func (s *Service) SaveHospital(ctx context.Context, in SaveHospitalInput) (Saved[domain.HospitalRecord], error) {
	if err := in.Validate(); err != nil {
		return Saved[domain.HospitalRecord]{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	visit := in.HospitalVisit
	visit.Treatments = slices.Clone(visit.Treatments)
	if !visit.HasDrip() {
		visit.DripAmount = domain.Number{}
	}

	rec := domain.HospitalRecord{
		ID:            s.newID(),
		Subject:       in.Subject,
		DateTime:      in.DateTime,
		HospitalVisit: visit,
		CreatedAt:     s.stamp(),
	}
	persisted := s.store.Hospital.Put(ctx, rec.ID, rec)

	s.mirror.Send(ctx, domain.ActionSaveHospital, rec)
	s.cache.Clear()

	s.log.InfoContext(ctx, "hospital record saved",
		slog.String("cat", in.Subject),
		slog.String("datetime", in.DateTime),
		slog.String("id", rec.ID),
	)

	return Saved[domain.HospitalRecord]{Record: rec, Persisted: persisted}, nil
}

// ListHospital returns the subject's visits ordered by visit time.
func (s *Service) ListHospital(ctx context.Context, subject string) ([]domain.HospitalRecord, error) {
	if err := validationResult(checkSubject(nil, subject)); err != nil {
		return nil, err
	}

	out := []domain.HospitalRecord{}
	for _, rec := range s.store.Hospital.Values() {
		if rec.Subject == subject {
			out = append(out, rec)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.HospitalRecord) int {
		return strings.Compare(a.DateTime, b.DateTime)
	})
	return out, nil
}
