package journal

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// SaveLabTest overwrites the lab panel for the subject and date.
func (s *Service) SaveLabTest(ctx context.Context, in SaveLabTestInput) (Saved[domain.LabTestRecord], error) {
	if err := in.Validate(); err != nil {
		return Saved[domain.LabTestRecord]{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	rec := domain.LabTestRecord{
		Subject:   in.Subject,
		Date:      in.Date,
		LabPanel:  in.LabPanel,
		UpdatedAt: s.stamp(),
	}
	persisted := s.store.LabTest.Put(ctx, domain.DayKey(in.Subject, in.Date), rec)

	s.mirror.Send(ctx, domain.ActionSaveLabTest, rec)
	s.cache.Clear()

	s.log.InfoContext(ctx, "lab test saved",
		slog.String("cat", in.Subject),
		slog.String("date", in.Date),
	)

	return Saved[domain.LabTestRecord]{Record: rec, Persisted: persisted}, nil
}

// GetLabTest returns the lab panel for the subject and date from the local
// store. Non-numeric legacy values in quantitative fields load as absent.
func (s *Service) GetLabTest(ctx context.Context, ref DayRef) (domain.LabTestRecord, error) {
	if err := ref.Validate(); err != nil {
		return domain.LabTestRecord{}, err
	}

	rec, ok := s.store.LabTest.Get(domain.DayKey(ref.Subject, ref.Date))
	if !ok {
		return domain.LabTestRecord{}, domain.ErrNotFound
	}
	return rec, nil
}
