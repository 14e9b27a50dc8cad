package journal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// SaveMedicine overwrites one dosing slot.
func (s *Service) SaveMedicine(ctx context.Context, in SaveMedicineInput) (Saved[domain.MedicineRecord], error) {
	if err := in.Validate(); err != nil {
		return Saved[domain.MedicineRecord]{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	dose := in.MedicineDose
	dose.Medicines = nonNil(slices.Compact(slices.Sorted(slices.Values(dose.Medicines))))

	rec := domain.MedicineRecord{
		Subject:      in.Subject,
		Date:         in.Date,
		Timing:       in.Timing,
		MedicineDose: dose,
		UpdatedAt:    s.stamp(),
	}
	persisted := s.store.Medicine.Put(ctx, domain.SlotKey(in.Subject, in.Date, in.Timing), rec)

	s.mirror.Send(ctx, domain.ActionSaveMedicine, rec)
	s.cache.Clear()

	s.log.InfoContext(ctx, "medicine record saved",
		slog.String("cat", in.Subject),
		slog.String("date", in.Date),
		slog.String("timing", in.Timing.String()),
	)

	return Saved[domain.MedicineRecord]{Record: rec, Persisted: persisted}, nil
}

// GetMedicine returns one dosing slot from the local store.
func (s *Service) GetMedicine(ctx context.Context, ref DayRef, timing domain.MedicineTiming) (domain.MedicineRecord, error) {
	if err := ref.Validate(); err != nil {
		return domain.MedicineRecord{}, err
	}
	if !timing.IsValid() {
		return domain.MedicineRecord{}, domain.NewValidationError("timing", "must be morning, noon, evening or night")
	}

	rec, ok := s.store.Medicine.Get(domain.SlotKey(ref.Subject, ref.Date, timing))
	if !ok {
		return domain.MedicineRecord{}, fmt.Errorf("medicine %s: %w", timing, domain.ErrNotFound)
	}
	return rec, nil
}

// MedicineDay returns the recorded slots of the date in day order.
func (s *Service) MedicineDay(ctx context.Context, ref DayRef) ([]domain.MedicineRecord, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	out := []domain.MedicineRecord{}
	for _, timing := range domain.MedicineTimings {
		if rec, ok := s.store.Medicine.Get(domain.SlotKey(ref.Subject, ref.Date, timing)); ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// medicineGiven is the union of medicines over every slot of the date.
func (s *Service) medicineGiven(subject, date string) map[domain.MedicineID]bool {
	var given map[domain.MedicineID]bool
	for _, timing := range domain.MedicineTimings {
		rec, ok := s.store.Medicine.Get(domain.SlotKey(subject, date, timing))
		if !ok {
			continue
		}
		for _, id := range rec.Medicines {
			if given == nil {
				given = make(map[domain.MedicineID]bool)
			}
			given[id] = true
		}
	}
	return given
}
