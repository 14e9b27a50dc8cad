package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// SaveDaily overwrites the daily record for the subject and date with the
// submitted metrics. The drip volume carried over from a remote aggregate
// is kept, and the toilet counts are re-derived when the toilet log for the
// date has entries.
func (s *Service) SaveDaily(ctx context.Context, in SaveDailyInput) (Saved[domain.DailyRecord], error) {
	if err := in.Validate(); err != nil {
		return Saved[domain.DailyRecord]{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	key := domain.DayKey(in.Subject, in.Date)
	toilet, _ := s.store.Toilet.Get(key)

	rec, err := s.store.Daily.Update(ctx, key, func(cur domain.DailyRecord, ok bool) (domain.DailyRecord, error) {
		next := domain.DailyRecord{
			Subject:      in.Subject,
			Date:         in.Date,
			DailyMetrics: in.DailyMetrics,
			UpdatedAt:    s.stamp(),
		}
		if ok {
			next.Drip = cur.Drip
		}
		if len(toilet) > 0 {
			counts := domain.CountToilet(toilet)
			next.UrineCount, next.FecesCount = counts.Urine, counts.Feces
		}
		return next, nil
	})
	persisted, err := persistOutcome(err)
	if err != nil {
		return Saved[domain.DailyRecord]{}, fmt.Errorf("save daily: %w", err)
	}

	s.mirror.Send(ctx, domain.ActionSaveDaily, rec)
	s.cache.Clear()

	s.log.InfoContext(ctx, "daily record saved",
		slog.String("cat", in.Subject),
		slog.String("date", in.Date),
		slog.Bool("persisted", persisted),
	)

	return Saved[domain.DailyRecord]{Record: rec, Persisted: persisted}, nil
}

// GetDaily returns the daily record for the subject and date. A local copy
// wins; otherwise the remote record is adopted into the local store.
// Returns domain.ErrNotFound when neither side has one.
func (s *Service) GetDaily(ctx context.Context, ref DayRef) (domain.DailyRecord, error) {
	if err := ref.Validate(); err != nil {
		return domain.DailyRecord{}, err
	}

	key := domain.DayKey(ref.Subject, ref.Date)
	if rec, ok := s.store.Daily.Get(key); ok {
		return rec, nil
	}

	remote, err := s.remote.FetchDaily(ctx, ref.Subject, ref.Date)
	if err != nil {
		s.logRemoteMiss(ctx, "daily record", err)
		return domain.DailyRecord{}, domain.ErrNotFound
	}

	return s.adoptDaily(ctx, ref, *remote), nil
}

func (s *Service) adoptDaily(ctx context.Context, ref DayRef, rec domain.DailyRecord) domain.DailyRecord {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	key := domain.DayKey(ref.Subject, ref.Date)
	// A local save may have landed while the remote read was in flight.
	if cur, ok := s.store.Daily.Get(key); ok {
		return cur
	}

	rec.Subject, rec.Date = ref.Subject, ref.Date
	if toilet, _ := s.store.Toilet.Get(key); len(toilet) > 0 {
		counts := domain.CountToilet(toilet)
		rec.UrineCount, rec.FecesCount = counts.Urine, counts.Feces
	}
	if !s.store.Daily.Put(ctx, key, rec) {
		s.log.WarnContext(ctx, "adopted daily record kept in memory only",
			slog.String("cat", ref.Subject),
			slog.String("date", ref.Date),
		)
	}
	return rec
}

// RecountDaily re-derives the urine and feces counts of the daily record
// from the local toilet log and mirrors the result.
func (s *Service) RecountDaily(ctx context.Context, ref DayRef) (Saved[domain.DailyRecord], error) {
	if err := ref.Validate(); err != nil {
		return Saved[domain.DailyRecord]{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	toilet, _ := s.store.Toilet.Get(domain.DayKey(ref.Subject, ref.Date))
	saved, err := s.recountLocked(ctx, ref, toilet)
	if err != nil {
		return Saved[domain.DailyRecord]{}, err
	}
	s.mirror.Send(ctx, domain.ActionSaveDaily, saved.Record)
	s.cache.Clear()
	return saved, nil
}

// recountLocked is the only place daily counts are derived after a toilet
// log change. The caller holds writeMu.
func (s *Service) recountLocked(ctx context.Context, ref DayRef, toilet []domain.ToiletRecord) (Saved[domain.DailyRecord], error) {
	counts := domain.CountToilet(toilet)

	rec, err := s.store.Daily.Update(ctx, domain.DayKey(ref.Subject, ref.Date),
		func(cur domain.DailyRecord, ok bool) (domain.DailyRecord, error) {
			if !ok {
				cur = domain.DailyRecord{Subject: ref.Subject, Date: ref.Date}
			}
			cur.UrineCount, cur.FecesCount = counts.Urine, counts.Feces
			cur.UpdatedAt = s.stamp()
			return cur, nil
		})
	persisted, err := persistOutcome(err)
	if err != nil {
		return Saved[domain.DailyRecord]{}, fmt.Errorf("recount daily: %w", err)
	}
	return Saved[domain.DailyRecord]{Record: rec, Persisted: persisted}, nil
}

// Overview returns the daily record together with the toilet log of the
// date. A missing daily record is reported as a nil Daily, not an error.
func (s *Service) Overview(ctx context.Context, ref DayRef) (domain.DayOverview, error) {
	if err := ref.Validate(); err != nil {
		return domain.DayOverview{}, err
	}

	out := domain.DayOverview{Date: ref.Date}

	daily, err := s.GetDaily(ctx, ref)
	switch {
	case err == nil:
		out.Daily = &daily
	case !isNotFound(err):
		return domain.DayOverview{}, err
	}

	toilet, err := s.ListToilet(ctx, ref)
	if err != nil {
		return domain.DayOverview{}, err
	}
	out.Toilet = toilet
	out.ToiletCount = domain.CountToilet(toilet)

	// Adopting a remote toilet log re-derives the stored counts.
	if rec, ok := s.store.Daily.Get(domain.DayKey(ref.Subject, ref.Date)); ok {
		out.Daily = &rec
	}

	return out, nil
}
