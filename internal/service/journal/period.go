package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pet-health-journal/internal/adapter/periodcache"
	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// GetPeriod returns one entry per calendar date in [Start, End]. A fresh
// cache entry is returned as is; otherwise the remote aggregate is fetched
// and cached. When the remote read fails or is empty the range is rebuilt
// from the local store and not cached.
func (s *Service) GetPeriod(ctx context.Context, in PeriodInput) ([]domain.PeriodDay, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	key := periodcache.Key{Subject: in.Subject, Start: in.Start, End: in.End}
	if days, ok := s.cache.Get(key); ok {
		s.log.DebugContext(ctx, "period served from cache",
			slog.String("cat", in.Subject),
			slog.String("start", in.Start),
			slog.String("end", in.End),
		)
		return days, nil
	}

	// Taken before the fetch so a write landing mid-flight discards the result.
	gen := s.cache.Generation()

	days, err := s.remote.FetchPeriod(ctx, in.Subject, in.Start, in.End)
	if err == nil && len(days) > 0 {
		if !s.cache.Put(key, days, gen) {
			s.log.DebugContext(ctx, "period result outdated by a write, not cached")
		}
		return days, nil
	}
	if err != nil {
		s.logRemoteMiss(ctx, "period aggregate", err)
	}

	return s.LocalPeriod(ctx, in)
}

// LocalPeriod rebuilds the period from the local store only.
func (s *Service) LocalPeriod(ctx context.Context, in PeriodInput) ([]domain.PeriodDay, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	dates, err := domain.DatesBetween(in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("local period: %w", err)
	}

	out := make([]domain.PeriodDay, 0, len(dates))
	for _, date := range dates {
		key := domain.DayKey(in.Subject, date)
		day := domain.PeriodDay{Date: date}

		if rec, ok := s.store.Daily.Get(key); ok {
			day.Daily = &rec
		}
		toilet, _ := s.store.Toilet.Get(key)
		day.ToiletCount = domain.CountToilet(toilet)
		day.Medicine = s.medicineGiven(in.Subject, date)
		if rec, ok := s.store.LabTest.Get(key); ok {
			day.LabTest = &rec
		}

		out = append(out, day)
	}

	return out, nil
}
