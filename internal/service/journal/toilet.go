package journal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// ToiletChange is the outcome of a toilet log mutation.
type ToiletChange struct {
	Record    domain.ToiletRecord   `json:"record"`
	List      []domain.ToiletRecord `json:"list"`
	Daily     domain.DailyRecord    `json:"daily"`
	Persisted bool                  `json:"persisted"`
}

// AddToilet appends an event to the date's toilet log, keeps the log
// ordered by time and re-derives the daily counts.
func (s *Service) AddToilet(ctx context.Context, in AddToiletInput) (ToiletChange, error) {
	if err := in.Validate(); err != nil {
		return ToiletChange{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	rec := domain.ToiletRecord{
		ID:          s.newID(),
		Subject:     in.Subject,
		Date:        in.Date,
		ToiletEntry: in.ToiletEntry,
		CreatedAt:   s.stamp(),
	}

	list, err := s.store.Toilet.Update(ctx, domain.DayKey(in.Subject, in.Date),
		func(cur []domain.ToiletRecord, _ bool) ([]domain.ToiletRecord, error) {
			next := append(slices.Clone(cur), rec)
			domain.SortToilet(next)
			return next, nil
		})
	persisted, err := persistOutcome(err)
	if err != nil {
		return ToiletChange{}, fmt.Errorf("add toilet: %w", err)
	}

	s.mirror.Send(ctx, domain.ActionAddToilet, rec)

	ref := DayRef{Subject: in.Subject, Date: in.Date}
	daily, err := s.recountLocked(ctx, ref, list)
	if err != nil {
		return ToiletChange{}, err
	}
	s.mirror.Send(ctx, domain.ActionSaveDaily, daily.Record)
	s.cache.Clear()

	s.log.InfoContext(ctx, "toilet record added",
		slog.String("cat", in.Subject),
		slog.String("date", in.Date),
		slog.String("id", rec.ID),
	)

	return ToiletChange{
		Record:    rec,
		List:      list,
		Daily:     daily.Record,
		Persisted: persisted && daily.Persisted,
	}, nil
}

// DeleteToilet removes an event by id and re-derives the daily counts.
// Deletions are local only; there is no remote action for them.
func (s *Service) DeleteToilet(ctx context.Context, in DeleteToiletInput) (ToiletChange, error) {
	if err := in.Validate(); err != nil {
		return ToiletChange{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var removed domain.ToiletRecord
	list, err := s.store.Toilet.Update(ctx, domain.DayKey(in.Subject, in.Date),
		func(cur []domain.ToiletRecord, _ bool) ([]domain.ToiletRecord, error) {
			idx := slices.IndexFunc(cur, func(r domain.ToiletRecord) bool { return r.ID == in.ID })
			if idx < 0 {
				return nil, domain.ErrNotFound
			}
			removed = cur[idx]
			return slices.Delete(slices.Clone(cur), idx, idx+1), nil
		})
	persisted, err := persistOutcome(err)
	if err != nil {
		return ToiletChange{}, fmt.Errorf("delete toilet: %w", err)
	}

	ref := DayRef{Subject: in.Subject, Date: in.Date}
	daily, err := s.recountLocked(ctx, ref, list)
	if err != nil {
		return ToiletChange{}, err
	}
	s.mirror.Send(ctx, domain.ActionSaveDaily, daily.Record)
	s.cache.Clear()

	s.log.InfoContext(ctx, "toilet record deleted",
		slog.String("cat", in.Subject),
		slog.String("date", in.Date),
		slog.String("id", in.ID),
	)

	return ToiletChange{
		Record:    removed,
		List:      list,
		Daily:     daily.Record,
		Persisted: persisted && daily.Persisted,
	}, nil
}

// ListToilet returns the toilet log for the date. The remote log is read
// first and merged into the local one; the local log is returned unchanged
// when the remote read fails or is empty.
func (s *Service) ListToilet(ctx context.Context, ref DayRef) ([]domain.ToiletRecord, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	key := domain.DayKey(ref.Subject, ref.Date)

	remote, err := s.remote.FetchToiletList(ctx, ref.Subject, ref.Date)
	if err != nil {
		s.logRemoteMiss(ctx, "toilet list", err)
	}
	if len(remote) == 0 {
		local, _ := s.store.Toilet.Get(key)
		return nonNil(slices.Clone(local)), nil
	}

	return s.adoptToilet(ctx, ref, remote), nil
}

func (s *Service) adoptToilet(ctx context.Context, ref DayRef, remote []domain.ToiletRecord) []domain.ToiletRecord {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	key := domain.DayKey(ref.Subject, ref.Date)
	local, _ := s.store.Toilet.Get(key)

	merged, changed := mergeToilet(ref, local, remote, s.newID)
	if !changed {
		return merged
	}

	if !s.store.Toilet.Put(ctx, key, merged) {
		s.log.WarnContext(ctx, "adopted toilet list kept in memory only",
			slog.String("cat", ref.Subject),
			slog.String("date", ref.Date),
		)
	}
	if _, err := s.recountLocked(ctx, ref, merged); err != nil {
		s.log.ErrorContext(ctx, "recount after toilet adoption", slog.String("error", err.Error()))
	}
	s.cache.Clear()

	return merged
}

type toiletSignature struct {
	time   string
	typ    domain.ToiletType
	amount domain.ToiletAmount
}

func signatureOf(r domain.ToiletRecord) toiletSignature {
	return toiletSignature{time: r.Time, typ: r.Type, amount: r.Amount}
}

// mergeToilet folds remote events into the local log. Remote events with a
// known id replace the local copy. Remote events without an id are matched
// against local events by time, type and amount; unmatched ones get a fresh
// id. Local events missing remotely are kept.
func mergeToilet(ref DayRef, local, remote []domain.ToiletRecord, newID func() string) ([]domain.ToiletRecord, bool) {
	merged := slices.Clone(local)
	byID := make(map[string]int, len(merged))
	unmatched := make(map[toiletSignature]int)
	for i, r := range merged {
		byID[r.ID] = i
		unmatched[signatureOf(r)]++
	}

	changed := false
	for _, r := range remote {
		r.Subject, r.Date = ref.Subject, ref.Date

		if r.ID != "" {
			if i, ok := byID[r.ID]; ok {
				if merged[i] != r {
					merged[i] = r
					changed = true
				}
				continue
			}
		} else {
			sig := signatureOf(r)
			if unmatched[sig] > 0 {
				unmatched[sig]--
				continue
			}
			r.ID = newID()
		}

		byID[r.ID] = len(merged)
		merged = append(merged, r)
		changed = true
	}

	domain.SortToilet(merged)
	return nonNil(merged), changed
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
