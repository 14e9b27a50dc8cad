package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

type poster interface {
	Post(ctx context.Context, action domain.SyncAction, payload map[string]any) error
}

// Mirror dispatches writes in the background with bounded concurrency.
// Callers never wait for the remote and never see its errors; failures
// are logged and dropped.
type Mirror struct {
	poster  poster
	log     *slog.Logger
	group   errgroup.Group
	pending sync.WaitGroup
}

// NewMirror creates a Mirror running at most workers posts at once.
func NewMirror(p poster, workers int, logger *slog.Logger) *Mirror {
	m := &Mirror{
		poster: p,
		log:    logger.With("component", "mirror"),
	}
	m.group.SetLimit(max(workers, 1))
	return m
}

// Send flattens record into a payload, queues the write and returns
// immediately. The caller's cancellation does not abort the post.
func (m *Mirror) Send(ctx context.Context, action domain.SyncAction, record any) {
	payload, err := Payload(record)
	if err != nil {
		m.log.ErrorContext(ctx, "mirror payload",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	ctx = context.WithoutCancel(ctx)

	m.pending.Add(1)
	go func() {
		defer m.pending.Done()
		// Blocks this goroutine, not the caller, while all workers are busy.
		m.group.Go(func() error {
			if err := m.poster.Post(ctx, action, payload); err != nil {
				m.log.WarnContext(ctx, "mirror write failed",
					slog.String("action", action.String()),
					slog.String("error", err.Error()),
				)
			}
			return nil
		})
	}()
}

// Wait blocks until every queued write has finished.
func (m *Mirror) Wait() {
	m.pending.Wait()
	_ = m.group.Wait()
}

// Payload flattens a record into the field map sent with a write action.
func Payload(record any) (map[string]any, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("remote: encode payload: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("remote: payload must be an object: %w", err)
	}
	return out, nil
}
