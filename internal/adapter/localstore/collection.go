package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// Collection is a keyed set of records of one kind. Reads are served from
// memory; every write re-serializes the whole collection to the backend.
// A failed backend write keeps the in-memory change and is reported to the
// caller, so the process keeps working while storage is degraded.
type Collection[T any] struct {
	namespace string
	backend   Backend
	log       *slog.Logger

	mu    sync.RWMutex
	items map[string]T
}

func newCollection[T any](namespace string, backend Backend, log *slog.Logger) *Collection[T] {
	return &Collection[T]{
		namespace: namespace,
		backend:   backend,
		log:       log.With("namespace", namespace),
		items:     make(map[string]T),
	}
}

// Namespace returns the backend key of the collection.
func (c *Collection[T]) Namespace() string { return c.namespace }

// Get returns the record stored under key.
func (c *Collection[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[key]
	return v, ok
}

// Put stores v under key and reports whether the write reached the backend.
func (c *Collection[T]) Put(ctx context.Context, key string, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = v
	return c.persistLocked(ctx) == nil
}

// Update replaces the record under key with fn's result while holding the
// collection lock. If fn fails nothing is written and its error is returned.
// A backend failure returns the new value together with an error wrapping
// domain.ErrNotPersisted.
func (c *Collection[T]) Update(ctx context.Context, key string, fn func(cur T, ok bool) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.items[key]
	next, err := fn(cur, ok)
	if err != nil {
		var zero T
		return zero, err
	}

	c.items[key] = next
	return next, c.persistLocked(ctx)
}

// Keys returns all keys in sorted order.
func (c *Collection[T]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Sorted(maps.Keys(c.items))
}

// Values returns all records ordered by key.
func (c *Collection[T]) Values() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := slices.Sorted(maps.Keys(c.items))
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.items[k])
	}
	return out
}

// Snapshot returns a shallow copy of the collection.
func (c *Collection[T]) Snapshot() map[string]T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.items)
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// load replaces the in-memory state with the backend copy. An unreadable
// blob is logged and treated as an empty collection.
func (c *Collection[T]) load(ctx context.Context) error {
	blob, err := c.backend.Load(ctx, c.namespace)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", c.namespace, err)
	}

	items := make(map[string]T)
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &items); err != nil {
			c.log.WarnContext(ctx, "discarding unreadable collection", slog.String("error", err.Error()))
			items = make(map[string]T)
		}
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	return nil
}

func (c *Collection[T]) persistLocked(ctx context.Context) error {
	blob, err := json.Marshal(c.items)
	if err != nil {
		c.log.ErrorContext(ctx, "encode collection", slog.String("error", err.Error()))
		return fmt.Errorf("encode %s: %w: %w", c.namespace, domain.ErrNotPersisted, err)
	}

	// A write accepted in memory must not be abandoned because the caller
	// went away.
	if err := c.backend.Save(context.WithoutCancel(ctx), c.namespace, blob); err != nil {
		c.log.ErrorContext(ctx, "persist collection", slog.String("error", err.Error()))
		return fmt.Errorf("save %s: %w: %w", c.namespace, domain.ErrNotPersisted, err)
	}
	return nil
}
