package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pet-health-journal/internal/adapter/localstore"
	"github.com/heartmarshall/pet-health-journal/internal/adapter/postgres"
	"github.com/heartmarshall/pet-health-journal/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

func TestBlobStore_Integration_RoundTrip(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	s := postgres.NewBlobStore(pool)

	ns := "it_" + uuid.NewString()[:8] + "_daily"

	_, err := s.Load(ctx, ns)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Save(ctx, ns, []byte(`{"a":1}`)))
	require.NoError(t, s.Save(ctx, ns, []byte(`{"a":2}`)))

	got, err := s.Load(ctx, ns)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(got))
	assert.NoError(t, s.Ping(ctx))
}

func TestBlobStore_Integration_BacksLocalStore(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	prefix := "it" + uuid.NewString()[:8]

	store, err := localstore.Open(ctx, postgres.NewBlobStore(pool), prefix, logger)
	require.NoError(t, err)

	rec := domain.DailyRecord{Subject: "mi", Date: "2025-11-20"}
	rec.Weight = domain.NewNumber(3.9)
	require.True(t, store.Daily.Put(ctx, domain.DayKey("mi", "2025-11-20"), rec))

	reopened, err := localstore.Open(ctx, postgres.NewBlobStore(pool), prefix, logger)
	require.NoError(t, err)
	got, ok := reopened.Daily.Get(domain.DayKey("mi", "2025-11-20"))
	require.True(t, ok)
	assert.Equal(t, 3.9, got.Weight.Float64())
}
