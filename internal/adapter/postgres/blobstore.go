package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

const blobTable = "journal_blobs"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type blobRow struct {
	Payload []byte `db:"payload"`
}

// BlobStore keeps one JSONB document per namespace.
type BlobStore struct {
	q   Querier
	now func() time.Time
}

// NewBlobStore creates a BlobStore. q is usually a *pgxpool.Pool.
func NewBlobStore(q Querier) *BlobStore {
	return &BlobStore{q: q, now: time.Now}
}

func (s *BlobStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	query, args, err := psql.
		Select("payload").
		From(blobTable).
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var row blobRow
	if err := pgxscan.Get(ctx, s.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, mapError(err, namespace)
	}
	return row.Payload, nil
}

func (s *BlobStore) Save(ctx context.Context, namespace string, blob []byte) error {
	query, args, err := psql.
		Insert(blobTable).
		Columns("namespace", "payload", "updated_at").
		Values(namespace, json.RawMessage(blob), s.now().UTC()).
		Suffix("ON CONFLICT (namespace) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := s.q.Exec(ctx, query, args...); err != nil {
		return mapError(err, namespace)
	}
	return nil
}

// Ping checks connectivity when the querier supports it.
func (s *BlobStore) Ping(ctx context.Context) error {
	if p, ok := s.q.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
