package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

const blobTable = "journal_blobs"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type blobRow struct {
	Payload string `db:"payload"`
}

// BlobStore keeps one JSON document per namespace in SQLite.
type BlobStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewBlobStore creates a BlobStore over an opened and migrated database.
func NewBlobStore(db *sql.DB) *BlobStore {
	return &BlobStore{db: db, now: time.Now}
}

func (s *BlobStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	query, args, err := builder.
		Select("payload").
		From(blobTable).
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var row blobRow
	if err := sqlscan.Get(ctx, s.db, &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, fmt.Errorf("blob %s: %w", namespace, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("blob %s: %w", namespace, err)
	}
	return []byte(row.Payload), nil
}

func (s *BlobStore) Save(ctx context.Context, namespace string, blob []byte) error {
	query, args, err := builder.
		Insert(blobTable).
		Columns("namespace", "payload", "updated_at").
		Values(namespace, string(blob), s.now().UTC()).
		Suffix("ON CONFLICT (namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save blob %s: %w", namespace, err)
	}
	return nil
}

func (s *BlobStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
