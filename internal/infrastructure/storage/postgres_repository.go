package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/ports"
)

// PostgresRepository records published digests into Postgres.
type PostgresRepository struct {
	db *sql.DB
}

var _ ports.DigestRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// AlreadyPublished returns a map with IDs that already went out in a digest.
func (r *PostgresRepository) AlreadyPublished(ctx context.Context, ids []string) (map[string]bool, error) {
	if r.db == nil || len(ids) == 0 {
		return map[string]bool{}, nil
	}

	query, args, err := publishedQuery(ids)
	if err != nil {
		return nil, fmt.Errorf("build published query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query published: %w", err)
	}

	result := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan id: %w", err)
		}
		result[id] = true
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration: %w", rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, fmt.Errorf("close rows: %w", closeErr)
	}

	return result, nil
}

// SaveDigest stores the digest text and the documents it covered in one
// transaction.
func (r *PostgresRepository) SaveDigest(ctx context.Context, record domain.DigestRecord) error {
	if r.db == nil {
		return nil
	}

	digestSQL, digestArgs, err := insertDigestQuery(record)
	if err != nil {
		return fmt.Errorf("build digest insert: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, digestSQL, digestArgs...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert digest: %w", err)
	}

	if len(record.DocumentIDs) > 0 {
		docSQL, docArgs, err := insertDocumentsQuery(record)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("build documents insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, docSQL, docArgs...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert documents: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit digest: %w", err)
	}
	return nil
}

func publishedQuery(ids []string) (string, []interface{}, error) {
	return psql.
		Select("document_id").
		From("published_documents").
		Where(sq.Expr("document_id = ANY(?)", pq.Array(ids))).
		ToSql()
}

func insertDigestQuery(record domain.DigestRecord) (string, []interface{}, error) {
	return psql.
		Insert("published_digests").
		Columns("id", "day", "text").
		Values(record.ID, record.Day.Format(dayLayout), record.Text).
		ToSql()
}

func insertDocumentsQuery(record domain.DigestRecord) (string, []interface{}, error) {
	insert := psql.Insert("published_documents").Columns("document_id", "digest_id")
	for _, id := range record.DocumentIDs {
		insert = insert.Values(id, record.ID)
	}
	return insert.Suffix("ON CONFLICT (document_id) DO NOTHING").ToSql()
}
