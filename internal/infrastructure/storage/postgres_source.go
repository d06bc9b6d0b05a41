package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/infrastructure/parser"
	"GazetteDigest/internal/ports"
)

const (
	defaultRankingTable = "dou_section2_ranking"
	dayLayout           = "2006-01-02"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresSource reads manually ranked section 2 documents.
type PostgresSource struct {
	db           *sql.DB
	table        string
	minRelevance int
}

var _ ports.DocumentSource = (*PostgresSource)(nil)

// NewPostgresSource wires a sql.DB; an empty table means the default.
func NewPostgresSource(db *sql.DB, table string, minRelevance int) *PostgresSource {
	if table == "" {
		table = defaultRankingTable
	}
	return &PostgresSource{db: db, table: table, minRelevance: minRelevance}
}

// FetchRanked returns the day's documents ranked at least minRelevance.
func (s *PostgresSource) FetchRanked(ctx context.Context, day time.Time) ([]domain.Document, error) {
	if s.db == nil {
		return nil, nil
	}

	query, args, err := rankedQuery(s.table, s.minRelevance, day)
	if err != nil {
		return nil, fmt.Errorf("build ranked query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ranked: %w", err)
	}

	var docs []domain.Document
	for rows.Next() {
		var (
			row rankedRow
			id  string
		)
		if err := rows.Scan(&id, &row.origin, &row.text, &row.section, &row.edition, &row.url, &row.relevance); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc, err := row.document(id, day)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		docs = append(docs, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration: %w", rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, fmt.Errorf("close rows: %w", closeErr)
	}

	return docs, nil
}

// rankedRow holds the nullable columns of one ranking row.
type rankedRow struct {
	origin, text, section, edition, url sql.NullString
	relevance                           sql.NullInt64
}

// document converts the row, reducing HTML in the full text to plain text.
func (r rankedRow) document(id string, day time.Time) (domain.Document, error) {
	text, err := parser.StripHTML(r.text.String)
	if err != nil {
		return domain.Document{}, fmt.Errorf("document %s text: %w", id, err)
	}
	return domain.Document{
		ID:          id,
		Origin:      r.origin.String,
		FullText:    text,
		Section:     r.section.String,
		Edition:     r.edition.String,
		URL:         r.url.String,
		Relevance:   int(r.relevance.Int64),
		PublishedAt: day,
	}, nil
}

func rankedQuery(table string, minRelevance int, day time.Time) (string, []interface{}, error) {
	return psql.
		Select("identifica", "orgao", "fulltext", "secao", "edicao", "url", "relevancia").
		From(table).
		Where(sq.NotEq{"relevancia": nil}).
		Where(sq.GtOrEq{"relevancia": minRelevance}).
		Where(sq.Eq{"data_pub": day.Format(dayLayout)}).
		OrderBy("identifica").
		ToSql()
}
