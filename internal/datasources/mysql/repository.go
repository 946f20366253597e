package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

var (
	_ datasources.ActivityRepository     = (*Repository)(nil)
	_ datasources.DirectoryRepository    = (*Repository)(nil)
	_ datasources.RelationshipRepository = (*Repository)(nil)
	_ datasources.ProfileRepository      = (*Repository)(nil)
	_ datasources.ActionRepository       = (*Repository)(nil)
)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// queryRows runs a built query and scans every row with scan.
func queryRows[T any](
	ctx context.Context,
	db *sql.DB,
	query string,
	args []any,
	scan func(rowScanner) (T, error),
) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	results := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, v)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return results, nil
}

func (r *Repository) count(ctx context.Context, sb *sqlbuilder.SelectBuilder) (int, error) {
	query, args := sb.Build()
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rows: %w", err)
	}
	return n, nil
}

// queryOne runs a single-row query, mapping no rows to domain.ErrNotFound.
func queryOne[T any](
	ctx context.Context,
	db *sql.DB,
	sb *sqlbuilder.SelectBuilder,
	scan func(rowScanner) (T, error),
) (T, error) {
	query, args := sb.Build()
	v, err := scan(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, domain.ErrNotFound
	}
	return v, err
}

func decodeStrings(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding JSON list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func encodeStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

func toArgs[T any](values []T) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
