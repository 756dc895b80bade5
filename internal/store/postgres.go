package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rpattn/seedloader/internal/db"
	"github.com/rpattn/seedloader/internal/domain"
)

// postgresStore implements Store on a pgx connection pool. Each upsert is a
// single INSERT ... ON CONFLICT statement and therefore its own implicit
// transaction; no transaction spans rows or entity types.
type postgresStore struct {
	conn *db.Connection
}

// NewPostgresStore creates a Store backed by the given connection.
func NewPostgresStore(conn *db.Connection) Store {
	return &postgresStore{conn: conn}
}

// Upsert inserts or updates the row in the entityType table whose key column
// matches key.
func (s *postgresStore) Upsert(ctx context.Context, entityType string, key string, fields domain.Record) error {
	query, args, err := buildUpsertQuery(entityType, key, fields)
	if err != nil {
		return err
	}
	if _, err := s.conn.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert %s %q: %w", entityType, key, err)
	}
	return nil
}

// buildUpsertQuery renders the INSERT ... ON CONFLICT statement for one
// record. Column order is sorted so the generated SQL is deterministic for a
// given field set.
func buildUpsertQuery(entityType string, key string, fields domain.Record) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("no fields to upsert for %s %q", entityType, key)
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	placeholders := make([]string, len(columns))
	quoted := make([]string, len(columns))
	args := make([]any, len(columns))
	var updates []string
	for idx, column := range columns {
		placeholders[idx] = fmt.Sprintf("$%d", idx+1)
		quoted[idx] = quoteIdentifier(column)
		args[idx] = fields[column]
		if column != "id" {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", quoted[idx], quoted[idx]))
		}
	}

	conflictAction := "DO NOTHING"
	if len(updates) > 0 {
		conflictAction = "DO UPDATE SET " + strings.Join(updates, ", ")
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) %s",
		quoteIdentifier(entityType),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
		conflictAction,
	)
	return query, args, nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
