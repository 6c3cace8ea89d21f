// Package sqlview runs ad-hoc queries against a SQLite database and returns
// result sets as string matrices ready for tabulation.
package sqlview

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQL driver registration.
)

// Store is a read-only view over a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at the given path. The connection is
// query-only; tabulate never writes to the databases it inspects.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON;"); err != nil {
		db.Close() //nolint:errcheck // Already returning an error.
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Query runs a SQL query and scans the entire result set into strings.
// NULLs scan to empty strings; everything else takes its driver string
// form. It returns the column names in result order alongside the rows.
func (s *Store) Query(ctx context.Context, query string) ([]string, [][]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only query, nothing to lose.

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("get columns: %w", err)
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	var out [][]string
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan row: %w", err)
		}

		strs := make([]string, len(cols))
		for i, v := range values {
			if v == nil {
				strs[i] = ""
			} else {
				strs[i] = fmt.Sprintf("%v", v)
			}
		}
		out = append(out, strs)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate rows: %w", err)
	}

	return cols, out, nil
}
