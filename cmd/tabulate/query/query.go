// Package query implements the query command.
package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quou/tabulate/internal/output"
	"github.com/quou/tabulate/internal/sqlview"
)

// Command runs a SQL query against a SQLite database and tabulates the
// result set, with column names as the header.
type Command struct {
	DB    string `arg:"" help:"SQLite database to query." type:"existingfile"`
	SQL   string `arg:"" help:"SQL query to execute."`
	Title string `help:"Title to draw in the top border."`
}

// Run executes the query command.
func (c *Command) Run(p *output.Printer, log *slog.Logger) error {
	ctx := context.Background()

	store, err := sqlview.Open(ctx, c.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close() //nolint:errcheck // Nothing to do with error on program exit.

	cols, rows, err := store.Query(ctx, c.SQL)
	if err != nil {
		return err
	}
	log.Debug("query finished", "columns", len(cols), "rows", len(rows))

	return p.Print(cols, rows, c.Title)
}
