// Package render implements the render command.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/quou/tabulate/internal/output"
)

// Command renders CSV or TSV data as a table.
type Command struct {
	Path   string `arg:"" help:"File to render. Reads stdin when omitted." optional:"" type:"existingfile"`
	TSV    bool   `help:"Parse input as tab-separated values."`
	Header bool   `help:"Treat the first record as the header row."`
	Title  string `help:"Title to draw in the top border."`
}

// Run executes the render command.
func (c *Command) Run(p *output.Printer) error {
	var r io.Reader = os.Stdin
	if c.Path != "" {
		f, err := os.Open(c.Path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close() //nolint:errcheck // Read-only file.
		r = f
	}

	cr := csv.NewReader(r)
	if c.TSV {
		cr.Comma = '\t'
	}
	// Ragged input is the renderer's contract to report, with row indices.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var header []string
	rows := records
	if c.Header && len(records) > 0 {
		header, rows = records[0], records[1:]
	}

	return p.Print(header, rows, c.Title)
}
