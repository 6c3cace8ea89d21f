package table

import "fmt"

// A ShapeError reports a row whose cell count differs from the table's
// column count. Row is the index of the offending row in Rows.
type ShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// An EmptyColumnSetError reports a degenerate table whose rows exist but
// have no columns.
type EmptyColumnSetError struct{}

func (e *EmptyColumnSetError) Error() string {
	return "table has no columns"
}

// A ConfigurationError reports an unrecognized border style name.
type ConfigurationError struct {
	Style string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unrecognized table style %q (want ascii, single, or double)", e.Style)
}
