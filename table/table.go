// Package table renders matrices of strings as bordered text tables, in the
// style familiar from MySQL and Postgres shells. Cells may span multiple
// lines, widths are measured in terminal columns rather than bytes, and the
// border glyphs are selected by a Style.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// A Table is an ordered set of rows with an optional header row, an optional
// title, and a border style. A Table is a plain value: build one, render it,
// discard it. Render never mutates the Table, so a single value may be
// rendered concurrently from independent callers.
type Table struct {
	// Header is an optional header row, rendered above a separator line.
	Header []string

	// Rows are the table's cell values. Every row must have the same number
	// of cells as the header (or as the first row, when there is no header).
	// Cells may contain embedded newlines; each line is laid out separately.
	Rows [][]string

	// Title is an optional caption drawn inside the top border. A title
	// wider than the table widens the table, it is never truncated.
	Title string

	// Style selects the border glyphs. The zero value is Ascii.
	Style Style
}

// Render returns the table as a multi-line string without a trailing
// newline. Every output line has the same display width. It returns a
// ShapeError if any row's cell count disagrees with the table's column
// count, and an EmptyColumnSetError if rows are present but have no cells.
// No partial output accompanies an error.
func (t Table) Render() (string, error) {
	cols, err := t.shape()
	if err != nil {
		return "", err
	}

	g := t.Style.glyphs()
	if cols == 0 {
		return t.renderEmpty(g), nil
	}

	widths := t.columnWidths(cols)

	// A title wider than the table widens the last column to make room.
	if t.Title != "" {
		interior := cols - 1
		for _, w := range widths {
			interior += w + 2
		}
		if tw := runewidth.StringWidth(t.Title); tw > interior {
			widths[cols-1] += tw - interior
		}
	}

	lines := make([]string, 0, len(t.Rows)+4)
	lines = append(lines, overlayTitle(border(g.topLeft, g.topJoin, g.topRight, g.horizontal, widths), t.Title))
	if len(t.Header) > 0 {
		lines = append(lines, rowLines(t.Header, widths, g.vertical)...)
		lines = append(lines, border(g.sepLeft, g.sepJoin, g.sepRight, g.horizontal, widths))
	}
	for _, row := range t.Rows {
		lines = append(lines, rowLines(row, widths, g.vertical)...)
	}
	lines = append(lines, border(g.botLeft, g.botJoin, g.botRight, g.horizontal, widths))

	return strings.Join(lines, "\n"), nil
}

// shape returns the table's column count. The header defines the count when
// present; otherwise the first row does. A table with no header and no rows
// has zero columns, which renders as a bare frame rather than failing.
func (t Table) shape() (int, error) {
	cols := len(t.Header)
	if cols == 0 && len(t.Rows) > 0 {
		cols = len(t.Rows[0])
	}

	for i, row := range t.Rows {
		if len(row) != cols {
			return 0, &ShapeError{Row: i, Want: cols, Got: len(row)}
		}
	}

	if cols == 0 && len(t.Rows) > 0 {
		return 0, &EmptyColumnSetError{}
	}

	return cols, nil
}

// columnWidths returns the display width of each column: the widest line of
// any cell in that column, header included.
func (t Table) columnWidths(cols int) []int {
	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			for _, line := range strings.Split(cell, "\n") {
				if w := runewidth.StringWidth(line); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	if len(t.Header) > 0 {
		measure(t.Header)
	}
	for _, row := range t.Rows {
		measure(row)
	}

	return widths
}

// renderEmpty renders a table with no columns at all: a top and bottom
// border sized to the title, if any.
func (t Table) renderEmpty(g glyphs) string {
	tw := runewidth.StringWidth(t.Title)
	top := g.topLeft + t.Title + g.topRight
	bottom := g.botLeft + strings.Repeat(g.horizontal, tw) + g.botRight
	return top + "\n" + bottom
}

// border draws a horizontal border line: a left glyph, each column's width
// plus one space of margin each side in horizontal glyphs, join glyphs
// between columns, and a right glyph.
func border(left, join, right, horizontal string, widths []int) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(join)
		}
		b.WriteString(strings.Repeat(horizontal, w+2))
	}
	b.WriteString(right)
	return b.String()
}

// overlayTitle splices the title into a border line, starting just after
// the corner glyph. Border glyphs are all one column wide, so rune offsets
// coincide with display columns.
func overlayTitle(line, title string) string {
	if title == "" {
		return line
	}
	r := []rune(line)
	w := runewidth.StringWidth(title)
	return string(r[:1]) + title + string(r[1+w:])
}

// rowLines renders one logical row as one or more physical lines. The row
// is as tall as its tallest cell; shorter cells are padded with blank lines.
func rowLines(cells []string, widths []int, vertical string) []string {
	split := make([][]string, len(cells))
	height := 1
	for i, cell := range cells {
		split[i] = strings.Split(cell, "\n")
		if len(split[i]) > height {
			height = len(split[i])
		}
	}

	lines := make([]string, height)
	for ln := 0; ln < height; ln++ {
		var b strings.Builder
		b.WriteString(vertical)
		for col, parts := range split {
			var part string
			if ln < len(parts) {
				part = parts[ln]
			}
			b.WriteString(" ")
			b.WriteString(runewidth.FillRight(part, widths[col]))
			b.WriteString(" ")
			b.WriteString(vertical)
		}
		lines[ln] = b.String()
	}

	return lines
}
