// Package output writes rendered tables to a destination, applying the
// presentation concerns that sit outside the table core: border style
// selection and blank-line padding around the block.
package output

import (
	"fmt"
	"io"

	"github.com/quou/tabulate/table"
)

// Option configures a Printer.
type Option func(*Printer)

// WithStyle sets the border style for every table the Printer writes.
func WithStyle(s table.Style) Option {
	return func(p *Printer) {
		p.style = s
	}
}

// WithPadding controls whether each table is surrounded by exactly one
// leading and one trailing blank line. Enabled by default.
func WithPadding(pad bool) Option {
	return func(p *Printer) {
		p.padding = pad
	}
}

// A Printer renders tables to a writer with a fixed style and padding
// policy, so commands only supply data.
type Printer struct {
	w       io.Writer
	style   table.Style
	padding bool
}

// NewPrinter returns a Printer writing to w. Padding is on and the style is
// ascii unless options say otherwise.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, padding: true}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Print renders one table and writes it followed by a newline. Rendering
// errors are returned before anything is written.
func (p *Printer) Print(header []string, rows [][]string, title string) error {
	out, err := table.Table{
		Header: header,
		Rows:   rows,
		Title:  title,
		Style:  p.style,
	}.Render()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	out += "\n"
	if p.padding {
		out = "\n" + out + "\n"
	}

	if _, err := io.WriteString(p.w, out); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
