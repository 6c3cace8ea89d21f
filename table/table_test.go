package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
)

func TestRender(t *testing.T) {
	type args struct {
		table Table
	}
	type want struct {
		output string
	}
	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"SingleCell": {
			reason: "A one-row, one-column ascii table should be exactly three lines.",
			args: args{table: Table{
				Rows: [][]string{{"X"}},
			}},
			want: want{output: strings.Join([]string{
				"+---+",
				"| X |",
				"+---+",
			}, "\n")},
		},
		"HeaderAndRows": {
			reason: "A header row should be followed by a separator, with no separators between data rows.",
			args: args{table: Table{
				Header: []string{"NAME", "AGE"},
				Rows:   [][]string{{"Ann", "30"}, {"Bo", "5"}},
			}},
			want: want{output: strings.Join([]string{
				"+------+-----+",
				"| NAME | AGE |",
				"+------+-----+",
				"| Ann  | 30  |",
				"| Bo   | 5   |",
				"+------+-----+",
			}, "\n")},
		},
		"MultiLineCell": {
			reason: "A cell with an embedded newline should occupy two physical lines, each padded to the column width.",
			args: args{table: Table{
				Rows: [][]string{{"a\nb"}},
			}},
			want: want{output: strings.Join([]string{
				"+---+",
				"| a |",
				"| b |",
				"+---+",
			}, "\n")},
		},
		"MultiLineCellPadsSiblings": {
			reason: "Cells shorter than their row's tallest cell should be padded with blank lines.",
			args: args{table: Table{
				Rows: [][]string{{"a\nbb", "c"}},
			}},
			want: want{output: strings.Join([]string{
				"+----+---+",
				"| a  | c |",
				"| bb |   |",
				"+----+---+",
			}, "\n")},
		},
		"SingleStyle": {
			reason: "The single style should use single-line box drawing glyphs.",
			args: args{table: Table{
				Rows:  [][]string{{"X"}},
				Style: Single,
			}},
			want: want{output: strings.Join([]string{
				"┌───┐",
				"│ X │",
				"└───┘",
			}, "\n")},
		},
		"DoubleStyle": {
			reason: "The double style should use double-line box drawing glyphs, including header junctions.",
			args: args{table: Table{
				Header: []string{"H"},
				Rows:   [][]string{{"x"}},
				Style:  Double,
			}},
			want: want{output: strings.Join([]string{
				"╔═══╗",
				"║ H ║",
				"╠═══╣",
				"║ x ║",
				"╚═══╝",
			}, "\n")},
		},
		"Title": {
			reason: "A title should be drawn inside the top border, after the corner.",
			args: args{table: Table{
				Rows:  [][]string{{"long cell"}},
				Title: "Hi",
			}},
			want: want{output: strings.Join([]string{
				"+Hi---------+",
				"| long cell |",
				"+-----------+",
			}, "\n")},
		},
		"TitleWidensTable": {
			reason: "A title wider than the table should widen the last column, never be truncated.",
			args: args{table: Table{
				Rows:  [][]string{{"x"}},
				Title: "A Longer Title",
			}},
			want: want{output: strings.Join([]string{
				"+A Longer Title+",
				"| x            |",
				"+--------------+",
			}, "\n")},
		},
		"TitleSpansJunctions": {
			reason: "A title should overlay column junctions in the top border, leaving the rest of the pattern intact.",
			args: args{table: Table{
				Rows:  [][]string{{"a", "b"}},
				Title: "TITLE",
			}},
			want: want{output: strings.Join([]string{
				"+TITLE--+",
				"| a | b |",
				"+---+---+",
			}, "\n")},
		},
		"WideGlyphs": {
			reason: "Column widths should be measured in display columns, so double-width glyphs line up.",
			args: args{table: Table{
				Rows: [][]string{{"日本"}, {"go"}},
			}},
			want: want{output: strings.Join([]string{
				"+------+",
				"| 日本 |",
				"| go   |",
				"+------+",
			}, "\n")},
		},
		"EmptyCell": {
			reason: "An empty cell should still be one line tall.",
			args: args{table: Table{
				Rows: [][]string{{"", "b"}},
			}},
			want: want{output: strings.Join([]string{
				"+--+---+",
				"|  | b |",
				"+--+---+",
			}, "\n")},
		},
		"NoRowsNoHeader": {
			reason: "A table with no rows and no header should render only top and bottom borders.",
			args:   args{table: Table{}},
			want: want{output: strings.Join([]string{
				"++",
				"++",
			}, "\n")},
		},
		"NoRowsWithHeader": {
			reason: "A table with a header but no rows should render the header and its separator with no body.",
			args: args{table: Table{
				Header: []string{"A", "B"},
			}},
			want: want{output: strings.Join([]string{
				"+---+---+",
				"| A | B |",
				"+---+---+",
				"+---+---+",
			}, "\n")},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.args.table.Render()
			if err != nil {
				t.Fatalf("Render(): unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want.output, got); diff != "" {
				t.Errorf("\n%s\nRender(): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	type args struct {
		table Table
	}
	type want struct {
		shape *ShapeError
		empty bool
	}
	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"RowShorterThanHeader": {
			reason: "A data row shorter than the header should fail with the row's index and both counts.",
			args: args{table: Table{
				Header: []string{"a", "b"},
				Rows:   [][]string{{"1", "2"}, {"3"}},
			}},
			want: want{shape: &ShapeError{Row: 1, Want: 2, Got: 1}},
		},
		"RowLongerThanFirst": {
			reason: "With no header the first row defines the column count.",
			args: args{table: Table{
				Rows: [][]string{{"a"}, {"b", "c"}},
			}},
			want: want{shape: &ShapeError{Row: 1, Want: 1, Got: 2}},
		},
		"ZeroColumns": {
			reason: "Rows that exist but have no cells should fail with EmptyColumnSetError.",
			args: args{table: Table{
				Rows: [][]string{{}, {}},
			}},
			want: want{empty: true},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := tc.args.table.Render()
			if out != "" {
				t.Errorf("\n%s\nRender(): no partial output should accompany an error, got %q", tc.reason, out)
			}

			if tc.want.empty {
				var ece *EmptyColumnSetError
				if !errors.As(err, &ece) {
					t.Fatalf("\n%s\nRender(): want EmptyColumnSetError, got %v", tc.reason, err)
				}
				return
			}

			var se *ShapeError
			if !errors.As(err, &se) {
				t.Fatalf("\n%s\nRender(): want ShapeError, got %v", tc.reason, err)
			}
			if diff := cmp.Diff(tc.want.shape, se); diff != "" {
				t.Errorf("\n%s\nRender(): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestRenderIsRectangular(t *testing.T) {
	cases := map[string]Table{
		"Uneven":    {Rows: [][]string{{"a", "bbbb"}, {"ccc", "d"}}},
		"MultiLine": {Header: []string{"H1", "H2"}, Rows: [][]string{{"x\nyy\nzzz", "w"}}},
		"Titled":    {Title: "A Very Long Title Indeed", Rows: [][]string{{"a"}}, Style: Double},
		"Wide":      {Rows: [][]string{{"漢字", "a"}, {"b", "ひらがな"}}, Style: Single},
	}

	for name, tbl := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := tbl.Render()
			if err != nil {
				t.Fatalf("Render(): %v", err)
			}
			lines := strings.Split(out, "\n")
			width := runewidth.StringWidth(lines[0])
			for i, line := range lines {
				if w := runewidth.StringWidth(line); w != width {
					t.Errorf("Render(): line %d has display width %d, want %d:\n%s", i, w, width, out)
				}
			}
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	tbl := Table{
		Header: []string{"NAME", "AGE"},
		Rows:   [][]string{{"Ann", "30"}, {"Bo", "5"}},
		Title:  "People",
		Style:  Single,
	}

	first, err := tbl.Render()
	if err != nil {
		t.Fatalf("Render(): %v", err)
	}
	second, err := tbl.Render()
	if err != nil {
		t.Fatalf("Render(): %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Render(): rendering the same table twice should be byte-identical: -first, +second:\n%s", diff)
	}
}

func TestStyleChangesOnlyGlyphs(t *testing.T) {
	tbl := Table{
		Header: []string{"NAME", "AGE"},
		Rows:   [][]string{{"Ann", "30"}, {"Bo", "5"}},
	}

	ascii, err := tbl.Render()
	if err != nil {
		t.Fatalf("Render(): %v", err)
	}

	tbl.Style = Double
	double, err := tbl.Render()
	if err != nil {
		t.Fatalf("Render(): %v", err)
	}

	// Mapping double glyphs back to their ascii counterparts should recover
	// the ascii render exactly: content and alignment are style-independent.
	demoted := strings.NewReplacer(
		"╔", "+", "╦", "+", "╗", "+",
		"╠", "+", "╬", "+", "╣", "+",
		"╚", "+", "╩", "+", "╝", "+",
		"═", "-", "║", "|",
	).Replace(double)

	if diff := cmp.Diff(ascii, demoted); diff != "" {
		t.Errorf("Render(): styles should differ only in border glyphs: -ascii, +double:\n%s", diff)
	}
}
