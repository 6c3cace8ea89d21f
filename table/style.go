package table

// Style selects the set of glyphs used to draw a table's borders. The
// drawing algorithm is the same for every style; only the glyphs differ.
type Style int

// Supported border styles.
const (
	// Ascii draws borders with +, - and |. Safe for any terminal or log.
	Ascii Style = iota
	// Single draws borders with single-line box drawing characters.
	Single
	// Double draws borders with double-line box drawing characters.
	Double
)

// ParseStyle parses a style name as found in configuration. Recognized
// names are "ascii", "single" and "double". Anything else is a
// ConfigurationError, never a silent fallback to a default.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "ascii":
		return Ascii, nil
	case "single":
		return Single, nil
	case "double":
		return Double, nil
	default:
		return Ascii, &ConfigurationError{Style: name}
	}
}

// String returns the configuration name of the style.
func (s Style) String() string {
	switch s {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return "ascii"
	}
}

// glyphs is the full set of border drawing characters for one style. Every
// glyph is exactly one terminal column wide.
type glyphs struct {
	horizontal string
	vertical   string

	topLeft, topJoin, topRight string // Top border.
	sepLeft, sepJoin, sepRight string // Header separator.
	botLeft, botJoin, botRight string // Bottom border.
}

func (s Style) glyphs() glyphs {
	switch s {
	case Single:
		return glyphs{
			horizontal: "─", vertical: "│",
			topLeft: "┌", topJoin: "┬", topRight: "┐",
			sepLeft: "├", sepJoin: "┼", sepRight: "┤",
			botLeft: "└", botJoin: "┴", botRight: "┘",
		}
	case Double:
		return glyphs{
			horizontal: "═", vertical: "║",
			topLeft: "╔", topJoin: "╦", topRight: "╗",
			sepLeft: "╠", sepJoin: "╬", sepRight: "╣",
			botLeft: "╚", botJoin: "╩", botRight: "╝",
		}
	default:
		return glyphs{
			horizontal: "-", vertical: "|",
			topLeft: "+", topJoin: "+", topRight: "+",
			sepLeft: "+", sepJoin: "+", sepRight: "+",
			botLeft: "+", botJoin: "+", botRight: "+",
		}
	}
}
