package font

// Parser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/sfnt vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/sfnt.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
//
// All coordinates and advances are in font units, y-up.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph for a rune and whether the font
	// maps the rune at all.
	GlyphIndex(r rune) (GlyphID, bool)

	// GlyphAdvance returns the horizontal advance width for a glyph
	// in font units.
	GlyphAdvance(gid GlyphID) (float64, error)

	// GlyphOutline returns the vector outline for a glyph in font
	// units. An empty outline (nil Segments) is valid: glyphs like
	// the space have an advance but no contours.
	GlyphOutline(gid GlyphID) (*Outline, error)
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]Parser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser Parser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) Parser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
