// Package font measures glyph outlines.
//
// It extracts vector outlines from TTF/OTF font files through a
// pluggable parser backend and feeds them to the shapestat engine,
// producing per-glyph shape statistics and font-wide aggregates
// (weight, width, slant) in em-normalized units.
//
// # Quick Start
//
//	src, err := font.NewFontSourceFromFile("DejaVuSans.ttf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	glyphs := font.MeasureGlyphs(src.Parsed(), []rune("Hamburgefonstiv"))
//	summary := font.Summarize(glyphs)
//	fmt.Printf("weight %.4f slant %.4f\n", summary.Weight, summary.Slant)
//
// # Coordinates
//
// Outlines are reported in font units with y pointing up, the native
// TrueType convention. Measurement scales them by 1/unitsPerEm, so all
// statistics and advances are in em units and comparable across fonts
// with different unitsPerEm values.
//
// # Parser Backends
//
// Two backends ship with the package: "ximage" (the default, backed by
// golang.org/x/image/font/sfnt) and "gotext" (backed by
// github.com/go-text/typesetting). Select one with WithParser, or
// register a custom backend with RegisterParser.
package font
