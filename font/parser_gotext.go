package font

import (
	"bytes"
	"encoding/binary"
	"fmt"

	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/shapestat"
)

// gotextParser implements Parser using go-text/typesetting.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := gofont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &gotextParsedFont{
		face:      face,
		numGlyphs: numGlyphsFromMaxp(data),
	}, nil
}

// gotextParsedFont implements ParsedFont using a typesetting face.
type gotextParsedFont struct {
	face      *gofont.Face
	numGlyphs int
}

// Name implements ParsedFont.Name. The typesetting backend does not
// expose the name table, so the family name is unavailable.
func (f *gotextParsedFont) Name() string {
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *gotextParsedFont) NumGlyphs() int {
	return f.numGlyphs
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) (GlyphID, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0, false
	}
	return GlyphID(gid), true
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(gid GlyphID) (float64, error) {
	return float64(f.face.HorizontalAdvance(gofont.GID(gid))), nil
}

// GlyphOutline implements ParsedFont.GlyphOutline. typesetting reports
// outlines in y-up font units already, so segments convert one-to-one.
func (f *gotextParsedFont) GlyphOutline(gid GlyphID) (*Outline, error) {
	data := f.face.GlyphData(gofont.GID(gid))
	outline := &Outline{
		GID:     gid,
		Advance: float64(f.face.HorizontalAdvance(gofont.GID(gid))),
	}

	glyph, ok := data.(gofont.GlyphOutline)
	if !ok {
		// Bitmap or SVG glyph: no vector outline to measure.
		return nil, &GlyphError{GID: gid, Err: ErrGlyphNotFound}
	}

	if len(glyph.Segments) > 0 {
		outline.Segments = make([]Segment, 0, len(glyph.Segments))
	}
	for _, seg := range glyph.Segments {
		out := Segment{}
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
			out.Args[0] = gotextPoint(seg.Args[0])
		case opentype.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
			out.Args[0] = gotextPoint(seg.Args[0])
		case opentype.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
			out.Args[0] = gotextPoint(seg.Args[0])
			out.Args[1] = gotextPoint(seg.Args[1])
		case opentype.SegmentOpCubeTo:
			out.Op = SegmentOpCubicTo
			out.Args[0] = gotextPoint(seg.Args[0])
			out.Args[1] = gotextPoint(seg.Args[1])
			out.Args[2] = gotextPoint(seg.Args[2])
		}
		outline.Segments = append(outline.Segments, out)
	}

	return outline, nil
}

// gotextPoint converts a typesetting segment point.
func gotextPoint(p gofont.SegmentPoint) shapestat.Point {
	return shapestat.Pt(float64(p.X), float64(p.Y))
}

// numGlyphsFromMaxp reads the glyph count from the raw maxp table:
// uint32 version followed by uint16 numGlyphs.
func numGlyphsFromMaxp(data []byte) int {
	loader, err := opentype.NewLoader(bytes.NewReader(data))
	if err != nil {
		return 0
	}
	maxpTag := opentype.NewTag('m', 'a', 'x', 'p')
	if !loader.HasTable(maxpTag) {
		return 0
	}
	raw, err := loader.RawTable(maxpTag)
	if err != nil || len(raw) < 6 {
		return 0
	}
	return int(binary.BigEndian.Uint16(raw[4:6]))
}
