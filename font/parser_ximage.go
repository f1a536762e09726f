package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/shapestat"
)

// ximageParser implements Parser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex. Index 0 is .notdef,
// reported as not found.
func (f *ximageParsedFont) GlyphIndex(r rune) (GlyphID, bool) {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID) (float64, error) {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), f.unitPpem(), xfont.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("font: glyph advance: %w", err)
	}
	return fixedToFloat64(advance), nil
}

// GlyphOutline implements ParsedFont.GlyphOutline.
//
// sfnt reports outlines with y growing downward; the segments are
// flipped to the y-up font-unit convention here so both backends agree.
func (f *ximageParsedFont) GlyphOutline(gid GlyphID) (*Outline, error) {
	var buf sfnt.Buffer

	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), f.unitPpem(), nil)
	if err != nil {
		return nil, fmt.Errorf("font: load glyph %d: %w", gid, err)
	}

	outline := &Outline{GID: gid}
	if len(segments) > 0 {
		outline.Segments = make([]Segment, 0, len(segments))
	}
	for _, seg := range segments {
		out := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
			out.Args[0] = fixedPointUp(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
			out.Args[0] = fixedPointUp(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
			out.Args[0] = fixedPointUp(seg.Args[0])
			out.Args[1] = fixedPointUp(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = SegmentOpCubicTo
			out.Args[0] = fixedPointUp(seg.Args[0])
			out.Args[1] = fixedPointUp(seg.Args[1])
			out.Args[2] = fixedPointUp(seg.Args[2])
		}
		outline.Segments = append(outline.Segments, out)
	}

	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), f.unitPpem(), xfont.HintingNone)
	if err == nil {
		outline.Advance = fixedToFloat64(advance)
	}

	return outline, nil
}

// unitPpem is the ppem at which one pixel equals one font unit, so
// LoadGlyph and GlyphAdvance report unscaled font-unit values.
func (f *ximageParsedFont) unitPpem() fixed.Int26_6 {
	return fixed.Int26_6(f.font.UnitsPerEm()) << 6
}

// fixedPointUp converts a fixed.Point26_6 to a y-up Point.
func fixedPointUp(p fixed.Point26_6) shapestat.Point {
	return shapestat.Pt(fixedToFloat64(p.X), -fixedToFloat64(p.Y))
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
