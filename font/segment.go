package font

import "github.com/gogpu/shapestat"

// GlyphID identifies a glyph within a font.
type GlyphID uint32

// SegmentOp is the type of outline segment operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour at a point.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to the target point.
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic bezier curve.
	SegmentOpQuadTo

	// SegmentOpCubicTo draws a cubic bezier curve.
	SegmentOpCubicTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// Segment is one outline command.
//
// Args usage by operation:
//   - MoveTo: Args[0] is the target point
//   - LineTo: Args[0] is the target point
//   - QuadTo: Args[0] is the control, Args[1] the target
//   - CubicTo: Args[0], Args[1] are controls, Args[2] the target
type Segment struct {
	Op   SegmentOp
	Args [3]shapestat.Point
}

// Outline is the vector outline of a glyph in font units, y-up.
// Contours are implicitly closed: backends do not emit close commands,
// each MoveTo (and the end of the segment list) terminates the
// preceding contour.
type Outline struct {
	// Segments is the list of outline commands.
	Segments []Segment

	// Advance is the horizontal advance width in font units.
	Advance float64

	// GID is the glyph this outline represents.
	GID GlyphID
}

// IsEmpty reports whether the outline has no segments, as for a space.
func (o *Outline) IsEmpty() bool {
	return len(o.Segments) == 0
}
