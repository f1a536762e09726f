package shapestat

// PathSink consumes path-construction commands in drawing order.
//
// Implementations may reject malformed sequences (for example a
// drawing command issued before any MoveTo); callers should stop
// feeding a sink once it has returned an error.
type PathSink interface {
	// MoveTo starts a new subpath at p.
	MoveTo(p Point) error

	// LineTo draws a straight segment from the current point to p.
	LineTo(p Point) error

	// QuadTo draws a quadratic Bezier from the current point through
	// control point c to p.
	QuadTo(c, p Point) error

	// CubicTo draws a cubic Bezier from the current point through
	// control points c1 and c2 to p.
	CubicTo(c1, c2, p Point) error

	// ClosePath seals the current subpath, drawing an implicit line
	// back to its start point if needed.
	ClosePath() error
}

// TransformSink applies an affine transformation to every point before
// forwarding the command to the wrapped sink. It is the caller-side
// normalization hook: for example, glyph outlines in font units are
// measured through a Scale(1/upem, 1/upem) transform so statistics
// come out in em units.
type TransformSink struct {
	M    Matrix
	Sink PathSink
}

// MoveTo implements PathSink.
func (t TransformSink) MoveTo(p Point) error {
	return t.Sink.MoveTo(t.M.TransformPoint(p))
}

// LineTo implements PathSink.
func (t TransformSink) LineTo(p Point) error {
	return t.Sink.LineTo(t.M.TransformPoint(p))
}

// QuadTo implements PathSink.
func (t TransformSink) QuadTo(c, p Point) error {
	return t.Sink.QuadTo(t.M.TransformPoint(c), t.M.TransformPoint(p))
}

// CubicTo implements PathSink.
func (t TransformSink) CubicTo(c1, c2, p Point) error {
	return t.Sink.CubicTo(t.M.TransformPoint(c1), t.M.TransformPoint(c2), t.M.TransformPoint(p))
}

// ClosePath implements PathSink.
func (t TransformSink) ClosePath() error {
	return t.Sink.ClosePath()
}
