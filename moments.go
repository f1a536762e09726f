package shapestat

import "errors"

// ErrNoSubpath is returned when a drawing command or ClosePath is
// issued without an open subpath, i.e. before any MoveTo. The error is
// sticky: once an accumulator has rejected a command, every later
// command returns the same error and the totals stop updating, so a
// partially fed measurement can only be discarded, not resumed.
var ErrNoSubpath = errors.New("shapestat: path command requires an open subpath (missing MoveTo)")

// Moments accumulates the signed area and the raw first and second
// moments of a shape fed as path commands. Each segment adds its exact
// Green's theorem boundary integral (the form used is the integral of
// F(x,y)·dy along the boundary), so the totals are closed-form
// functions of the control points, independent of any resolution.
//
// The six totals are cumulative across subpaths: a shape made of
// several contours (an "O" with outer and inner ring) accumulates them
// all into the same totals. Counter-clockwise contours in a y-up
// coordinate system contribute positive area, clockwise negative.
//
// The zero value is an empty accumulator ready for MoveTo.
type Moments struct {
	Area     float64
	MomentX  float64
	MomentY  float64
	MomentXX float64
	MomentYY float64
	MomentXY float64

	start   Point // start of the current subpath
	current Point
	open    bool
	err     error
}

// NewMoments returns an empty accumulator.
func NewMoments() *Moments {
	return &Moments{}
}

// Err returns the first error encountered, or nil.
func (m *Moments) Err() error {
	return m.err
}

// MoveTo implements PathSink. It starts a new subpath at p. If a
// subpath is still open it is implicitly closed first: outline sources
// such as font glyph tables often omit explicit closes between
// contours.
func (m *Moments) MoveTo(p Point) error {
	if m.err != nil {
		return m.err
	}
	if m.open {
		if err := m.ClosePath(); err != nil {
			return err
		}
	}
	m.start = p
	m.current = p
	m.open = true
	return nil
}

// LineTo implements PathSink.
func (m *Moments) LineTo(p Point) error {
	if m.err != nil {
		return m.err
	}
	if !m.open {
		return m.fail()
	}
	m.addSegment(
		linePoly(m.current.X, p.X),
		linePoly(m.current.Y, p.Y),
	)
	m.current = p
	return nil
}

// QuadTo implements PathSink.
func (m *Moments) QuadTo(c, p Point) error {
	if m.err != nil {
		return m.err
	}
	if !m.open {
		return m.fail()
	}
	m.addSegment(
		quadPoly(m.current.X, c.X, p.X),
		quadPoly(m.current.Y, c.Y, p.Y),
	)
	m.current = p
	return nil
}

// CubicTo implements PathSink.
func (m *Moments) CubicTo(c1, c2, p Point) error {
	if m.err != nil {
		return m.err
	}
	if !m.open {
		return m.fail()
	}
	m.addSegment(
		cubicPoly(m.current.X, c1.X, c2.X, p.X),
		cubicPoly(m.current.Y, c1.Y, c2.Y, p.Y),
	)
	m.current = p
	return nil
}

// ClosePath implements PathSink. If the current point differs from the
// subpath start, an implicit closing line is accumulated first. After
// the close, drawing commands require a new MoveTo.
func (m *Moments) ClosePath() error {
	if m.err != nil {
		return m.err
	}
	if !m.open {
		return m.fail()
	}
	if m.current != m.start {
		m.addSegment(
			linePoly(m.current.X, m.start.X),
			linePoly(m.current.Y, m.start.Y),
		)
	}
	m.current = m.start
	m.open = false
	return nil
}

// fail records the sticky malformed-sequence error.
func (m *Moments) fail() error {
	m.err = ErrNoSubpath
	return m.err
}

// addSegment accumulates the Green's theorem contribution of one
// boundary segment given its coordinate polynomials x(t), y(t) over
// t in [0, 1]:
//
//	area     += ∫ x y' dt
//	momentX  += ∫ x²/2 y' dt        (∫∫ x dA)
//	momentY  += ∫ x y y' dt         (∫∫ y dA)
//	momentXX += ∫ x³/3 y' dt        (∫∫ x² dA)
//	momentXY += ∫ x² y / 2 y' dt    (∫∫ xy dA)
//	momentYY += ∫ x y² y' dt        (∫∫ y² dA)
func (m *Moments) addSegment(x, y poly) {
	dy := y.deriv()
	xdy := x.mul(dy)

	m.Area += xdy.integral01()
	m.MomentX += x.mul(xdy).integral01() / 2
	m.MomentY += y.mul(xdy).integral01()
	m.MomentXX += x.mul(x).mul(xdy).integral01() / 3
	m.MomentXY += x.mul(y).mul(xdy).integral01() / 2
	m.MomentYY += y.mul(y).mul(xdy).integral01()
}
