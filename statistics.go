package shapestat

import "math"

// snapTolerance is the noise floor for correlation and slant: derived
// values at or below it in magnitude are snapped to exactly zero, so
// near-independent axes report as precisely uncorrelated instead of
// carrying floating-point residue. NaN is never snapped.
const snapTolerance = 1e-3

// Statistics derives shape statistics from a Moments accumulator.
//
// It implements PathSink by delegating to the embedded accumulator and
// recomputes all derived values from scratch whenever a subpath closes,
// so after any close the fields describe the cumulative shape drawn so
// far. Before the first close, and whenever the accumulated area is
// exactly zero, every derived field is zero.
//
// Like the raw moments, the derived values are signed: clockwise
// winding negates area and flips sign-sensitive statistics, and
// self-intersecting contours can produce negative variance, which the
// signed standard deviation preserves.
//
// The zero value is ready for use.
type Statistics struct {
	Moments Moments

	MeanX float64
	MeanY float64

	VarianceX float64
	VarianceY float64

	// StddevX and StddevY are signed square roots of the variances:
	// copysign(sqrt(|v|), v), so the sign of a negative variance
	// survives the square root.
	StddevX float64
	StddevY float64

	Covariance float64

	// Correlation is NaN when exactly one axis has zero spread
	// (stddevX·stddevY == 0 with nonzero area).
	Correlation float64

	// Slant is the regression slope of x on y
	// (covariance/varianceY), NaN when varianceY is zero. For glyph
	// shapes it estimates the italic shear.
	Slant float64
}

// NewStatistics returns an accumulator ready to consume path commands.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// Measure feeds the whole path into a fresh Statistics and returns it.
// Statistics reflect the subpaths closed by the path; a trailing
// unclosed subpath contributes segments to the raw moments but does
// not trigger a derivation update.
func Measure(p *Path) (*Statistics, error) {
	s := NewStatistics()
	if err := p.Replay(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Err returns the first error encountered, or nil.
func (s *Statistics) Err() error {
	return s.Moments.Err()
}

// MoveTo implements PathSink. An implicit close of a still-open
// subpath updates the derived statistics, exactly as an explicit
// ClosePath would.
func (s *Statistics) MoveTo(p Point) error {
	if s.Moments.err == nil && s.Moments.open {
		if err := s.ClosePath(); err != nil {
			return err
		}
	}
	return s.Moments.MoveTo(p)
}

// LineTo implements PathSink.
func (s *Statistics) LineTo(p Point) error {
	return s.Moments.LineTo(p)
}

// QuadTo implements PathSink.
func (s *Statistics) QuadTo(c, p Point) error {
	return s.Moments.QuadTo(c, p)
}

// CubicTo implements PathSink.
func (s *Statistics) CubicTo(c1, c2, p Point) error {
	return s.Moments.CubicTo(c1, c2, p)
}

// ClosePath implements PathSink. On success the derived statistics are
// recomputed from the current raw totals.
func (s *Statistics) ClosePath() error {
	if err := s.Moments.ClosePath(); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// recompute rebuilds every derived value from the raw totals. A zero
// accumulated area resets all of them to exactly zero rather than
// dividing: a blank or mutually-cancelling shape reports a clean
// all-zero block, never NaN.
func (s *Statistics) recompute() {
	area := s.Moments.Area
	if area == 0 {
		s.MeanX = 0
		s.MeanY = 0
		s.VarianceX = 0
		s.VarianceY = 0
		s.StddevX = 0
		s.StddevY = 0
		s.Covariance = 0
		s.Correlation = 0
		s.Slant = 0
		return
	}

	// Center of mass.
	s.MeanX = s.Moments.MomentX / area
	s.MeanY = s.Moments.MomentY / area

	// Var(X) = E[X²] - E[X]²
	s.VarianceX = s.Moments.MomentXX/area - s.MeanX*s.MeanX
	s.VarianceY = s.Moments.MomentYY/area - s.MeanY*s.MeanY

	s.StddevX = signedSqrt(s.VarianceX)
	s.StddevY = signedSqrt(s.VarianceY)

	// Cov(X,Y) = E[XY] - E[X]E[Y]
	s.Covariance = s.Moments.MomentXY/area - s.MeanX*s.MeanY

	// Corr(X,Y) = Cov(X,Y) / (stddev(X)·stddev(Y)); undefined when
	// only one axis has spread.
	if s.StddevX*s.StddevY == 0 {
		s.Correlation = math.NaN()
	} else {
		s.Correlation = snap(s.Covariance / (s.StddevX * s.StddevY))
	}

	if s.VarianceY == 0 {
		s.Slant = math.NaN()
	} else {
		s.Slant = snap(s.Covariance / s.VarianceY)
	}
}

// signedSqrt returns copysign(sqrt(|v|), v).
func signedSqrt(v float64) float64 {
	return math.Copysign(math.Sqrt(math.Abs(v)), v)
}

// snap flushes values within snapTolerance of zero to exactly zero.
// NaN compares false and passes through unchanged.
func snap(v float64) float64 {
	if math.Abs(v) <= snapTolerance {
		return 0
	}
	return v
}
