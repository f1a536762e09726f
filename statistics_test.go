package shapestat

import (
	"math"
	"testing"
)

func TestStatistics_UnitSquare(t *testing.T) {
	s := NewStatistics()
	ccwSquare(t, s)

	oneTwelfth := 1.0 / 12.0
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"MeanX", s.MeanX, 0.5},
		{"MeanY", s.MeanY, 0.5},
		{"VarianceX", s.VarianceX, oneTwelfth},
		{"VarianceY", s.VarianceY, oneTwelfth},
		{"StddevX", s.StddevX, math.Sqrt(oneTwelfth)},
		{"StddevY", s.StddevY, math.Sqrt(oneTwelfth)},
		{"Covariance", s.Covariance, 0},
		{"Correlation", s.Correlation, 0},
		{"Slant", s.Slant, 0},
	}
	for _, tt := range tests {
		if !approx(tt.got, tt.want, 1e-12) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestStatistics_ClockwiseSquare(t *testing.T) {
	s := NewStatistics()
	s.MoveTo(Pt(0, 0))
	s.LineTo(Pt(0, 1))
	s.LineTo(Pt(1, 1))
	s.LineTo(Pt(1, 0))
	if err := s.ClosePath(); err != nil {
		t.Fatal(err)
	}

	if !approx(s.Moments.Area, -1, 1e-12) {
		t.Errorf("Area = %v, want -1", s.Moments.Area)
	}
	// Means and variances are ratios of two negated quantities, so the
	// mirrored square reports the same center and spread.
	if !approx(s.MeanX, 0.5, 1e-12) || !approx(s.MeanY, 0.5, 1e-12) {
		t.Errorf("mean = (%v, %v), want (0.5, 0.5)", s.MeanX, s.MeanY)
	}
	if !approx(s.VarianceX, 1.0/12.0, 1e-12) {
		t.Errorf("VarianceX = %v, want 1/12", s.VarianceX)
	}
}

func TestStatistics_ZeroAreaShapesReportAllZero(t *testing.T) {
	tests := []struct {
		name string
		feed func(s *Statistics) error
	}{
		{"zero-width sliver", func(s *Statistics) error {
			s.MoveTo(Pt(2, 0))
			s.LineTo(Pt(2, 5))
			s.LineTo(Pt(2, 0))
			return s.ClosePath()
		}},
		{"bowtie", func(s *Statistics) error {
			// Self-intersecting; the two lobes cancel exactly.
			s.MoveTo(Pt(0, 0))
			s.LineTo(Pt(1, 1))
			s.LineTo(Pt(1, 0))
			s.LineTo(Pt(0, 1))
			return s.ClosePath()
		}},
		{"coincident points", func(s *Statistics) error {
			s.MoveTo(Pt(3, 3))
			s.LineTo(Pt(3, 3))
			return s.ClosePath()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStatistics()
			if err := tt.feed(s); err != nil {
				t.Fatal(err)
			}
			if s.Moments.Area != 0 {
				t.Fatalf("Area = %v, want exactly 0", s.Moments.Area)
			}
			derived := map[string]float64{
				"MeanX": s.MeanX, "MeanY": s.MeanY,
				"VarianceX": s.VarianceX, "VarianceY": s.VarianceY,
				"StddevX": s.StddevX, "StddevY": s.StddevY,
				"Covariance": s.Covariance, "Correlation": s.Correlation,
				"Slant": s.Slant,
			}
			for name, v := range derived {
				if v != 0 {
					t.Errorf("%s = %v, want exactly 0 (never NaN)", name, v)
				}
			}
		})
	}
}

// TestStatistics_ZeroAreaResetsStaleValues ensures a zero-area close
// does not leave values from a previous close behind.
func TestStatistics_ZeroAreaResetsStaleValues(t *testing.T) {
	s := NewStatistics()
	ccwSquare(t, s)
	if s.MeanX == 0 {
		t.Fatal("expected nonzero MeanX after square")
	}

	// Cancel the square with its clockwise twin.
	s.MoveTo(Pt(0, 0))
	s.LineTo(Pt(0, 1))
	s.LineTo(Pt(1, 1))
	s.LineTo(Pt(1, 0))
	if err := s.ClosePath(); err != nil {
		t.Fatal(err)
	}

	if s.Moments.Area != 0 {
		t.Fatalf("Area = %v, want 0", s.Moments.Area)
	}
	if s.MeanX != 0 || s.VarianceX != 0 || s.Slant != 0 {
		t.Errorf("stale statistics after zero-area close: meanX=%v varX=%v slant=%v",
			s.MeanX, s.VarianceX, s.Slant)
	}
}

// TestStatistics_SingleAxisSpreadIsNaN: when exactly one axis has zero
// spread the true mathematical undefined-ness is preserved, unlike the
// all-zero area case.
func TestStatistics_SingleAxisSpreadIsNaN(t *testing.T) {
	s := NewStatistics()
	// Crafted totals: meanY = 1 and E[Y²] = 1, so varianceY is exactly
	// zero while varianceX is 1.
	s.Moments = Moments{
		Area:     2,
		MomentX:  2,
		MomentY:  2,
		MomentXX: 4,
		MomentYY: 2,
		MomentXY: 2,
	}
	s.recompute()

	if !approx(s.VarianceX, 1, 1e-12) {
		t.Fatalf("VarianceX = %v, want 1", s.VarianceX)
	}
	if s.VarianceY != 0 {
		t.Fatalf("VarianceY = %v, want exactly 0", s.VarianceY)
	}
	if !math.IsNaN(s.Correlation) {
		t.Errorf("Correlation = %v, want NaN", s.Correlation)
	}
	if !math.IsNaN(s.Slant) {
		t.Errorf("Slant = %v, want NaN", s.Slant)
	}
}

func TestStatistics_ShearedSquareSlant(t *testing.T) {
	const k = 0.5

	square := NewPath()
	square.Rectangle(0, 0, 1, 1)
	sheared := square.Transform(Shear(k, 0))

	s, err := Measure(sheared)
	if err != nil {
		t.Fatal(err)
	}

	// Shearing x by k·y leaves area and varianceY untouched and adds
	// k·varianceY to the covariance, so the regression slope recovers
	// exactly the shear factor.
	if !approx(s.Moments.Area, 1, 1e-12) {
		t.Errorf("Area = %v, want 1", s.Moments.Area)
	}
	if !approx(s.Slant, k, 1e-12) {
		t.Errorf("Slant = %v, want %v", s.Slant, k)
	}
	// correlation = k·stddevY / stddevX' = 1/sqrt(5) for k=1/2.
	if want := 1 / math.Sqrt(5); !approx(s.Correlation, want, 1e-12) {
		t.Errorf("Correlation = %v, want %v", s.Correlation, want)
	}
}

func TestStatistics_Circle(t *testing.T) {
	path := NewPath()
	path.Circle(2, 3, 1)

	s, err := Measure(path)
	if err != nil {
		t.Fatal(err)
	}

	// The four-arc Bezier circle deviates from a true circle by a few
	// parts in ten thousand; the moments of the approximation itself
	// are still exact.
	if rel := math.Abs(s.Moments.Area-math.Pi) / math.Pi; rel > 3e-4 {
		t.Errorf("Area = %v, want π within 3e-4 relative (off by %v)", s.Moments.Area, rel)
	}
	if !approx(s.MeanX, 2, 1e-9) || !approx(s.MeanY, 3, 1e-9) {
		t.Errorf("mean = (%v, %v), want (2, 3)", s.MeanX, s.MeanY)
	}
	// Fourfold symmetry: the axes are uncorrelated.
	if s.Correlation != 0 {
		t.Errorf("Correlation = %v, want exactly 0 (snapped)", s.Correlation)
	}
	if s.Slant != 0 {
		t.Errorf("Slant = %v, want exactly 0 (snapped)", s.Slant)
	}
}

func TestStatistics_IntermediateSnapshots(t *testing.T) {
	s := NewStatistics()

	// Outer 4x4 square.
	s.MoveTo(Pt(0, 0))
	s.LineTo(Pt(4, 0))
	s.LineTo(Pt(4, 4))
	s.LineTo(Pt(0, 4))
	if err := s.ClosePath(); err != nil {
		t.Fatal(err)
	}
	if !approx(s.Moments.Area, 16, 1e-12) || !approx(s.MeanX, 2, 1e-12) {
		t.Fatalf("after outer contour: area=%v meanX=%v, want 16, 2", s.Moments.Area, s.MeanX)
	}

	// Punch out the 2x2 center: statistics now describe the ring.
	s.MoveTo(Pt(1, 1))
	s.LineTo(Pt(1, 3))
	s.LineTo(Pt(3, 3))
	s.LineTo(Pt(3, 1))
	if err := s.ClosePath(); err != nil {
		t.Fatal(err)
	}
	if !approx(s.Moments.Area, 12, 1e-12) {
		t.Errorf("ring area = %v, want 12", s.Moments.Area)
	}
	// The hole is concentric, so the center of mass stays put while
	// the spread grows.
	if !approx(s.MeanX, 2, 1e-12) || !approx(s.MeanY, 2, 1e-12) {
		t.Errorf("ring mean = (%v, %v), want (2, 2)", s.MeanX, s.MeanY)
	}
}

func TestStatistics_ReadIsIdempotent(t *testing.T) {
	path := NewPath()
	path.Rectangle(0, 0, 2, 1)

	s, err := Measure(path)
	if err != nil {
		t.Fatal(err)
	}
	first := *s
	second := *s
	if first != second {
		t.Error("reading statistics mutated the accumulator")
	}

	// Independent measurements of the same path agree exactly.
	s2, err := Measure(path)
	if err != nil {
		t.Fatal(err)
	}
	if *s != *s2 {
		t.Error("repeated measurement of the same path diverged")
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"at threshold", 1e-3, 0},
		{"negative at threshold", -1e-3, 0},
		{"just above", math.Nextafter(1e-3, 1), math.Nextafter(1e-3, 1)},
		{"well above", 0.5, 0.5},
		{"negative above", -0.5, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snap(tt.in); got != tt.want {
				t.Errorf("snap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := snap(math.NaN()); !math.IsNaN(got) {
		t.Errorf("snap(NaN) = %v, want NaN", got)
	}
}

func TestSignedSqrt(t *testing.T) {
	if got := signedSqrt(4); got != 2 {
		t.Errorf("signedSqrt(4) = %v, want 2", got)
	}
	// Negative variance from self-intersecting contours keeps its sign.
	if got := signedSqrt(-4); got != -2 {
		t.Errorf("signedSqrt(-4) = %v, want -2", got)
	}
	if got := signedSqrt(0); got != 0 {
		t.Errorf("signedSqrt(0) = %v, want 0", got)
	}
}

func TestMeasure_PropagatesErrors(t *testing.T) {
	path := NewPath()
	// Force a malformed stream: a Close with no subpath at all.
	path.Close()
	if _, err := Measure(path); err == nil {
		t.Error("expected error measuring malformed path")
	}
}
