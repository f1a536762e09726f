package shapestat

import "testing"

func TestPolyMul(t *testing.T) {
	// (1 + 2t)(3 - t) = 3 + 5t - 2t²
	got := poly{1, 2}.mul(poly{3, -1})
	want := poly{3, 5, -2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !approx(got[i], want[i], 1e-15) {
			t.Errorf("coefficient %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPolyDeriv(t *testing.T) {
	// d/dt (1 + 2t + 3t²) = 2 + 6t
	got := poly{1, 2, 3}.deriv()
	want := poly{2, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coefficient %d = %v, want %v", i, got[i], want[i])
		}
	}

	if got := (poly{5}).deriv(); len(got) != 1 || got[0] != 0 {
		t.Errorf("derivative of constant = %v, want {0}", got)
	}
}

func TestPolyIntegral01(t *testing.T) {
	// ∫₀¹ (6t² + 2t + 1) dt = 2 + 1 + 1 = 4
	if got := (poly{1, 2, 6}).integral01(); !approx(got, 4, 1e-15) {
		t.Errorf("integral = %v, want 4", got)
	}
}

func TestBernsteinConversions(t *testing.T) {
	// Every conversion must evaluate to the control values at the ends.
	evalAt := func(p poly, t float64) float64 {
		var v, tp float64 = 0, 1
		for _, c := range p {
			v += c * tp
			tp *= t
		}
		return v
	}

	tests := []struct {
		name       string
		p          poly
		at0, at1   float64
		atHalfWant float64
	}{
		{"line", linePoly(2, 6), 2, 6, 4},
		{"quad", quadPoly(0, 2, 0), 0, 0, 1},
		{"cubic", cubicPoly(0, 1, 1, 0), 0, 0, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalAt(tt.p, 0); !approx(got, tt.at0, 1e-15) {
				t.Errorf("at t=0: %v, want %v", got, tt.at0)
			}
			if got := evalAt(tt.p, 1); !approx(got, tt.at1, 1e-12) {
				t.Errorf("at t=1: %v, want %v", got, tt.at1)
			}
			if got := evalAt(tt.p, 0.5); !approx(got, tt.atHalfWant, 1e-12) {
				t.Errorf("at t=0.5: %v, want %v", got, tt.atHalfWant)
			}
		})
	}
}
