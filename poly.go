package shapestat

// Power-basis polynomials over the curve parameter t.
//
// Bezier segments are converted from Bernstein form to the power basis
// so their Green's theorem boundary integrals can be evaluated by exact
// polynomial arithmetic: multiply the coordinate polynomials, then
// integrate term by term over [0, 1]. Every step is closed-form; there
// is no sampling and no subdivision.

// poly holds polynomial coefficients; index i is the coefficient of t^i.
type poly []float64

// mul returns the product of two polynomials.
func (a poly) mul(b poly) poly {
	out := make(poly, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			out[i+j] += ca * cb
		}
	}
	return out
}

// deriv returns the derivative polynomial.
func (a poly) deriv() poly {
	if len(a) <= 1 {
		return poly{0}
	}
	out := make(poly, len(a)-1)
	for i := 1; i < len(a); i++ {
		out[i-1] = float64(i) * a[i]
	}
	return out
}

// integral01 integrates the polynomial over t in [0, 1].
func (a poly) integral01() float64 {
	var sum float64
	for i, c := range a {
		sum += c / float64(i+1)
	}
	return sum
}

// linePoly returns the power-basis form of the linear interpolation
// from c0 to c1.
func linePoly(c0, c1 float64) poly {
	return poly{c0, c1 - c0}
}

// quadPoly returns the power-basis form of a quadratic Bernstein
// polynomial with coefficients c0, c1, c2.
func quadPoly(c0, c1, c2 float64) poly {
	return poly{c0, 2 * (c1 - c0), c2 - 2*c1 + c0}
}

// cubicPoly returns the power-basis form of a cubic Bernstein
// polynomial with coefficients c0, c1, c2, c3.
func cubicPoly(c0, c1, c2, c3 float64) poly {
	return poly{c0, 3 * (c1 - c0), 3 * (c2 - 2*c1 + c0), c3 - 3*c2 + 3*c1 - c0}
}
