// Package shapestat computes exact geometric statistics of closed 2D
// shapes described as sequences of path commands.
//
// # Overview
//
// shapestat accumulates the signed area and the first and second raw
// moments of a shape directly from its path segments (lines, quadratic
// and cubic Bezier curves) using closed-form Green's theorem integrals,
// then derives center of mass, variance, standard deviation,
// covariance, correlation and slant from the raw totals. No flattening,
// sampling or numerical quadrature is involved: curved segments
// contribute their exact polynomial integral, so results are
// resolution-independent.
//
// # Quick Start
//
//	import "github.com/gogpu/shapestat"
//
//	path := shapestat.NewPath()
//	path.Rectangle(0, 0, 1, 1)
//
//	stats, err := shapestat.Measure(path)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(stats.Moments.Area, stats.MeanX, stats.Slant)
//
// Callers that already produce their own command stream (a font glyph
// outline, an SVG path) can feed a [Statistics] or [Moments] value
// directly through the [PathSink] interface, optionally wrapped in a
// [TransformSink] to normalize coordinates first.
//
// # Sign Convention
//
// All values are signed. Area is positive for contours wound
// counter-clockwise in a y-up coordinate system and negative for
// clockwise contours; in a y-down system the convention mirrors.
// Self-intersecting contours yield well-defined but not geometrically
// meaningful values (variance can even be negative, which the signed
// standard deviation preserves rather than hides).
//
// # Architecture
//
// The library is organized into:
//   - Public API: Moments, Statistics, Path, PathSink, Matrix, Point
//   - font/: glyph outline measurement on top of the core engine
//   - cmd/shapestat: batch measurement CLI for font files
//
// # Concurrency
//
// One accumulator measures one shape. Instances are independent and
// hold no shared state, so measuring many shapes in parallel requires
// no synchronization: one goroutine per shape, one accumulator each.
package shapestat
