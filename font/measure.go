package font

import (
	"context"
	"log/slog"
	"math"

	"github.com/gogpu/shapestat"
)

// GlyphStatistics is the measurement result for one glyph.
// Statistics and Advance are em-normalized: font-unit coordinates are
// scaled by 1/unitsPerEm before measuring.
type GlyphStatistics struct {
	Rune    rune
	GID     GlyphID
	Advance float64
	Stats   *shapestat.Statistics
}

// MeasureOutline measures a glyph outline, scaling font-unit
// coordinates by 1/upem so the statistics come out in em units.
//
// Font outlines carry no explicit close commands; every MoveTo and the
// end of the segment list close the contour in progress.
func MeasureOutline(o *Outline, upem int) (*shapestat.Statistics, error) {
	stats := shapestat.NewStatistics()
	if upem <= 0 {
		upem = 1
	}
	scale := 1 / float64(upem)
	sink := shapestat.TransformSink{
		M:    shapestat.Scale(scale, scale),
		Sink: stats,
	}

	open := false
	for _, seg := range o.Segments {
		var err error
		switch seg.Op {
		case SegmentOpMoveTo:
			if open {
				if err = sink.ClosePath(); err != nil {
					return nil, err
				}
			}
			err = sink.MoveTo(seg.Args[0])
			open = true
		case SegmentOpLineTo:
			err = sink.LineTo(seg.Args[0])
		case SegmentOpQuadTo:
			err = sink.QuadTo(seg.Args[0], seg.Args[1])
		case SegmentOpCubicTo:
			err = sink.CubicTo(seg.Args[0], seg.Args[1], seg.Args[2])
		}
		if err != nil {
			return nil, err
		}
	}
	if open {
		if err := sink.ClosePath(); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// MeasureGlyph measures a single glyph by ID.
func MeasureGlyph(f ParsedFont, gid GlyphID) (*shapestat.Statistics, error) {
	outline, err := f.GlyphOutline(gid)
	if err != nil {
		return nil, err
	}
	return MeasureOutline(outline, f.UnitsPerEm())
}

// MeasureGlyphs measures the glyphs for the given runes. A rune the
// font does not map, or a glyph whose outline fails to load or
// measure, is skipped with a warning; one bad glyph never aborts the
// batch.
func MeasureGlyphs(f ParsedFont, runes []rune) []GlyphStatistics {
	logger := shapestat.Logger()
	upem := f.UnitsPerEm()
	if upem <= 0 {
		upem = 1
	}
	results := make([]GlyphStatistics, 0, len(runes))

	for _, r := range runes {
		gid, ok := f.GlyphIndex(r)
		if !ok {
			logger.Warn("rune not mapped by font", "rune", string(r))
			continue
		}

		outline, err := f.GlyphOutline(gid)
		if err != nil {
			logger.Warn("skipping glyph", "rune", string(r), "gid", uint32(gid), "error", err)
			continue
		}

		stats, err := MeasureOutline(outline, upem)
		if err != nil {
			logger.Warn("skipping glyph", "rune", string(r), "gid", uint32(gid), "error", err)
			continue
		}

		g := GlyphStatistics{
			Rune:    r,
			GID:     gid,
			Advance: outline.Advance / float64(upem),
			Stats:   stats,
		}
		results = append(results, g)

		if logger.Enabled(context.Background(), slog.LevelDebug) {
			logger.Debug("measured glyph",
				"rune", string(r),
				"gid", uint32(gid),
				"area", stats.Moments.Area,
				"slant", stats.Slant,
				"advance", g.Advance,
			)
		}
	}

	return results
}

// Summary aggregates per-glyph statistics into font-wide estimates,
// all in em units.
type Summary struct {
	// Weight is total ink divided by total advance: Σ|area| / Σadv.
	Weight float64

	// WeightPerceptual weights each glyph's ink by its advance:
	// Σ(|area|·adv) / Σadv.
	WeightPerceptual float64

	// Width is the mean advance.
	Width float64

	// Slant is the mean per-glyph slant.
	Slant float64

	// SlantPerceptual weights each glyph's slant by its advance:
	// Σ(slant·adv) / Σadv.
	SlantPerceptual float64
}

// Summarize aggregates glyph measurements into a Summary. An empty
// input yields the zero Summary. NaN slants (glyphs with no vertical
// spread) propagate into the slant aggregates.
func Summarize(glyphs []GlyphStatistics) Summary {
	if len(glyphs) == 0 {
		return Summary{}
	}

	var (
		inkSum           float64
		inkPerceptualSum float64
		advanceSum       float64
		slantSum         float64
		slantWeightedSum float64
	)
	for _, g := range glyphs {
		ink := math.Abs(g.Stats.Moments.Area)
		inkSum += ink
		inkPerceptualSum += ink * g.Advance
		advanceSum += g.Advance
		slantSum += g.Stats.Slant
		slantWeightedSum += g.Stats.Slant * g.Advance
	}

	n := float64(len(glyphs))
	s := Summary{
		Width: advanceSum / n,
		Slant: slantSum / n,
	}
	if advanceSum != 0 {
		s.Weight = inkSum / advanceSum
		s.WeightPerceptual = inkPerceptualSum / advanceSum
		s.SlantPerceptual = slantWeightedSum / advanceSum
	}
	return s
}
