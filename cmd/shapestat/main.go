// Command shapestat reports shape statistics for glyphs in a font.
//
// For each character given on the command line it prints the signed
// area, raw moments, center of mass, spread, and slant of the glyph
// outline, all in em units, followed by font-wide aggregates.
//
// Usage:
//
//	shapestat -font DejaVuSans.ttf [-parser ximage|gotext] [-v] [chars]
//
// When no characters are given, a pangram sample is measured.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/shapestat"
	"github.com/gogpu/shapestat/font"
)

const defaultSample = "Hamburgefonstiv"

func main() {
	var (
		fontPath = flag.String("font", "", "path to a TTF/OTF font file (required)")
		parser   = flag.String("parser", "ximage", "font parser backend: ximage or gotext")
		verbose  = flag.Bool("v", false, "log per-glyph measurement details to stderr")
	)
	flag.Parse()

	if *fontPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		shapestat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		// Warnings about skipped glyphs are always worth showing.
		shapestat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	src, err := font.NewFontSourceFromFile(*fontPath, font.WithParser(*parser))
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	sample := defaultSample
	if args := flag.Args(); len(args) > 0 {
		sample = ""
		for _, a := range args {
			sample += a
		}
	}

	name := src.Name()
	if name == "" {
		name = *fontPath
	}
	fmt.Printf("font: %s (%d glyphs, %d units/em)\n\n", name, src.NumGlyphs(), src.UnitsPerEm())

	glyphs := src.MeasureRunes([]rune(sample))
	if len(glyphs) == 0 {
		log.Fatal("No glyphs could be measured")
	}

	for _, g := range glyphs {
		printGlyph(g)
	}

	s := font.Summarize(glyphs)
	fmt.Println("summary:")
	fmt.Printf("  %-18s %12.6f\n", "weight", s.Weight)
	fmt.Printf("  %-18s %12.6f\n", "weight perceptual", s.WeightPerceptual)
	fmt.Printf("  %-18s %12.6f\n", "width", s.Width)
	fmt.Printf("  %-18s %12.6f\n", "slant", s.Slant)
	fmt.Printf("  %-18s %12.6f\n", "slant perceptual", s.SlantPerceptual)
}

func printGlyph(g font.GlyphStatistics) {
	st := g.Stats
	fmt.Printf("glyph %q (gid %d, advance %.4f):\n", g.Rune, uint32(g.GID), g.Advance)

	rows := []struct {
		name  string
		value float64
	}{
		{"area", st.Moments.Area},
		{"momentX", st.Moments.MomentX},
		{"momentY", st.Moments.MomentY},
		{"momentXX", st.Moments.MomentXX},
		{"momentXY", st.Moments.MomentXY},
		{"momentYY", st.Moments.MomentYY},
		{"meanX", st.MeanX},
		{"meanY", st.MeanY},
		{"varianceX", st.VarianceX},
		{"varianceY", st.VarianceY},
		{"stddevX", st.StddevX},
		{"stddevY", st.StddevY},
		{"covariance", st.Covariance},
		{"correlation", st.Correlation},
		{"slant", st.Slant},
	}
	for _, r := range rows {
		fmt.Printf("  %-12s %12.6f\n", r.name, r.value)
	}
	fmt.Println()
}
