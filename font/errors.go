package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrGlyphNotFound is returned when a glyph ID has no outline in
	// the font.
	ErrGlyphNotFound = errors.New("font: glyph not found")
)

// GlyphError wraps a per-glyph measurement failure with the glyph that
// caused it.
type GlyphError struct {
	GID GlyphID
	Err error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("font: glyph %d: %v", e.GID, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
