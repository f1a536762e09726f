package font

import (
	"fmt"
	"os"
)

// FontSource represents a loaded font file.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	name string

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure the parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	// Apply options first to get parser name
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		name:   parsed.Name(),
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font family name, or "" when the backend does not
// expose it.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()
	return s.parsed.NumGlyphs()
}

// UnitsPerEm returns the units per em for the font.
func (s *FontSource) UnitsPerEm() int {
	s.copyCheck()
	return s.parsed.UnitsPerEm()
}

// Parsed returns the underlying parsed font.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// MeasureRunes measures the glyphs for the given runes. Unmapped runes
// and malformed outlines are skipped; see MeasureGlyphs.
func (s *FontSource) MeasureRunes(runes []rune) []GlyphStatistics {
	s.copyCheck()
	return MeasureGlyphs(s.parsed, runes)
}

// copyCheck panics if the FontSource was copied by value after creation.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("font: illegal use of FontSource copied by value")
	}
}
