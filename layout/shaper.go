package layout

import (
	"sync"

	"github.com/gogpu/textmeasure/font"
)

// Shaper converts text into positioned glyphs using a font face.
// Implementations provide different levels of shaping support:
//   - HarfBuzzShaper: full OpenType shaping via go-text/typesetting (default)
//   - BuiltinShaper: per-rune advances without kerning or ligatures
type Shaper interface {
	// Shape converts text into glyphs using the given face and direction.
	// Glyph clusters are rune indices into text. Returns nil if the text
	// is empty or the face cannot be shaped.
	Shape(text string, face font.Face, dir Direction) []Glyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewHarfBuzzShaper()
)

// SetShaper sets the global shaper used by Shape.
// Pass nil to restore the default HarfBuzzShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewHarfBuzzShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape runs the global shaper and falls back to BuiltinShaper when the
// global shaper produces nothing for non-empty text (e.g. the HarfBuzz
// backend failed to parse the font data).
func Shape(text string, face font.Face, dir Direction) []Glyph {
	if text == "" || face == nil {
		return nil
	}
	glyphs := GetShaper().Shape(text, face, dir)
	if glyphs == nil {
		glyphs = (&BuiltinShaper{}).Shape(text, face, dir)
	}
	return glyphs
}
