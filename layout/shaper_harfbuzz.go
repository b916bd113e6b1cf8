package layout

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textmeasure/font"
)

// HarfBuzzShaper provides full OpenType shaping via go-text/typesetting.
// It applies kerning pairs, ligature substitution, contextual alternates,
// and handles right-to-left and complex scripts.
//
// HarfBuzzShaper is safe for concurrent use. Parsed gotextfont.Font objects
// (thread-safe) are cached per font.Source; gotextfont.Face and
// shaping.HarfbuzzShaper are not concurrent-safe, so faces are created per
// call and shapers are pooled.
type HarfBuzzShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*font.Source]*gotextfont.Font
}

// NewHarfBuzzShaper creates a HarfBuzzShaper with an empty font cache.
func NewHarfBuzzShaper() *HarfBuzzShaper {
	return &HarfBuzzShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*font.Source]*gotextfont.Font),
	}
}

// Shape implements the Shaper interface.
// Returns nil if the face's font data cannot be parsed by the go-text
// backend; callers fall back to BuiltinShaper in that case.
func (s *HarfBuzzShaper) Shape(text string, face font.Face, dir Direction) []Glyph {
	if text == "" || face == nil {
		return nil
	}
	source := face.Source()
	if source == nil {
		return nil
	}

	parsed, err := s.getOrCreateFont(source)
	if err != nil {
		return nil
	}

	// gotextfont.Face is not safe for concurrent use; NewFace is cheap and
	// wraps the thread-safe *Font.
	gotextFace := gotextfont.NewFace(parsed)

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      gotextFace,
		Size:      fixed.Int26_6(face.Size() * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("und"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// getOrCreateFont returns the cached go-text Font for source, parsing and
// caching it on first use. The Font (not the Face) is cached because only
// the Font is read-only and safe to share.
func (s *HarfBuzzShaper) getOrCreateFont(source *font.Source) (*gotextfont.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	data := source.Data()
	if data == nil {
		return nil, font.ErrClosed
	}
	gotextFace, err := gotextfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	s.fontCache[source] = gotextFace.Font
	return gotextFace.Font, nil
}

// RemoveSource drops the cached parsed font for a Source.
// Call this after closing a Source to free memory.
func (s *HarfBuzzShaper) RemoveSource(source *font.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// mapDirection converts layout.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
// Runs produced by segmentation are direction-homogeneous, which keeps a
// single script per run a workable heuristic.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs to layout glyphs.
func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		out[i] = Glyph{
			GID:     uint16(g.GlyphID),
			Cluster: g.TextIndex(),
			Advance: float64(g.Advance) / 64.0,
		}
	}
	return out
}
