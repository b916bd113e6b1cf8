package layout

import "github.com/gogpu/textmeasure/font"

// BuiltinShaper positions glyphs from per-rune advances in the font's
// metrics tables. It handles Latin, Cyrillic, Greek, and CJK adequately but
// performs no kerning, ligature substitution, or contextual shaping; scripts
// that require those (Arabic, Indic) need HarfBuzzShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face font.Face, _ Direction) []Glyph {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}
	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	runes := []rune(text)
	glyphs := make([]Glyph, 0, len(runes))
	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)
		glyphs = append(glyphs, Glyph{
			GID:     gid,
			Cluster: cluster,
			Advance: parsed.GlyphAdvance(gid, face.Size()),
		})
	}
	return glyphs
}
