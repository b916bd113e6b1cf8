package font

// Face represents a font face at a specific size.
// This is a lightweight object created from a Source.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels.
	// This is the sum of per-rune glyph advances, without kerning or
	// ligatures; shaping-aware callers should measure through a Shaper.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Source returns the Source this face was created from.
	Source() *Source

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *Source
	size   float64
}

func (f *sourceFace) private() {}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	return parsed.Metrics(f.size)
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0
	}

	var total float64
	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		total += parsed.GlyphAdvance(gid, f.size)
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	if parsed == nil {
		return false
	}
	return parsed.GlyphIndex(r) != 0
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Source implements Face.Source.
func (f *sourceFace) Source() *Source {
	return f.source
}
