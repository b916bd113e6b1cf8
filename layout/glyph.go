package layout

// Glyph is one shaped glyph, reduced to what measurement needs.
type Glyph struct {
	// GID is the glyph index in the font.
	GID uint16

	// Cluster is the rune index in the shaped text this glyph maps to.
	// Ligatures map several runes to one glyph; the cluster points at the
	// first of them.
	Cluster int

	// Advance is the horizontal advance to the next glyph, in pixels.
	Advance float64
}
