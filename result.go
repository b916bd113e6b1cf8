package textmeasure

// Result holds the measured bounding dimensions of a piece of text.
// JSON field names match the wire contract of the JS binding.
type Result struct {
	// Width is the smallest width enclosing all laid-out glyphs.
	Width float64 `json:"width"`

	// Height is the total height of all lines, clamped to MaxHeight when
	// one was given.
	Height float64 `json:"height"`

	// LineCount is the number of visual lines produced by wrapping.
	// Always >= 1, including for empty text.
	LineCount int `json:"lineCount"`
}
