package font

// Metrics holds font metrics scaled to a specific face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	// Stored as a positive distance below the baseline.
	Descent float64

	// LineGap is the recommended extra gap between consecutive lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the natural line height (ascent + descent + line gap).
// This is the recommended vertical distance between baselines of consecutive
// lines when no explicit line height is requested.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
