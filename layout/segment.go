package layout

import "golang.org/x/text/unicode/bidi"

// Segment is a contiguous run of text with a single resolved direction.
type Segment struct {
	// Text is the run content.
	Text string

	// Start is the rune offset of the run within the segmented text.
	Start int

	// Direction is the resolved direction of the run.
	Direction Direction
}

// segment splits text into direction runs using the Unicode bidi algorithm.
// base is the paragraph-level direction used when the text contains no
// strong directional characters.
func segment(text string, base Direction) []Segment {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	levels := bidiLevels(text, base, len(runes))

	segs := make([]Segment, 0, 1)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || levels[i] != levels[start] {
			dir := DirectionLTR
			if levels[start]%2 == 1 {
				dir = DirectionRTL
			}
			segs = append(segs, Segment{
				Text:      string(runes[start:i]),
				Start:     start,
				Direction: dir,
			})
			start = i
		}
	}
	return segs
}

// bidiLevels computes the per-rune embedding level (0 = LTR, odd = RTL).
func bidiLevels(text string, base Direction, n int) []int {
	levels := make([]int, n)

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	_, _ = p.SetString(text, bidi.DefaultDirection(defaultDir))

	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := startRune; j <= endRune && j < n; j++ {
			levels[j] = level
		}
	}

	return levels
}
