package layout

import (
	"unicode"

	"github.com/gogpu/textmeasure/font"
)

// Options configures text layout behavior.
type Options struct {
	// MaxWidth is the maximum line width in pixels.
	// If 0, no line wrapping is performed (hard breaks still apply).
	MaxWidth float64

	// Wrap selects the line breaking strategy. The zero value is
	// WrapWordChar (word boundaries with character fallback).
	Wrap WrapMode

	// LetterSpacing is extra advance added per glyph, in pixels.
	// May be negative.
	LetterSpacing float64

	// LineHeight is an absolute per-line height in pixels.
	// If 0, the font's natural line height (ascent + descent + gap) is used.
	LineHeight float64

	// LineHeightMultiple scales the per-line height.
	// Values <= 0 are treated as 1.0.
	LineHeightMultiple float64

	// MaxLines limits the number of laid-out lines. 0 means unlimited.
	// Lines beyond the limit are dropped and the layout is marked truncated.
	MaxLines int

	// Direction is the paragraph base direction used when the text has no
	// strong directional characters.
	Direction Direction
}

// Line is one measured visual line.
type Line struct {
	// Text is the line content (no trailing hard-break characters).
	Text string

	// Start and End are byte offsets of the line within the laid-out text.
	Start, End int

	// Width is the advance width of the line, excluding trailing
	// whitespace.
	Width float64
}

// Layout is the result of laying out text.
type Layout struct {
	// Lines contains all measured lines, in visual order.
	Lines []Line

	// Width is the maximum line width.
	Width float64

	// Height is the total height of all lines.
	Height float64

	// Truncated reports whether MaxLines dropped trailing lines.
	Truncated bool
}

// LayoutText lays out text with the given face and options and returns the
// measured lines. Hard breaks (\n, \r\n, \r) always split lines; soft
// wrapping applies when MaxWidth > 0. Empty text produces a single empty
// line, matching what a label would occupy.
func LayoutText(text string, face font.Face, opts Options) *Layout {
	if face == nil {
		return &Layout{}
	}

	perLine := opts.LineHeight
	if perLine <= 0 {
		perLine = face.Metrics().LineHeight()
	}
	if opts.LineHeightMultiple > 0 {
		perLine *= opts.LineHeightMultiple
	}

	out := &Layout{}
	for _, para := range splitParagraphs(text) {
		lines := layoutParagraph(para, face, opts)
		out.Lines = append(out.Lines, lines...)
	}

	if opts.MaxLines > 0 && len(out.Lines) > opts.MaxLines {
		out.Lines = out.Lines[:opts.MaxLines]
		out.Truncated = true
	}

	for i := range out.Lines {
		if out.Lines[i].Width > out.Width {
			out.Width = out.Lines[i].Width
		}
	}
	out.Height = float64(len(out.Lines)) * perLine

	return out
}

// paragraph is a hard-break-delimited slice of the input text.
type paragraph struct {
	text  string
	start int // byte offset in the original text
}

// splitParagraphs splits text on hard line breaks, keeping byte offsets
// into the original text. \r\n counts as a single separator.
func splitParagraphs(text string) []paragraph {
	paras := make([]paragraph, 0, 1)
	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c != '\n' && c != '\r' {
			i++
			continue
		}
		paras = append(paras, paragraph{text: text[start:i], start: start})
		if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		i++
		start = i
	}
	paras = append(paras, paragraph{text: text[start:], start: start})
	return paras
}

// layoutParagraph lays out one paragraph (no hard breaks) into lines.
func layoutParagraph(para paragraph, face font.Face, opts Options) []Line {
	if para.text == "" {
		return []Line{{Start: para.start, End: para.start}}
	}

	runes := []rune(para.text)
	advances := runeAdvances(para.text, runes, face, opts)
	byteOff := runeByteOffsets(para.text, runes)

	var ranges [][2]int
	if opts.MaxWidth > 0 && opts.Wrap != WrapNone {
		breaks := breakOpportunities(runes, opts.Wrap)
		ranges = wrapRunes(runes, advances, breaks, opts.MaxWidth, opts.Wrap)
	} else {
		ranges = [][2]int{{0, len(runes)}}
	}

	lines := make([]Line, 0, len(ranges))
	for _, rg := range ranges {
		startRune, endRune := rg[0], rg[1]

		// Trailing whitespace does not count toward the line width.
		measuredEnd := endRune
		for measuredEnd > startRune && unicode.IsSpace(runes[measuredEnd-1]) {
			measuredEnd--
		}
		var width float64
		for i := startRune; i < measuredEnd; i++ {
			width += advances[i]
		}

		startByte := byteOff[startRune]
		endByte := byteOff[endRune]
		lines = append(lines, Line{
			Text:  para.text[startByte:endByte],
			Start: para.start + startByte,
			End:   para.start + endByte,
			Width: width,
		})
	}
	return lines
}

// runeAdvances shapes the paragraph per direction run and folds glyph
// advances back onto rune indices. Ligatures attribute their full advance
// to the cluster's first rune; letter spacing is applied per glyph, the way
// text paints do.
func runeAdvances(text string, runes []rune, face font.Face, opts Options) []float64 {
	advances := make([]float64, len(runes))
	for _, seg := range segment(text, opts.Direction) {
		for _, g := range Shape(seg.Text, face, seg.Direction) {
			i := seg.Start + g.Cluster
			if i >= 0 && i < len(advances) {
				advances[i] += g.Advance + opts.LetterSpacing
			}
		}
	}
	return advances
}

// runeByteOffsets returns byte offsets for each rune index, plus the final
// offset at len(text).
func runeByteOffsets(text string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += len(string(r))
	}
	offsets[len(runes)] = len(text)
	return offsets
}

// wrapRunes greedily packs runes into lines no wider than maxWidth,
// breaking at the last allowed opportunity. Returns [start, end) rune
// ranges. Every line contains at least one rune, so a single over-wide
// glyph still produces a line.
func wrapRunes(runes []rune, advances []float64, breaks []bool, maxWidth float64, mode WrapMode) [][2]int {
	n := len(runes)
	ranges := make([][2]int, 0, 2)

	lineStart := 0
	for lineStart < n {
		lineEnd := n
		width := 0.0
		lastBreak := -1

		for i := lineStart; i < n; i++ {
			if i > lineStart && breaks[i] {
				lastBreak = i
			}
			if width+advances[i] > maxWidth && i > lineStart {
				lineEnd = breakPosition(i, lineStart, lastBreak, breaks, mode, n)
				break
			}
			width += advances[i]
		}

		ranges = append(ranges, [2]int{lineStart, lineEnd})

		// Whitespace after the break starts no line of its own.
		lineStart = lineEnd
		for lineStart < n && unicode.IsSpace(runes[lineStart]) {
			lineStart++
		}
	}

	if len(ranges) == 0 {
		ranges = append(ranges, [2]int{0, n})
	}
	return ranges
}

// breakPosition picks the rune index to break at when the line overflows
// at rune index pos.
func breakPosition(pos, lineStart, lastBreak int, breaks []bool, mode WrapMode, n int) int {
	if lastBreak > lineStart {
		return lastBreak
	}
	switch mode {
	case WrapWord:
		// No opportunity inside the line: let the word overflow to the
		// next break.
		for j := pos; j < n; j++ {
			if breaks[j] {
				return j
			}
		}
		return n
	default:
		// WrapWordChar and WrapChar fall back to the character boundary.
		return pos
	}
}

// Advance measures the total advance width of text without wrapping.
func Advance(text string, face font.Face) float64 {
	if text == "" || face == nil {
		return 0
	}
	var total float64
	for _, g := range Shape(text, face, DirectionLTR) {
		total += g.Advance
	}
	return total
}
