package textmeasure

import (
	"unicode"

	"github.com/unilibs/uniwidth"
)

// Default cell geometry as fractions of the font size. 0.6 matches the
// advance-to-size ratio of common terminal fonts; 1.2 is the usual
// single-spaced line height.
const (
	monoAdvanceRatio = 0.6
	monoLineRatio    = 1.2
)

// MonoEngine measures text on a fixed-advance cell grid, the way a
// terminal lays it out: every rune occupies 0, 1, or 2 cells by its
// Unicode display width (combining marks take 0, CJK and emoji take 2),
// and wrapping happens at cell boundaries.
//
// FontFamily, FontWeight, and FontStyle are ignored — a cell grid has one
// typeface. The cell width is FontSize * 0.6 and the natural line height
// FontSize * 1.2, overridable per call through LineHeight.
//
// MonoEngine is stateless and safe for concurrent use.
type MonoEngine struct{}

// NewMonoEngine creates a MonoEngine.
func NewMonoEngine() *MonoEngine {
	return &MonoEngine{}
}

// Measure implements the Engine interface.
func (e *MonoEngine) Measure(text string, opts Options) (Result, error) {
	if text == "" {
		return Result{LineCount: 1}, nil
	}

	size := opts.fontSize()
	cellW := size * monoAdvanceRatio

	perLine := opts.LineHeight
	if perLine <= 0 {
		perLine = size * monoLineRatio
	}
	if opts.LineHeightMultiple > 0 {
		perLine *= opts.LineHeightMultiple
	}

	widths := e.wrap(text, cellW, opts)
	if opts.MaxLines > 0 && len(widths) > opts.MaxLines {
		widths = widths[:opts.MaxLines]
	}

	var maxLineWidth float64
	for _, w := range widths {
		if w > maxLineWidth {
			maxLineWidth = w
		}
	}

	height := float64(len(widths)) * perLine
	if opts.MaxHeight > 0 && height > opts.MaxHeight {
		height = opts.MaxHeight
	}

	return Result{Width: maxLineWidth, Height: height, LineCount: len(widths)}, nil
}

// wrap walks the text cell by cell and returns the width of each resulting
// line, excluding trailing spaces. A wide rune that does not fit in the
// remaining cells moves whole to the next line, like a terminal's hard wrap.
func (e *MonoEngine) wrap(text string, cellW float64, opts Options) []float64 {
	var (
		widths       []float64
		lineWidth    float64 // including trailing spaces
		visibleWidth float64 // excluding trailing spaces
		prev         rune
	)

	flush := func() {
		widths = append(widths, visibleWidth)
		lineWidth = 0
		visibleWidth = 0
	}

	for _, r := range text {
		if r == '\n' && prev == '\r' {
			// \r\n is a single break; the \r already flushed.
			prev = r
			continue
		}
		prev = r
		if r == '\n' || r == '\r' {
			flush()
			continue
		}

		w := float64(uniwidth.RuneWidth(r)) * cellW
		if w > 0 {
			w += opts.LetterSpacing
		}

		if opts.MaxWidth > 0 && lineWidth > 0 && lineWidth+w > opts.MaxWidth {
			flush()
		}

		lineWidth += w
		if !unicode.IsSpace(r) {
			visibleWidth = lineWidth
		}
	}
	flush()

	return widths
}
