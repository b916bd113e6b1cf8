package textmeasure

import (
	"github.com/gogpu/textmeasure/font"
	"github.com/gogpu/textmeasure/layout"
)

// OpenTypeEngine measures text by shaping it against parsed OpenType fonts
// and wrapping with the layout package. This is the default engine.
//
// Fonts are resolved through a font.Registry using the request's family,
// weight, and style, with the registry's fallback chain standing in for the
// platform's typeface resolution.
type OpenTypeEngine struct {
	registry *font.Registry
}

// OpenTypeOption configures OpenTypeEngine creation.
type OpenTypeOption func(*OpenTypeEngine)

// WithRegistry sets the font registry used for family resolution.
// The default is font.DefaultRegistry().
func WithRegistry(r *font.Registry) OpenTypeOption {
	return func(e *OpenTypeEngine) {
		if r != nil {
			e.registry = r
		}
	}
}

// NewOpenTypeEngine creates an OpenTypeEngine backed by the default font
// registry unless WithRegistry overrides it.
func NewOpenTypeEngine(opts ...OpenTypeOption) *OpenTypeEngine {
	e := &OpenTypeEngine{registry: font.DefaultRegistry()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the engine's font registry, so callers can load
// additional fonts into it.
func (e *OpenTypeEngine) Registry() *font.Registry {
	return e.registry
}

// Measure implements the Engine interface.
//
// Invalid UTF-8 byte sequences in text are replaced with U+FFFD during
// shaping; control characters other than line breaks and tabs are shaped
// as the font maps them.
func (e *OpenTypeEngine) Measure(text string, opts Options) (Result, error) {
	if text == "" {
		return Result{LineCount: 1}, nil
	}

	style := font.Style{Bold: opts.bold(), Italic: opts.italic()}
	src, err := e.registry.Resolve(opts.FontFamily, style)
	if err != nil {
		return Result{}, err
	}
	face := src.Face(opts.fontSize())

	l := layout.LayoutText(text, face, layout.Options{
		MaxWidth:           opts.MaxWidth,
		LetterSpacing:      opts.LetterSpacing,
		LineHeight:         opts.LineHeight,
		LineHeightMultiple: opts.LineHeightMultiple,
		MaxLines:           opts.MaxLines,
	})

	height := l.Height
	if opts.MaxHeight > 0 && height > opts.MaxHeight {
		height = opts.MaxHeight
	}

	lineCount := len(l.Lines)
	if lineCount < 1 {
		lineCount = 1
	}

	return Result{Width: l.Width, Height: height, LineCount: lineCount}, nil
}
