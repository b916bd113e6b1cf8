package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntParser implements Parser using golang.org/x/image/font/opentype.
type sfntParser struct{}

// Parse implements Parser.Parse.
func (p *sfntParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse failed: %w", err)
	}
	return &sfntParsedFont{font: f}, nil
}

// sfntParsedFont implements ParsedFont over an sfnt.Font.
// sfnt.Font methods take a caller-provided Buffer, so each call here
// allocates its own buffer and the type stays safe for concurrent use.
type sfntParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *sfntParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *sfntParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *sfntParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *sfntParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// Metrics implements ParsedFont.Metrics.
func (f *sfntParsedFont) Metrics(ppem float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent) // positive distance below baseline
	lineGap := fixedToFloat(m.Height) - ascent - descent
	if lineGap < 0 {
		lineGap = 0
	}

	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   lineGap,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
