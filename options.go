package textmeasure

import (
	"math"
	"strconv"
	"strings"
)

// DefaultFontSize is used when Options.FontSize is zero.
const DefaultFontSize = 14

// Options configures a single measurement.
//
// The zero value is valid: default font family and size, normal weight and
// style, unbounded width and height, natural line height. All dimensional
// values share the unit of FontSize.
type Options struct {
	// FontFamily names the font family to measure with. Resolution falls
	// back to the engine's default family when the name is unknown or
	// empty.
	FontFamily string

	// FontSize is the font size in pixels per em. 0 means DefaultFontSize.
	FontSize float64

	// FontWeight is a CSS-style weight token: "normal", "bold", or a
	// numeric string "100".."900". Values of 600 and above select the bold
	// variant. Unrecognized tokens measure as normal.
	FontWeight string

	// FontStyle is "normal" or "italic".
	FontStyle string

	// MaxWidth is the layout region width. 0 means unbounded (no soft
	// wrapping).
	MaxWidth float64

	// MaxHeight clamps the reported height. 0 means unbounded.
	// The line count is not affected by the clamp.
	MaxHeight float64

	// LetterSpacing is extra advance per glyph. May be negative.
	LetterSpacing float64

	// LineHeight is an absolute per-line height. 0 uses the font's natural
	// line height.
	LineHeight float64

	// LineHeightMultiple scales the per-line height. 0 means 1.0.
	LineHeightMultiple float64

	// MaxLines truncates the layout after this many lines. 0 means
	// unlimited.
	MaxLines int
}

// Validate checks option values and returns an *InvalidOptionError for the
// first violation. Negative or non-finite numeric options are rejected,
// never silently defaulted; LetterSpacing alone may be negative.
func (o Options) Validate() error {
	if err := validFinite("fontSize", o.FontSize); err != nil {
		return err
	}
	if err := validFinite("maxWidth", o.MaxWidth); err != nil {
		return err
	}
	if err := validFinite("maxHeight", o.MaxHeight); err != nil {
		return err
	}
	if err := validFinite("lineHeight", o.LineHeight); err != nil {
		return err
	}
	if err := validFinite("lineHeightMultiple", o.LineHeightMultiple); err != nil {
		return err
	}
	if math.IsNaN(o.LetterSpacing) || math.IsInf(o.LetterSpacing, 0) {
		return &InvalidOptionError{Option: "letterSpacing", Value: o.LetterSpacing, Reason: "must be finite"}
	}
	if o.MaxLines < 0 {
		return &InvalidOptionError{Option: "maxLines", Value: o.MaxLines, Reason: "must not be negative"}
	}
	return nil
}

// validFinite rejects negative, NaN, and infinite values for option name.
func validFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidOptionError{Option: name, Value: v, Reason: "must be finite"}
	}
	if v < 0 {
		return &InvalidOptionError{Option: name, Value: v, Reason: "must not be negative"}
	}
	return nil
}

// fontSize returns the effective font size.
func (o Options) fontSize() float64 {
	if o.FontSize > 0 {
		return o.FontSize
	}
	return DefaultFontSize
}

// bold reports whether the weight token selects a bold variant.
func (o Options) bold() bool {
	w := strings.TrimSpace(strings.ToLower(o.FontWeight))
	if w == "bold" {
		return true
	}
	if n, err := strconv.Atoi(w); err == nil {
		return n >= 600
	}
	return false
}

// italic reports whether the style token selects an italic variant.
func (o Options) italic() bool {
	return strings.EqualFold(strings.TrimSpace(o.FontStyle), "italic")
}

// OptionsFromMap builds Options from a duck-typed option bag, the shape a
// JS caller passes. Unrecognized keys are ignored; missing keys keep their
// defaults. Values of the wrong type are ignored rather than coerced.
// The result still needs Validate.
func OptionsFromMap(m map[string]any) Options {
	var o Options
	if m == nil {
		return o
	}
	for key, val := range m {
		switch key {
		case "fontFamily":
			if s, ok := val.(string); ok {
				o.FontFamily = s
			}
		case "fontSize":
			if f, ok := toFloat(val); ok {
				o.FontSize = f
			}
		case "fontWeight":
			switch v := val.(type) {
			case string:
				o.FontWeight = v
			case int64:
				o.FontWeight = strconv.FormatInt(v, 10)
			case float64:
				o.FontWeight = strconv.Itoa(int(v))
			}
		case "fontStyle":
			if s, ok := val.(string); ok {
				o.FontStyle = s
			}
		case "maxWidth":
			if f, ok := toFloat(val); ok {
				o.MaxWidth = f
			}
		case "maxHeight":
			if f, ok := toFloat(val); ok {
				o.MaxHeight = f
			}
		case "letterSpacing":
			if f, ok := toFloat(val); ok {
				o.LetterSpacing = f
			}
		case "lineHeight":
			if f, ok := toFloat(val); ok {
				o.LineHeight = f
			}
		case "lineHeightMultiple":
			if f, ok := toFloat(val); ok {
				o.LineHeightMultiple = f
			}
		case "maxLines", "numberOfLines":
			if f, ok := toFloat(val); ok {
				o.MaxLines = int(f)
			}
		}
	}
	return o
}

// toFloat converts the numeric types a JS engine or JSON decoder hands us.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
