package layout

import "unicode"

// WrapMode specifies how text is wrapped when it exceeds the maximum width.
type WrapMode uint8

const (
	// WrapWordChar breaks at word boundaries first, then falls back to
	// character boundaries for words longer than the line. This is the
	// default.
	WrapWordChar WrapMode = iota

	// WrapNone disables wrapping; lines may exceed the maximum width.
	WrapNone

	// WrapWord breaks at word boundaries only. Long words overflow.
	WrapWord

	// WrapChar breaks at character boundaries.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapWordChar:
		return "WordChar"
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	default:
		return "Unknown"
	}
}

// breakClass is a simplified UAX #14 line breaking class.
type breakClass uint8

const (
	breakOther breakClass = iota
	breakSpace
	breakZero
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
)

// classifyRune returns the break class of a rune.
func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '​': // zero-width space
		return breakZero
	case '(', '[', '{', '“', '‘':
		return breakOpen
	case ')', ']', '}', '”', '’':
		return breakClose
	case '-', '‐', '‑', '–', '—':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// isCJKRune reports whether the rune is a CJK character that allows
// breaking on either side.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// breakOpportunities returns, for each rune index i, whether a line break is
// allowed before rune i. Index 0 is always false. Paragraphs are split on
// hard breaks before this runs, so no mandatory breaks appear here.
func breakOpportunities(runes []rune, mode WrapMode) []bool {
	n := len(runes)
	breaks := make([]bool, n)
	if n == 0 || mode == WrapNone {
		return breaks
	}

	classes := make([]breakClass, n)
	for i, r := range runes {
		classes[i] = classifyRune(r)
	}

	for i := 1; i < n; i++ {
		breaks[i] = allowBreak(runes, classes, i, mode)
	}
	return breaks
}

// allowBreak decides whether a break is allowed before rune index i.
func allowBreak(runes []rune, classes []breakClass, i int, mode WrapMode) bool {
	prevClass, currClass := classes[i-1], classes[i]

	// No break before closing or after opening punctuation.
	if currClass == breakClose || prevClass == breakOpen {
		return false
	}
	// Always break after zero-width space.
	if prevClass == breakZero {
		return true
	}

	if mode == WrapChar {
		return true
	}

	// Word-based rules (WrapWord, WrapWordChar; char fallback happens at
	// the line-building level, not here).
	if prevClass == breakSpace {
		return true
	}
	if prevClass == breakHyphen && currClass != breakHyphen {
		return true
	}
	// CJK ideographs break on both sides.
	if currClass == breakIdeographic {
		return true
	}
	if prevClass == breakIdeographic && currClass != breakClose {
		return true
	}

	return breakBetweenCategories(runes[i-1], runes[i])
}

// breakBetweenCategories checks for breaks at letter/punctuation transitions.
func breakBetweenCategories(prev, curr rune) bool {
	if (unicode.IsLetter(prev) || unicode.IsDigit(prev)) && unicode.IsPunct(curr) {
		// Keep apostrophes and number punctuation attached.
		if curr != '\'' && curr != '.' && curr != ',' {
			return true
		}
	}
	if unicode.IsPunct(prev) && prev != '\'' && unicode.IsLetter(curr) {
		return true
	}
	return false
}
