package font

import "sync"

// Parser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs a pure Go implementation).
//
// The default implementation uses golang.org/x/image/font/opentype.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 (.notdef) if the rune has no glyph.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph at the given
	// size in pixels per em.
	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// Metrics returns the font metrics scaled to the given size.
	Metrics(ppem float64) Metrics
}

// defaultParserName is the name of the default parser backend.
const defaultParserName = "sfnt"

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers by backend name.
	parserRegistry = map[string]Parser{
		defaultParserName: &sfntParser{},
	}
)

// RegisterParser registers a custom font parser backend under the given
// name. Registering a name twice replaces the previous backend.
func RegisterParser(name string, parser Parser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser registered under name.
func getParser(name string) (Parser, error) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	if !ok {
		return nil, &UnknownParserError{Name: name}
	}
	return p, nil
}
