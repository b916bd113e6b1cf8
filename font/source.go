package font

import (
	"fmt"
	"os"
	"sync"
)

// Source represents a loaded font file.
// One Source can create multiple Face instances at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection. It must point to the Source itself.
	addr *Source

	data   []byte
	parsed ParsedFont
	name   string

	mu     sync.RWMutex
	closed bool
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, err := getParser(config.parserName)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &Source{
		data:   dataCopy,
		parsed: parsed,
	}
	s.addr = s

	s.name = config.nameOverride
	if s.name == "" {
		s.name = parsed.Name()
	}

	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: read %s: %w", path, err)
	}
	return NewSource(data, opts...)
}

// copyCheck panics if the Source was copied by value.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("font: illegal use of non-zero Source copied by value")
	}
}

// Name returns the font family name.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font, or nil if the Source is closed.
func (s *Source) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil
	}
	return s.parsed
}

// Data returns the raw font bytes.
// The returned slice is shared and must not be modified.
// Returns nil if the Source is closed.
func (s *Source) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil
	}
	return s.data
}

// Face creates a Face at the given size (pixels per em).
// Faces are lightweight; create them per call site as needed.
func (s *Source) Face(size float64) Face {
	s.copyCheck()
	return &sourceFace{source: s, size: size}
}

// Close releases the font data. Faces created from this Source must not be
// used after Close. Close is idempotent.
func (s *Source) Close() error {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.data = nil
	s.parsed = nil
	return nil
}
