package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for the font package.
var (
	// ErrEmptyData is returned when font data is empty.
	ErrEmptyData = errors.New("font: empty font data")

	// ErrClosed is returned when a closed Source is used.
	ErrClosed = errors.New("font: source is closed")

	// ErrEmptyRegistry is returned when a Registry without sources is asked
	// to resolve a face.
	ErrEmptyRegistry = errors.New("font: registry has no sources")
)

// UnknownParserError is returned when an unregistered parser backend is
// requested.
type UnknownParserError struct {
	Name string
}

func (e *UnknownParserError) Error() string {
	return fmt.Sprintf("font: unknown parser backend %q", e.Name)
}
