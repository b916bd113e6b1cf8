package textmeasure

import "fmt"

// InvalidOptionError reports an option value rejected at the boundary,
// before any layout work happens. Option names use the wire spelling
// ("fontSize", "maxWidth", ...).
type InvalidOptionError struct {
	Option string
	Value  any
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("textmeasure: invalid option %s=%v: %s", e.Option, e.Value, e.Reason)
}

// LayoutError wraps an opaque failure surfaced from the layout engine.
type LayoutError struct {
	Err error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("textmeasure: layout engine: %v", e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}
