package textmeasure

// Engine is the platform layout capability the facade delegates to.
// Implementations lay out text under the given options and report the
// bounding dimensions, without rendering anything.
//
// Engines receive validated options; they do not re-validate. An Engine
// must be stateless between calls apart from internal content-addressed
// caches (parsed fonts), so identical inputs always produce identical
// results. Engines must be safe for concurrent use.
type Engine interface {
	Measure(text string, opts Options) (Result, error)
}
