package font

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Style selects a variant within a font family.
type Style struct {
	Bold   bool
	Italic bool
}

// String returns the string representation of the style.
func (s Style) String() string {
	switch {
	case s.Bold && s.Italic:
		return "BoldItalic"
	case s.Bold:
		return "Bold"
	case s.Italic:
		return "Italic"
	default:
		return "Regular"
	}
}

// Registry maps family names to font Sources with per-style variants.
// Lookup falls back gracefully: named variant, then a simpler variant of
// the same family, then the default family. A Registry never fails to
// resolve unless it holds no sources at all.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	families      map[string]map[Style]*Source
	defaultFamily string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]map[Style]*Source),
	}
}

// Register adds a Source as the given style variant of family.
// The first registered family becomes the default until SetDefault is called.
// Family matching is case-insensitive.
func (r *Registry) Register(family string, style Style, src *Source) {
	key := familyKey(family)

	r.mu.Lock()
	defer r.mu.Unlock()

	variants, ok := r.families[key]
	if !ok {
		variants = make(map[Style]*Source)
		r.families[key] = variants
	}
	variants[style] = src

	if r.defaultFamily == "" {
		r.defaultFamily = key
	}
}

// SetDefault sets the family used when resolution by name fails.
func (r *Registry) SetDefault(family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultFamily = familyKey(family)
}

// Resolve returns the Source for the requested family and style.
//
// The fallback chain mirrors what label widgets do: exact variant of the
// named family, then a simpler variant of that family, then the default
// family's variants. An empty family name goes straight to the default.
// Resolve only fails when the registry holds no sources.
func (r *Registry) Resolve(family string, style Style) (*Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.families) == 0 {
		return nil, ErrEmptyRegistry
	}

	if family != "" {
		if src := r.lookup(familyKey(family), style); src != nil {
			return src, nil
		}
	}
	if src := r.lookup(r.defaultFamily, style); src != nil {
		return src, nil
	}

	// Last resort: any registered source.
	for _, variants := range r.families {
		for _, src := range variants {
			return src, nil
		}
	}
	return nil, ErrEmptyRegistry
}

// lookup finds the closest style variant within one family.
// Caller must hold at least a read lock.
func (r *Registry) lookup(key string, style Style) *Source {
	variants, ok := r.families[key]
	if !ok {
		return nil
	}
	for _, s := range styleFallback(style) {
		if src, ok := variants[s]; ok {
			return src
		}
	}
	return nil
}

// styleFallback returns style candidates from most to least specific.
func styleFallback(style Style) []Style {
	switch {
	case style.Bold && style.Italic:
		return []Style{{Bold: true, Italic: true}, {Bold: true}, {Italic: true}, {}}
	case style.Bold:
		return []Style{{Bold: true}, {}}
	case style.Italic:
		return []Style{{Italic: true}, {}}
	default:
		return []Style{{}}
	}
}

// Families returns the registered family names (lowercased keys).
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.families))
	for key := range r.families {
		out = append(out, key)
	}
	return out
}

func familyKey(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide registry preloaded with the Go
// font family ("Go" in regular, bold, italic, and bold-italic variants, plus
// "Go Mono"). The default family is "Go".
//
// The registry is built once; callers may register additional fonts on it.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry()
		r.Register("Go", Style{}, mustSource(goregular.TTF))
		r.Register("Go", Style{Bold: true}, mustSource(gobold.TTF))
		r.Register("Go", Style{Italic: true}, mustSource(goitalic.TTF))
		r.Register("Go", Style{Bold: true, Italic: true}, mustSource(gobolditalic.TTF))
		r.Register("Go Mono", Style{}, mustSource(gomono.TTF))
		r.SetDefault("Go")
		defaultRegistry = r
	})
	return defaultRegistry
}

// mustSource parses embedded font data that is known to be valid.
func mustSource(data []byte) *Source {
	src, err := NewSource(data)
	if err != nil {
		panic(fmt.Sprintf("font: embedded font failed to parse: %v", err))
	}
	return src
}
