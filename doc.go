// Package textmeasure measures text bounding dimensions (width, height,
// line count) without rendering anything.
//
// # Overview
//
// textmeasure runs a real text-layout pipeline — font parsing, HarfBuzz-grade
// shaping, bidi segmentation, and greedy line breaking — and reports the
// bounding box the text would occupy if it were drawn, plus the number of
// visual lines produced by wrapping. No view, image, or GPU resource is ever
// created.
//
// # Quick Start
//
//	m := textmeasure.New()
//
//	res, err := m.Measure("Hello world", textmeasure.Options{
//	    FontSize: 14,
//	    MaxWidth: 60,
//	})
//	// res.Width, res.Height, res.LineCount
//
// The asynchronous variant returns a one-shot future and never blocks the
// caller:
//
//	fut := m.MeasureAsync(ctx, "Hello world", opts)
//	res, err := fut.Wait(ctx)
//
// Both variants run the exact same computation; for identical inputs they
// produce identical results.
//
// # Engines
//
// Measurement is polymorphic over the Engine interface. Two engines ship with
// the library:
//
//   - OpenTypeEngine (default): shapes text with go-text/typesetting against
//     parsed OpenType fonts and wraps with a simplified UAX #14 line breaker.
//   - MonoEngine: fixed-advance cell measurement for terminal-style hosts,
//     using Unicode display widths (wide CJK and emoji occupy two cells).
//
// # Units
//
// All dimensions are expressed in the same abstract unit as the font size
// (pixels at the face size). There is no display involved, so no density
// conversion is performed: callers working in dp or pt apply their own scale.
package textmeasure

// Version is the current version of the library.
const Version = "0.1.0"
