package textmeasure

import (
	"context"
	"log/slog"
	"runtime"
)

// Measurer is the measurement facade. It validates options at the boundary
// and delegates to an Engine, either in-line (Measure) or on a bounded
// worker pool (MeasureAsync). Both paths run the exact same computation, so
// the two variants cannot drift.
//
// A Measurer holds no per-call state and is safe for concurrent use.
type Measurer struct {
	engine Engine
	sem    chan struct{}
}

// MeasurerOption configures Measurer creation.
type MeasurerOption func(*measurerConfig)

// measurerConfig holds configuration for Measurer.
type measurerConfig struct {
	engine  Engine
	workers int
}

// WithEngine sets the layout engine. The default is NewOpenTypeEngine().
func WithEngine(e Engine) MeasurerOption {
	return func(c *measurerConfig) {
		if e != nil {
			c.engine = e
		}
	}
}

// WithWorkers bounds the number of asynchronous measurements running at
// once. The default is runtime.GOMAXPROCS(0). Values below 1 are ignored.
func WithWorkers(n int) MeasurerOption {
	return func(c *measurerConfig) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// New creates a Measurer. With no options it measures through an
// OpenTypeEngine over the default font registry.
func New(opts ...MeasurerOption) *Measurer {
	config := measurerConfig{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&config)
	}
	if config.engine == nil {
		config.engine = NewOpenTypeEngine()
	}
	return &Measurer{
		engine: config.engine,
		sem:    make(chan struct{}, config.workers),
	}
}

// Measure lays out text under opts on the calling goroutine and returns its
// bounding dimensions. It blocks for the (short, bounded) duration of
// layout.
//
// Invalid UTF-8 in text is replaced with U+FFFD before layout. Option
// violations return *InvalidOptionError; engine failures return
// *LayoutError. No partial results accompany an error.
func (m *Measurer) Measure(text string, opts Options) (Result, error) {
	return m.measure(text, opts)
}

// MeasureAsync submits the measurement to the worker pool and returns
// immediately with a one-shot Future. ctx bounds the wait for a pool slot;
// once layout has started it is not cancelled. The returned Future resolves
// with exactly the value Measure would have produced.
func (m *Measurer) MeasureAsync(ctx context.Context, text string, opts Options) *Future {
	fut := &Future{done: make(chan struct{})}
	go func() {
		defer close(fut.done)
		select {
		case m.sem <- struct{}{}:
		case <-ctx.Done():
			fut.err = ctx.Err()
			return
		}
		defer func() { <-m.sem }()
		fut.res, fut.err = m.measure(text, opts)
	}()
	return fut
}

// measure is the single computation both entry points share.
func (m *Measurer) measure(text string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	res, err := m.engine.Measure(text, opts)
	if err != nil {
		return Result{}, &LayoutError{Err: err}
	}

	Logger().Debug("measured text",
		slog.Int("textLen", len(text)),
		slog.Float64("width", res.Width),
		slog.Float64("height", res.Height),
		slog.Int("lineCount", res.LineCount),
	)
	return res, nil
}
