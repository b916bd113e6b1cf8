// Package jsbridge exposes text measurement to an embedded JavaScript
// runtime (github.com/dop251/goja).
//
// Register installs a global `textMeasure` object with two methods:
//
//	textMeasure.measureText(text, options)     -> Promise<{width, height, lineCount}>
//	textMeasure.measureTextSync(text, options) -> {width, height, lineCount}
//
// Option keys: fontFamily, fontSize, fontWeight, fontStyle, maxWidth,
// maxHeight, letterSpacing, lineHeight, lineHeightMultiple, maxLines.
// Unrecognized keys are ignored; missing keys take their defaults.
//
// A goja.Runtime is not safe for concurrent use, so asynchronous completions
// are posted back through a Scheduler the host provides — typically its
// event loop. The synchronous method runs entirely on the caller's
// goroutine.
package jsbridge

import (
	"context"
	"fmt"

	"github.com/dop251/goja"

	"github.com/gogpu/textmeasure"
)

// Scheduler posts a function to the goroutine that owns the JS runtime.
// Event-loop hosts submit fn to their loop; fn must eventually run, or
// pending promises never settle.
type Scheduler interface {
	Schedule(fn func(*goja.Runtime))
}

// SyncScheduler runs scheduled functions immediately on the calling
// goroutine. Only suitable when no other goroutine touches the runtime,
// such as in tests.
type SyncScheduler struct {
	Runtime *goja.Runtime
}

// Schedule implements Scheduler.
func (s SyncScheduler) Schedule(fn func(*goja.Runtime)) {
	fn(s.Runtime)
}

// Bridge binds a Measurer to one JS runtime.
type Bridge struct {
	measurer *textmeasure.Measurer
	sched    Scheduler
}

// Register installs the textMeasure global on rt, measuring through m and
// posting async completions through sched.
func Register(rt *goja.Runtime, m *textmeasure.Measurer, sched Scheduler) error {
	if m == nil {
		return fmt.Errorf("jsbridge: measurer is nil")
	}
	if sched == nil {
		return fmt.Errorf("jsbridge: scheduler is nil")
	}
	b := &Bridge{measurer: m, sched: sched}

	obj := rt.NewObject()
	if err := obj.Set("measureText", b.measureText(rt)); err != nil {
		return err
	}
	if err := obj.Set("measureTextSync", b.measureTextSync(rt)); err != nil {
		return err
	}
	return rt.Set("textMeasure", obj)
}

// measureText returns the async entry point. The promise settles on the
// scheduler's goroutine with the same value measureTextSync would return.
func (b *Bridge) measureText(rt *goja.Runtime) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		promise, resolve, reject := rt.NewPromise()

		text, opts, err := parseArgs(call)
		if err != nil {
			reject(rt.NewTypeError(err.Error()))
			return rt.ToValue(promise)
		}

		fut := b.measurer.MeasureAsync(context.Background(), text, opts)
		go func() {
			res, err := fut.Result()
			b.sched.Schedule(func(rt *goja.Runtime) {
				if err != nil {
					reject(rt.NewGoError(err))
					return
				}
				resolve(resultValue(rt, res))
			})
		}()

		return rt.ToValue(promise)
	}
}

// measureTextSync returns the sync entry point. It blocks the JS goroutine
// for the duration of layout and throws on failure.
func (b *Bridge) measureTextSync(rt *goja.Runtime) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		text, opts, err := parseArgs(call)
		if err != nil {
			panic(rt.NewTypeError(err.Error()))
		}
		res, err := b.measurer.Measure(text, opts)
		if err != nil {
			panic(rt.NewGoError(err))
		}
		return resultValue(rt, res)
	}
}

// parseArgs extracts (text, options) from a JS call. text must be a
// string; options may be missing, null, or a plain object.
func parseArgs(call goja.FunctionCall) (string, textmeasure.Options, error) {
	var opts textmeasure.Options

	tv := call.Argument(0)
	if goja.IsUndefined(tv) || goja.IsNull(tv) {
		return "", opts, fmt.Errorf("text must be a string")
	}
	text, ok := tv.Export().(string)
	if !ok {
		return "", opts, fmt.Errorf("text must be a string, got %s", tv.ExportType())
	}

	ov := call.Argument(1)
	if goja.IsUndefined(ov) || goja.IsNull(ov) {
		return text, opts, nil
	}
	bag, ok := ov.Export().(map[string]any)
	if !ok {
		return "", opts, fmt.Errorf("options must be an object")
	}
	return text, textmeasure.OptionsFromMap(bag), nil
}

// resultValue converts a Result to the wire object.
func resultValue(rt *goja.Runtime, res textmeasure.Result) goja.Value {
	return rt.ToValue(map[string]any{
		"width":     res.Width,
		"height":    res.Height,
		"lineCount": res.LineCount,
	})
}
