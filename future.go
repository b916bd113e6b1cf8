package textmeasure

import "context"

// Future is the one-shot completion handle returned by MeasureAsync.
// It resolves exactly once, with either a Result or an error.
type Future struct {
	done chan struct{}
	res  Result
	err  error
}

// Done returns a channel that is closed when the measurement completes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the measurement completes and returns its outcome.
func (f *Future) Result() (Result, error) {
	<-f.done
	return f.res, f.err
}

// Wait blocks until the measurement completes or ctx is done, whichever
// comes first. A ctx expiry abandons the wait, not the measurement; calling
// Wait or Result again still yields the outcome.
func (f *Future) Wait(ctx context.Context) (Result, error) {
	select {
	case <-f.done:
		return f.res, f.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
