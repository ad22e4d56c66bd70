// Package sched holds the tunable options, progress protocol, and
// time-budget wiring shared by the engine's incremental evaluator.
//
// For graphstate.EvaluateDirty it provides a functional-options bag plus
// a per-node callback the caller can use to observe, trace, or abort a
// long evaluation.
package sched

import (
	"context"
	"errors"
	"time"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("sched: invalid option supplied")

// Signal is returned by a ProgressFunc to tell the evaluator whether to
// keep going or stop where it is.
type Signal int

const (
	// Continue lets the evaluator proceed to the next dirty node.
	Continue Signal = iota
	// Abort stops the evaluator after the current node; remaining dirty
	// nodes stay dirty for resumption on the next call.
	Abort
)

// ProgressFunc is called after each node the evaluator processes, with
// the count evaluated so far and the total dirty-set size at the start
// of the run. Returning Abort stops evaluation early and marks the
// result Partial.
type ProgressFunc func(evaluated, dirtyTotal int) Signal

// Option configures an EvalOptions via functional arguments.
type Option func(*EvalOptions)

// EvalOptions tunes one EvaluateDirty call: whether to collect a trace,
// how many trace entries to keep, a wall-clock time budget, and a
// cancellation context.
type EvalOptions struct {
	// Trace records a TraceEntry per evaluated node when true.
	Trace bool

	// MaxTraceNodes caps the number of trace entries collected; 0 means
	// unlimited. Ignored when Trace is false.
	MaxTraceNodes int

	// TimeBudget, if > 0, aborts evaluation once this much wall-clock
	// time has elapsed since the call began — checked before invoking
	// the caller's ProgressFunc, so a time-budget abort always wins over
	// a caller's Continue.
	TimeBudget time.Duration

	// Ctx allows cancellation; a cancelled context behaves like a
	// time-budget abort. Defaults to context.Background().
	Ctx context.Context

	// err records an invalid option for New to surface.
	err error
}

// DefaultOptions returns an EvalOptions with tracing off, no trace cap,
// no time budget, and a background context.
func DefaultOptions() EvalOptions {
	return EvalOptions{
		Ctx: context.Background(),
	}
}

// New builds an EvalOptions from the given Options, returning
// ErrOptionViolation if any Option recorded an invalid value.
func New(opts ...Option) (EvalOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return EvalOptions{}, o.err
	}
	return o, nil
}

// WithTrace enables trace collection.
func WithTrace(enabled bool) Option {
	return func(o *EvalOptions) { o.Trace = enabled }
}

// WithMaxTraceNodes caps trace collection at n entries. n == 0 means
// unlimited; a negative n makes New return ErrOptionViolation.
func WithMaxTraceNodes(n int) Option {
	return func(o *EvalOptions) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxTraceNodes = n
	}
}

// WithTimeBudget aborts evaluation after d has elapsed. d == 0 disables
// the budget (the zero value already means "no budget"); a negative d
// makes New return ErrOptionViolation.
func WithTimeBudget(d time.Duration) Option {
	return func(o *EvalOptions) {
		if d < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.TimeBudget = d
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *EvalOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Deadliner wraps a caller-supplied ProgressFunc (or a no-op if nil) so
// the time budget and context cancellation are checked first on every
// call — a time-budget or context abort always wins even if the
// caller's own callback would have returned Continue.
type Deadliner struct {
	opts    EvalOptions
	start   time.Time
	onEvent ProgressFunc
}

// NewDeadliner starts the clock for opts and wraps onEvent (nil is
// treated as "always continue").
func NewDeadliner(opts EvalOptions, onEvent ProgressFunc) *Deadliner {
	if onEvent == nil {
		onEvent = func(int, int) Signal { return Continue }
	}
	return &Deadliner{opts: opts, start: time.Now(), onEvent: onEvent}
}

// Check reports whether the evaluator should continue past this node.
func (d *Deadliner) Check(evaluated, dirtyTotal int) Signal {
	if d.opts.Ctx != nil {
		select {
		case <-d.opts.Ctx.Done():
			return Abort
		default:
		}
	}
	if d.opts.TimeBudget > 0 && time.Since(d.start) >= d.opts.TimeBudget {
		return Abort
	}
	return d.onEvent(evaluated, dirtyTotal)
}
