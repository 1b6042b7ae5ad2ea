// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

import (
	"context"
	"fmt"
)

// Asynchronous mirror of the driver surface. An asynchronous computation
// may block in Resume waiting on an external event before reporting its
// outcome; the drivers await each step and then dispatch on it exactly as
// the synchronous drivers do.
//
// The context is forwarded to every resumption and never inspected by the
// drivers themselves. A computation that honors cancellation reports it as
// its own [AsyncFail] outcome.

// AsyncTask is a resumable computation driven asynchronously.
//
// The contract mirrors [Task]: the first resumption receives a nil input,
// a completed child's result arrives as the next input, and a computation
// that has reported a terminal outcome is inert. A single type cannot
// implement both Task and AsyncTask, so a synchronous driver can never be
// handed an asynchronous computation or vice versa.
type AsyncTask interface {
	Resume(ctx context.Context, in Value) AsyncStep
}

// AsyncTaskFunc adapts an ordinary step function to the [AsyncTask]
// interface.
type AsyncTaskFunc func(ctx context.Context, in Value) AsyncStep

// Resume advances the computation by calling f.
func (f AsyncTaskFunc) Resume(ctx context.Context, in Value) AsyncStep {
	return f(ctx, in)
}

// AsyncStep is the outcome of resuming an asynchronous computation once.
// It mirrors [Step] with asynchronous children and factories; the kinds
// are shared.
//
// An AsyncStep is immutable after construction. The zero AsyncStep is
// invalid.
type AsyncStep struct {
	kind    StepKind
	value   Value
	err     error
	task    AsyncTask
	factory func() AsyncTask
}

// Kind returns the outcome variant of the step.
func (s AsyncStep) Kind() StepKind { return s.kind }

// AsyncDone creates a terminal step carrying the computation's final
// result. This is the asynchronous counterpart of [Done].
func AsyncDone(v Value) AsyncStep {
	return AsyncStep{kind: StepDone, value: v}
}

// AsyncFail creates a terminal step carrying the computation's failure.
// This is the asynchronous counterpart of [Fail].
func AsyncFail(err error) AsyncStep {
	return AsyncStep{kind: StepFail, err: err}
}

// AsyncYield creates a suspension on a plain value.
// This is the asynchronous counterpart of [Yield].
func AsyncYield(v Value) AsyncStep {
	return AsyncStep{kind: StepYield, value: v}
}

// AsyncCall creates a suspension on a nested child computation.
// This is the asynchronous counterpart of [Call].
func AsyncCall(child AsyncTask) AsyncStep {
	return AsyncStep{kind: StepCall, task: child}
}

// AsyncDefer creates a suspension on a deferred child factory.
// This is the asynchronous counterpart of [Defer]; only [RunTailContext]
// accepts it.
func AsyncDefer(factory func() AsyncTask) AsyncStep {
	return AsyncStep{kind: StepDefer, factory: factory}
}

// RunContext drives an asynchronous computation to completion, awaiting
// each step. Control flow, parent retention, and the error contract are
// those of [Run].
//
// ctx is handed to every resumption unchanged. RunContext returns only
// when the computation reports a terminal outcome; a computation that
// ignores ctx blocks the driver with it.
func RunContext[A any](ctx context.Context, t AsyncTask) (A, error) {
	st := acquireAsyncStack()
	v, err := evalContext(ctx, t, st)
	releaseAsyncStack(st)
	return finalize[A](v, err)
}

// evalContext is the asynchronous general driver loop, mirroring eval.
func evalContext(ctx context.Context, t AsyncTask, st *asyncStack) (Value, error) {
	if t == nil {
		return nil, ErrNilTask
	}
	cur, in := t, Value(nil)
	for {
		s := cur.Resume(ctx, in)
		switch s.kind {
		case StepDone:
			if st.depth() == 0 {
				return s.value, nil
			}
			cur = st.pop()
			in = s.value
		case StepFail:
			if s.err == nil {
				return nil, ErrInvalidStep
			}
			return nil, s.err
		case StepYield:
			in = s.value
		case StepCall:
			if s.task == nil {
				return nil, fmt.Errorf("call step: %w", ErrNilTask)
			}
			st.push(cur)
			cur = s.task
			in = nil
		case StepDefer:
			return nil, ErrDeferredStep
		default:
			return nil, ErrInvalidStep
		}
	}
}

// RunTailContext drives a self-recursive asynchronous computation in
// constant auxiliary space, awaiting each step. Control flow, the
// tail-position obligation, and deferred factory handling are those of
// [RunTail].
func RunTailContext[A any](ctx context.Context, t AsyncTask) (A, error) {
	return finalize[A](evalTailContext(ctx, t))
}

// evalTailContext is the asynchronous tail driver loop, mirroring evalTail.
func evalTailContext(ctx context.Context, t AsyncTask) (Value, error) {
	if t == nil {
		return nil, ErrNilTask
	}
	cur, in := t, Value(nil)
	for {
		s := cur.Resume(ctx, in)
		switch s.kind {
		case StepDone:
			return s.value, nil
		case StepFail:
			if s.err == nil {
				return nil, ErrInvalidStep
			}
			return nil, s.err
		case StepYield:
			in = s.value
		case StepCall:
			if s.task == nil {
				return nil, fmt.Errorf("call step: %w", ErrNilTask)
			}
			cur = s.task
			in = nil
		case StepDefer:
			if s.factory == nil {
				return nil, ErrNilFactory
			}
			cur = nil // current computation is reclaimable before the factory runs
			next := s.factory()
			if next == nil {
				return nil, fmt.Errorf("deferred factory returned %w", ErrNilTask)
			}
			cur = next
			in = nil
		default:
			return nil, ErrInvalidStep
		}
	}
}
