// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

import "fmt"

// RunTail drives a self-recursive computation to completion in constant
// auxiliary space.
//
// Unlike [Run], the tail driver keeps no parent stack: a [Call] or [Defer]
// step replaces the current computation with the child outright, and the
// superseded computation becomes eligible for reclamation immediately.
//
// The caller must guarantee that every Call or Defer the computation
// issues is in tail position, with no work pending after the child
// completes. The driver cannot verify this; a non-tail Call under RunTail
// discards the suspended computation and its remaining work never runs.
//
// RunTail is the only driver that accepts [Defer] steps. The deferred
// factory is invoked exactly once, after the current computation has been
// released, so arbitrarily long deferred chains run without accumulating
// substituted computations.
func RunTail[A any](t Task) (A, error) {
	return finalize[A](evalTail(t))
}

// evalTail is the iterative tail driver loop: a single current computation
// and an input value, no stack.
func evalTail(t Task) (Value, error) {
	if t == nil {
		return nil, ErrNilTask
	}
	cur, in := t, Value(nil)
	for {
		s := cur.Resume(in)
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
