// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

import "fmt"

// Run drives a computation to completion and returns its final result.
//
// Run supports arbitrary composition: a computation may suspend on nested
// children at any position, and each suspended parent is retained until
// its child completes. Auxiliary memory grows with the nesting depth of
// the computation, never with the Go call stack. For self-recursion in
// tail position, [RunTail] runs in constant space.
//
// The final value is asserted to A at the boundary; a nil final value
// completes with the zero value of A, and any other type mismatch reports
// [ErrResultType]. A [Fail] outcome is returned unmodified.
func Run[A any](t Task) (A, error) {
	st := acquireStack()
	v, err := eval(t, st)
	releaseStack(st)
	return finalize[A](v, err)
}

// eval is the iterative general driver loop. Suspended parents are pushed
// onto st, innermost on top; the innermost computation always runs next,
// so children complete strictly before their parents continue.
func eval(t Task, st *taskStack) (Value, error) {
	if t == nil {
		return nil, ErrNilTask
	}
	cur, in := t, Value(nil)
	for {
		s := cur.Resume(in)
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

// finalize types the final value at the driver boundary.
// A nil value completes with the zero value of A; any other value must
// have type A.
func finalize[A any](v Value, err error) (A, error) {
	var zero A
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	a, ok := v.(A)
	if !ok {
		return zero, fmt.Errorf("%w: computation produced %T", ErrResultType, v)
	}
	return a, nil
}
