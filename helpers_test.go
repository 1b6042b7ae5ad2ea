// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur_test

import (
	"context"
	"errors"

	"code.hybscloud.com/recur"
)

var errBoom = errors.New("boom")

// naiveFib is the plain recursive reference implementation.
func naiveFib(n int) int {
	if n < 2 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

// fib computes the n-th Fibonacci number with two nested children per
// level, combined after both complete. General-driver shape: the second
// child is created only after the first child's result has arrived.
func fib(n int) recur.Task {
	var first int
	phase := 0
	return recur.TaskFunc(func(in recur.Value) recur.Step {
		switch phase {
		case 0:
			if n < 2 {
				return recur.Done(n)
			}
			phase = 1
			return recur.Call(fib(n - 1))
		case 1:
			first = in.(int)
			phase = 2
			return recur.Call(fib(n - 2))
		default:
			return recur.Done(first + in.(int))
		}
	})
}

// sumTo accumulates 0+1+...+n with every child in tail position.
func sumTo(n, acc int) recur.Task {
	return recur.TaskFunc(func(recur.Value) recur.Step {
		if n == 0 {
			return recur.Done(acc)
		}
		return recur.Call(sumTo(n-1, acc+n))
	})
}

// deferSum is sumTo with deferred child construction.
func deferSum(n, acc int) recur.Task {
	return recur.TaskFunc(func(recur.Value) recur.Step {
		if n == 0 {
			return recur.Done(acc)
		}
		return recur.Defer(func() recur.Task { return deferSum(n-1, acc+n) })
	})
}

// nest builds a linear chain of n nested calls where every level adds one
// to its child's result. The addition after the child completes makes the
// chain deliberately non-tail.
func nest(n int) recur.Task {
	called := false
	return recur.TaskFunc(func(in recur.Value) recur.Step {
		if n == 0 {
			return recur.Done(0)
		}
		if !called {
			called = true
			return recur.Call(nest(n - 1))
		}
		return recur.Done(in.(int) + 1)
	})
}

// failAt builds a nested chain that fails at depth n with errBoom,
// leaving n suspended ancestors behind.
func failAt(n int) recur.Task {
	called := false
	return recur.TaskFunc(func(in recur.Value) recur.Step {
		if n == 0 {
			return recur.Fail(errBoom)
		}
		if !called {
			called = true
			return recur.Call(failAt(n - 1))
		}
		return recur.Done(in)
	})
}

// pingPong yields increasing values until limit, then completes with the
// last input. Stateless: all state rides on the yielded value, so the
// same task value can be driven repeatedly.
func pingPong(limit int) recur.Task {
	return recur.TaskFunc(func(in recur.Value) recur.Step {
		if in == nil {
			return recur.Yield(1)
		}
		v := in.(int)
		if v < limit {
			return recur.Yield(v + 1)
		}
		return recur.Done(v)
	})
}

// asyncFib mirrors fib in the asynchronous world.
func asyncFib(n int) recur.AsyncTask {
	var first int
	phase := 0
	return recur.AsyncTaskFunc(func(_ context.Context, in recur.Value) recur.AsyncStep {
		switch phase {
		case 0:
			if n < 2 {
				return recur.AsyncDone(n)
			}
			phase = 1
			return recur.AsyncCall(asyncFib(n - 1))
		case 1:
			first = in.(int)
			phase = 2
			return recur.AsyncCall(asyncFib(n - 2))
		default:
			return recur.AsyncDone(first + in.(int))
		}
	})
}

// ctxKey is the context key for tests asserting context forwarding.
type ctxKey struct{}
