// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package recur provides stack-safe drivers for resumable computations
// in Go.
//
// A resumable computation advances in discrete steps: each resumption
// receives an input value and reports an outcome. Deeply recursive and
// mutually recursive programs expressed this way run on an explicit
// driver loop instead of the Go call stack, so their depth is bounded by
// memory rather than by stack growth.
//
// # Resumable Computations
//
// [Task] is the synchronous computation contract. A driver calls Resume
// with an input and inspects the returned [Step]; the first resumption
// receives nil, and after a child completes the suspended computation is
// resumed with the child's result.
//
//   - [Task]: synchronous resumable computation
//   - [TaskFunc]: adapter from a step function to Task
//   - [Guard]: terminal-state enforcement (panics on resume after completion)
//
// # Step Outcomes
//
// A [Step] is a tagged variant built by its constructors. The computation
// states its outcome; drivers switch on the tag and never inspect payload
// shapes.
//
//   - [Done]: completed with a final result
//   - [Fail]: failed with an error
//   - [Yield]: suspended on a plain value (round-trip, not recursion)
//   - [Call]: suspended on a nested child computation
//   - [Defer]: suspended on a deferred child factory (tail driver only)
//   - [Step.Kind], [StepKind]: outcome variant accessors
//
// # Drivers
//
// [Run] is the general driver: it retains suspended parents on an
// explicit stack, supporting arbitrary composition at the cost of memory
// proportional to the nesting depth. [RunTail] is the tail driver: it
// substitutes each child in place and runs in constant auxiliary space,
// in exchange for the caller's guarantee that every suspension on a child
// is in tail position.
//
//   - [Run]: general driver, explicit parent stack
//   - [RunTail]: tail driver, in-place substitution, accepts [Defer]
//
// # Asynchronous Computations
//
// [AsyncTask] mirrors [Task] for computations whose resumptions may block
// waiting on external events. The asynchronous drivers await each step
// and then dispatch exactly as the synchronous drivers do. The context is
// forwarded to every resumption and never inspected by the drivers; a
// computation that honors cancellation reports it as its own failure.
//
// A single type cannot implement both Task and AsyncTask (the Resume
// signatures collide), so handing a computation to a driver of the wrong
// world is a compile-time error.
//
//   - [AsyncTask], [AsyncTaskFunc], [GuardAsync]
//   - [AsyncStep] and its constructors [AsyncDone], [AsyncFail],
//     [AsyncYield], [AsyncCall], [AsyncDefer]
//   - [RunContext]: asynchronous general driver
//   - [RunTailContext]: asynchronous tail driver
//
// # Bridging
//
// The two worlds convert at runtime. Conversion is lazy: children and
// factories are translated as they appear during evaluation.
//
//   - [Lift]: Task → AsyncTask (never blocks)
//   - [Lower]: AsyncTask → Task (bound to a fixed context)
//
// # Concurrent Groups
//
// Independent computations can be driven concurrently, one driver
// invocation per computation. Within a single invocation evaluation is
// strictly sequential; the group is the only concurrency boundary.
//
//   - [All]: drive computations concurrently, results in input order
//   - [AllWith]: with [GroupOptions] (concurrency limit, tail mode)
//
// # Classification
//
// [Classify] reports the driver capability of an arbitrary value in O(1):
// computation, deferred factory, or plain value, in both worlds.
// Classification serves code that accepts heterogeneous values before
// constructing steps; the drivers themselves only ever switch on step
// tags.
//
//   - [Classify], [Class]
//   - [Class.Nested], [Class.Deferred], [Class.Plain]
//
// # Errors
//
// A failure produced by the computation (a [Fail] step) is returned from
// the drivers unmodified. Driver misuse reports sentinel usage errors:
// [ErrNilTask], [ErrNilFactory], [ErrDeferredStep], [ErrInvalidStep],
// [ErrResultType]. Resuming an inert computation is a programming error;
// [Guard] and [GuardAsync] turn it into a panic.
//
// Nil completion convention: drivers treat a nil final value as
// “completed with the zero value”. Computations whose result type is a
// pointer or interface cannot use nil as a meaningful result; wrap such
// results if “completed with nil” must be distinguished from “completed
// with zero”.
//
// # Example
//
//	// sum counts down from n, accumulating in tail position.
//	func sum(n, acc int) recur.Task {
//		return recur.TaskFunc(func(recur.Value) recur.Step {
//			if n == 0 {
//				return recur.Done(acc)
//			}
//			return recur.Call(sum(n-1, acc+n))
//		})
//	}
//
//	total, err := recur.RunTail[int](sum(1_000_000, 0))
//	// total == 500000500000, err == nil
package recur
