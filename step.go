// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

// Value represents a type-erased value flowing between a driver and a
// resumable computation: resume inputs, yielded payloads, and final results.
// Concrete types are recovered via type assertions at driver boundaries.
type Value = any

// StepKind identifies the outcome variant carried by a [Step].
// The zero StepKind is not a valid outcome; drivers reject it with
// [ErrInvalidStep].
type StepKind uint8

const (
	// StepInvalid is the kind of the zero Step. It is never produced by
	// the step constructors.
	StepInvalid StepKind = iota

	// StepDone marks a completed computation carrying its final result.
	StepDone

	// StepFail marks a failed computation carrying its error.
	StepFail

	// StepYield marks a suspension on a plain value. The driver hands the
	// value back as the next resume input without creating a child.
	StepYield

	// StepCall marks a suspension on a nested child computation. The
	// driver runs the child to completion and resumes the suspended
	// computation with the child's result.
	StepCall

	// StepDefer marks a suspension on a deferred child factory. The tail
	// driver invokes the factory exactly once, after the current
	// computation is no longer referenced.
	StepDefer
)

// String returns the lower-case name of the step kind.
func (k StepKind) String() string {
	switch k {
	case StepDone:
		return "done"
	case StepFail:
		return "fail"
	case StepYield:
		return "yield"
	case StepCall:
		return "call"
	case StepDefer:
		return "defer"
	default:
		return "invalid"
	}
}

// Step is the outcome of resuming a computation once: a tagged variant
// built by one of [Done], [Fail], [Yield], [Call], or [Defer]. The
// computation states its outcome explicitly; drivers switch on the tag and
// never inspect payload shapes.
//
// A Step is immutable after construction. The zero Step is invalid.
type Step struct {
	kind    StepKind
	value   Value
	err     error
	task    Task
	factory func() Task
}

// Kind returns the outcome variant of the step.
func (s Step) Kind() StepKind { return s.kind }

// Done creates a terminal step carrying the computation's final result.
// A nil result completes with the zero value of the driver's result type.
func Done(v Value) Step {
	return Step{kind: StepDone, value: v}
}

// Fail creates a terminal step carrying the computation's failure.
// The error is propagated from the driver unmodified.
func Fail(err error) Step {
	return Step{kind: StepFail, err: err}
}

// Yield creates a suspension on a plain value. The driver resumes the same
// computation with v as the next input. Yield is a value round-trip through
// the driver, not recursion: no child computation is created.
func Yield(v Value) Step {
	return Step{kind: StepYield, value: v}
}

// Call creates a suspension on a nested child computation. The driver runs
// child to completion first; the suspended computation is then resumed with
// the child's result.
func Call(child Task) Step {
	return Step{kind: StepCall, task: child}
}

// Defer creates a suspension on a deferred child factory for tail-position
// recursion. The tail driver discards the current computation, then invokes
// factory exactly once and continues with the computation it produces.
//
// The factory must produce a non-nil computation. The general driver
// rejects deferred steps with [ErrDeferredStep]; see [RunTail].
func Defer(factory func() Task) Step {
	return Step{kind: StepDefer, factory: factory}
}
