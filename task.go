// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

// Task is a resumable computation driven synchronously.
//
// A driver advances the computation by calling Resume with an input value
// and inspecting the returned [Step]. The first resumption of a computation
// receives a nil input; after a [Call] completes, the suspended computation
// is resumed with the child's result; after a [Yield], with the yielded
// value.
//
// A computation that has reported [Done] or [Fail] is inert. Resuming an
// inert computation is a programming error; implementations are not
// required to detect it. [Guard] wraps a Task with enforcement.
//
// Implementations are stateful and belong to a single driver invocation.
// Drivers never retain a Task beyond its completion.
type Task interface {
	Resume(in Value) Step
}

// TaskFunc adapts an ordinary step function to the [Task] interface.
// The function itself carries any state the computation needs, typically
// as captured variables.
type TaskFunc func(in Value) Step

// Resume advances the computation by calling f.
func (f TaskFunc) Resume(in Value) Step { return f(in) }
