// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

// Class describes the driver capability of an arbitrary value:
// a resumable computation, a deferred computation factory, or a plain value.
//
// Drivers themselves never classify: a [Step] states its outcome
// explicitly. Classification serves code that accepts heterogeneous values
// before constructing steps, and diagnostics.
type Class uint8

const (
	// ClassValue is a plain value with no driver capability.
	ClassValue Class = iota

	// ClassTask is a synchronous resumable computation ([Task]).
	ClassTask

	// ClassFactory is a deferred factory producing a synchronous
	// computation (func() [Task]).
	ClassFactory

	// ClassAsyncTask is an asynchronous resumable computation
	// ([AsyncTask]).
	ClassAsyncTask

	// ClassAsyncFactory is a deferred factory producing an asynchronous
	// computation (func() [AsyncTask]).
	ClassAsyncFactory
)

// String returns the name of the class.
func (c Class) String() string {
	switch c {
	case ClassTask:
		return "task"
	case ClassFactory:
		return "factory"
	case ClassAsyncTask:
		return "async task"
	case ClassAsyncFactory:
		return "async factory"
	default:
		return "value"
	}
}

// Nested reports whether the class is a resumable computation,
// synchronous or asynchronous.
func (c Class) Nested() bool {
	return c == ClassTask || c == ClassAsyncTask
}

// Deferred reports whether the class is a deferred computation factory,
// synchronous or asynchronous.
func (c Class) Deferred() bool {
	return c == ClassFactory || c == ClassAsyncFactory
}

// Plain reports whether the value carries no driver capability.
func (c Class) Plain() bool {
	return c == ClassValue
}

// Classify reports the driver capability of v.
//
// Classification is structural and O(1): interface satisfaction for
// computations, exact function types for factories. Look-alikes are plain
// values: a func(int) [Task], a func() int, or a bare func(in Value) Step
// without the [Task] method set all classify as [ClassValue], as does nil.
//
// A synchronous computation and an asynchronous one are distinct
// capabilities; no type can be both, since the two Resume signatures
// collide.
func Classify(v any) Class {
	switch v.(type) {
	case nil:
		return ClassValue
	case Task:
		return ClassTask
	case AsyncTask:
		return ClassAsyncTask
	case func() Task:
		return ClassFactory
	case func() AsyncTask:
		return ClassAsyncFactory
	default:
		return ClassValue
	}
}
