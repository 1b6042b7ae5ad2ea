// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

import "errors"

// Driver usage errors.
//
// A failure produced by the computation itself (a [Fail] step) is returned
// from the drivers unmodified. The sentinels below report misuse of the
// driver contract instead; match them with [errors.Is].

var (
	// ErrNilTask reports a nil computation where a resumable computation
	// is required: a nil driver argument, a [Call] step carrying a nil
	// child, or a deferred factory that produced nil.
	ErrNilTask = errors.New("nil computation")

	// ErrNilFactory reports a [Defer] step carrying a nil factory.
	ErrNilFactory = errors.New("nil deferred computation factory")

	// ErrDeferredStep reports a [Defer] step observed by the general
	// driver. Deferred factories exist to delay child construction until
	// the tail driver has discarded the current computation; the general
	// driver retains the parent, so the deferral has no meaning there.
	// Use [Call], or drive the computation with [RunTail].
	ErrDeferredStep = errors.New("deferred step requires the tail driver")

	// ErrInvalidStep reports a step that carries no recognized outcome,
	// such as the zero Step value.
	ErrInvalidStep = errors.New("invalid step")

	// ErrResultType reports a completed computation whose final result
	// does not have the type requested at the driver boundary.
	ErrResultType = errors.New("result type mismatch")
)
