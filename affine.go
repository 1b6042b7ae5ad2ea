// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

import (
	"context"
	"sync/atomic"
)

// Terminal-state enforcement for resumable computations.
// A computation that has reported Done or Fail is inert; the wrappers here
// turn a resume of an inert computation into a panic instead of undefined
// behavior.

// Guard wraps a computation with terminal-state enforcement.
// The wrapped computation may be resumed any number of times while it
// suspends; after it reports [Done] or [Fail], any further Resume panics.
// Guard of a nil computation returns nil.
func Guard(t Task) Task {
	if t == nil {
		return nil
	}
	return &guardedTask{task: t}
}

type guardedTask struct {
	used atomic.Uintptr
	task Task
}

// Resume advances the wrapped computation.
// Panics if the computation has already completed or failed.
func (g *guardedTask) Resume(in Value) Step {
	if g.used.Load() != 0 {
		panic("recur: computation resumed after completion")
	}
	s := g.task.Resume(in)
	if s.kind == StepDone || s.kind == StepFail {
		g.used.Store(1)
	}
	return s
}

// GuardAsync wraps an asynchronous computation with terminal-state
// enforcement, mirroring [Guard].
func GuardAsync(t AsyncTask) AsyncTask {
	if t == nil {
		return nil
	}
	return &guardedAsyncTask{task: t}
}

type guardedAsyncTask struct {
	used atomic.Uintptr
	task AsyncTask
}

// Resume advances the wrapped computation.
// Panics if the computation has already completed or failed.
func (g *guardedAsyncTask) Resume(ctx context.Context, in Value) AsyncStep {
	if g.used.Load() != 0 {
		panic("recur: computation resumed after completion")
	}
	s := g.task.Resume(ctx, in)
	if s.kind == StepDone || s.kind == StepFail {
		g.used.Store(1)
	}
	return s
}
