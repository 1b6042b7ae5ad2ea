// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

import "context"

// The two computation worlds convert at runtime: Lift views a synchronous
// computation asynchronously, and Lower binds an asynchronous computation
// to a fixed context so a synchronous driver can drive it. Conversion is
// lazy: each step is translated as it is produced, and children and
// factories are converted on demand during evaluation.

// Lift converts a synchronous computation into an asynchronous one.
// Steps translate one-for-one: children produced by [Call] and factories
// produced by [Defer] are lifted as they appear, and usage errors survive
// translation unchanged. Lift(nil) is nil.
//
// Lift never blocks; driving Lift(t) with [RunContext] is step-for-step
// equivalent to driving t with [Run].
func Lift(t Task) AsyncTask {
	if t == nil {
		return nil
	}
	return liftedTask{task: t}
}

type liftedTask struct {
	task Task
}

func (l liftedTask) Resume(_ context.Context, in Value) AsyncStep {
	s := l.task.Resume(in)
	switch s.kind {
	case StepDone:
		return AsyncDone(s.value)
	case StepFail:
		return AsyncFail(s.err)
	case StepYield:
		return AsyncYield(s.value)
	case StepCall:
		return AsyncCall(Lift(s.task))
	case StepDefer:
		if s.factory == nil {
			return AsyncDefer(nil)
		}
		factory := s.factory
		return AsyncDefer(func() AsyncTask { return Lift(factory()) })
	default:
		return AsyncStep{}
	}
}

// Lower converts an asynchronous computation into a synchronous one by
// binding it to a fixed context. Every resumption of the result forwards
// ctx; children and factories are lowered as they appear. Lower(ctx, nil)
// is nil.
//
// Lowering does not make a blocking resumption non-blocking: a step that
// waits on an external event still waits inside the synchronous driver.
// Lower(ctx, Lift(t)) behaves as t.
func Lower(ctx context.Context, t AsyncTask) Task {
	if t == nil {
		return nil
	}
	return loweredTask{ctx: ctx, task: t}
}

type loweredTask struct {
	ctx  context.Context
	task AsyncTask
}

func (l loweredTask) Resume(in Value) Step {
	s := l.task.Resume(l.ctx, in)
	switch s.kind {
	case StepDone:
		return Done(s.value)
	case StepFail:
		return Fail(s.err)
	case StepYield:
		return Yield(s.value)
	case StepCall:
		return Call(Lower(l.ctx, s.task))
	case StepDefer:
		if s.factory == nil {
			return Defer(nil)
		}
		factory := s.factory
		return Defer(func() Task { return Lower(l.ctx, factory()) })
	default:
		return Step{}
	}
}
