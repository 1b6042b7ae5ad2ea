// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

import "sync"

// Parent stacks for the general driver are pooled across invocations.
// Release zeroes the retained slots; a pooled stack never keeps a
// completed or abandoned computation alive.

// taskStack holds the suspended parents of one general driver invocation,
// outermost first.
type taskStack struct {
	tasks []Task
}

func (st *taskStack) push(t Task) {
	st.tasks = append(st.tasks, t)
}

// pop removes and returns the innermost suspended parent.
// The vacated slot is cleared so the popped computation is reclaimable
// once it completes.
func (st *taskStack) pop() Task {
	n := len(st.tasks) - 1
	t := st.tasks[n]
	st.tasks[n] = nil
	st.tasks = st.tasks[:n]
	return t
}

func (st *taskStack) depth() int { return len(st.tasks) }

// asyncStack is the asynchronous counterpart of taskStack.
type asyncStack struct {
	tasks []AsyncTask
}

func (st *asyncStack) push(t AsyncTask) {
	st.tasks = append(st.tasks, t)
}

func (st *asyncStack) pop() AsyncTask {
	n := len(st.tasks) - 1
	t := st.tasks[n]
	st.tasks[n] = nil
	st.tasks = st.tasks[:n]
	return t
}

func (st *asyncStack) depth() int { return len(st.tasks) }

var stackPool = sync.Pool{New: func() any { return new(taskStack) }}
var asyncStackPool = sync.Pool{New: func() any { return new(asyncStack) }}

// acquireStack returns an empty stack, reusing pooled capacity.
func acquireStack() *taskStack {
	return stackPool.Get().(*taskStack)
}

// releaseStack zeroes st and returns it to the pool.
func releaseStack(st *taskStack) {
	clear(st.tasks)
	st.tasks = st.tasks[:0]
	stackPool.Put(st)
}

// acquireAsyncStack returns an empty stack, reusing pooled capacity.
func acquireAsyncStack() *asyncStack {
	return asyncStackPool.Get().(*asyncStack)
}

// releaseAsyncStack zeroes st and returns it to the pool.
func releaseAsyncStack(st *asyncStack) {
	clear(st.tasks)
	st.tasks = st.tasks[:0]
	asyncStackPool.Put(st)
}
