// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur_test

import (
	"context"
	"testing"

	"code.hybscloud.com/recur"
)

// BenchmarkRunPure measures the general driver on an immediately completing computation.
func BenchmarkRunPure(b *testing.B) {
	task := recur.TaskFunc(func(recur.Value) recur.Step {
		return recur.Done(42)
	})
	for i := 0; i < b.N; i++ {
		_, _ = recur.Run[int](task)
	}
}

// BenchmarkRunFib measures the general driver on a branching nested computation.
func BenchmarkRunFib(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = recur.Run[int](fib(12))
	}
}

// BenchmarkRunNest measures the general driver on a linear nested chain.
func BenchmarkRunNest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = recur.Run[int](nest(100))
	}
}

// BenchmarkRunTailSum measures the tail driver on a self-call chain.
func BenchmarkRunTailSum(b *testing.B) {
	task := sumTo(1000, 0)
	for i := 0; i < b.N; i++ {
		_, _ = recur.RunTail[int](task)
	}
}

// BenchmarkRunTailDeferSum measures the tail driver on a deferred-factory chain.
func BenchmarkRunTailDeferSum(b *testing.B) {
	task := deferSum(1000, 0)
	for i := 0; i < b.N; i++ {
		_, _ = recur.RunTail[int](task)
	}
}

// BenchmarkYieldRoundTrip measures suspension and resumption without nesting.
func BenchmarkYieldRoundTrip(b *testing.B) {
	task := pingPong(100)
	for i := 0; i < b.N; i++ {
		_, _ = recur.RunTail[int](task)
	}
}

// BenchmarkGuard measures the single-use wrapper overhead on the general driver.
func BenchmarkGuard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = recur.Run[int](recur.Guard(fib(8)))
	}
}

// BenchmarkRunContextFib measures the asynchronous general driver.
func BenchmarkRunContextFib(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		_, _ = recur.RunContext[int](ctx, asyncFib(12))
	}
}
