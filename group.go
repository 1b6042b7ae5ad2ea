// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package recur

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// GroupOptions specifies how a group of computations is driven.
type GroupOptions struct {
	// Limit controls how many computations may be driven concurrently.
	//
	// Numbers less than or equal to zero indicate no limit.
	Limit int

	// Tail selects the tail driver for every computation in the group.
	// Each computation then carries the tail-position obligation of
	// [RunTail].
	Tail bool
}

// All drives independent asynchronous computations concurrently, one
// driver invocation per computation, and returns their results in input
// order.
//
// The computations must be independent: each remains a closed traversal,
// and no steps are exchanged between invocations. The first failure
// cancels the context handed to the remaining computations and is
// returned, annotated with the position of the failed computation; a
// computation that ignores the context simply runs to completion.
//
// All is the same as [AllWith] with the default [GroupOptions].
func All[A any](ctx context.Context, tasks ...AsyncTask) ([]A, error) {
	return AllWith[A](ctx, GroupOptions{}, tasks...)
}

// AllWith drives independent asynchronous computations concurrently with
// custom options.
func AllWith[A any](ctx context.Context, opts GroupOptions, tasks ...AsyncTask) ([]A, error) {
	results := make([]A, len(tasks))
	group, subCtx := errgroup.WithContext(ctx)
	if opts.Limit > 0 {
		group.SetLimit(opts.Limit)
	}
	for i, t := range tasks {
		i, t := i, t
		group.Go(func() error {
			var (
				a   A
				err error
			)
			if opts.Tail {
				a, err = RunTailContext[A](subCtx, t)
			} else {
				a, err = RunContext[A](subCtx, t)
			}
			if err != nil {
				return fmt.Errorf("computation %d: %w", i, err)
			}
			results[i] = a
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
