// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	dErrors "playerid/pkg/domain-errors"
)

// ConcurrentResult counts outcomes of concurrent lookups by error code.
type ConcurrentResult struct {
	Successes        int32
	InvalidUsernames int32
	TransportErrors  int32
	Others           int32
}

// Total returns the number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.InvalidUsernames + r.TransportErrors + r.Others
}

// RunConcurrent runs fn in n goroutines and tallies the results.
func RunConcurrent(n int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, invalid, transport, others atomic.Int32

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := fn(i)
			switch {
			case err == nil:
				successes.Add(1)
			case dErrors.HasCode(err, dErrors.CodeInvalidUsername):
				invalid.Add(1)
			case dErrors.HasCode(err, dErrors.CodeTransport):
				transport.Add(1)
			default:
				others.Add(1)
			}
		}()
	}
	wg.Wait()

	return &ConcurrentResult{
		Successes:        successes.Load(),
		InvalidUsernames: invalid.Load(),
		TransportErrors:  transport.Load(),
		Others:           others.Load(),
	}
}

// RunConcurrentCtx is RunConcurrent with a shared context.
func RunConcurrentCtx(ctx context.Context, n int, fn func(ctx context.Context, idx int) error) *ConcurrentResult {
	return RunConcurrent(n, func(idx int) error {
		return fn(ctx, idx)
	})
}
