// Package pool provides the bounded-concurrency executor used for scoring
// candidate batches. A fixed permit count caps simultaneous in-flight work;
// excess items queue for a free slot.
package pool

import (
	"context"
	"fmt"
	"sync"
)

// defaultPermits caps concurrent fuzzy-match heavy scoring work.
const defaultPermits = 32

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithPermits sets the permit count.
func WithPermits(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.permits = n
		}
	}
}

// Pool is a reusable permit pool. It holds no per-batch state; a single Pool
// serves concurrent batches, which then share the permit budget.
type Pool struct {
	permits int
	slots   chan struct{}
}

// New constructs a Pool with the default permit count.
func New(opts ...Option) *Pool {
	p := &Pool{permits: defaultPermits}
	for _, opt := range opts {
		opt(p)
	}
	p.slots = make(chan struct{}, p.permits)
	return p
}

// Permits returns the configured permit count.
func (p *Pool) Permits() int {
	return p.permits
}

// ForEach invokes fn(i) for every i in [0,n) with at most the permit count
// running concurrently. Item order of completion is unspecified; callers
// index into shared result slices by i. When ctx is canceled before all items
// are dispatched, remaining items are skipped, already-dispatched work drains,
// and the context error is returned. There is no mid-item abort.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(i int)) error {
	var wg sync.WaitGroup
	var dispatchErr error

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			dispatchErr = fmt.Errorf("scoring batch interrupted: %w", ctx.Err())
		case p.slots <- struct{}{}:
			wg.Add(1)
			go func(i int) {
				defer func() {
					<-p.slots
					wg.Done()
				}()
				fn(i)
			}(i)
		}
		if dispatchErr != nil {
			break
		}
	}

	wg.Wait()
	return dispatchErr
}
