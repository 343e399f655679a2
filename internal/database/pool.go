package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrPoolExhausted is returned when no slot frees up before the acquire timeout.
var ErrPoolExhausted = errors.New("database: no connection slot available")

// Gate bounds the number of searches running against the store at once.
// Callers block in Acquire until a slot frees up or the timeout elapses.
type Gate struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

// NewGate creates a Gate with size slots. A non-positive timeout waits for
// as long as ctx allows.
func NewGate(size int, timeout time.Duration) *Gate {
	if size < 1 {
		size = 1
	}
	return &Gate{
		sem:     semaphore.NewWeighted(int64(size)),
		timeout: timeout,
	}
}

// Acquire takes one slot. The returned release func is safe to call more than once.
// ErrPoolExhausted means the gate's own timeout expired; when the caller's ctx
// ends first its error is returned as is.
func (g *Gate) Acquire(ctx context.Context) (func(), error) {
	waitCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if err := g.sem.Acquire(waitCtx, 1); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPoolExhausted, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() { g.sem.Release(1) })
	}, nil
}
