// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type (
	// SafeCounter is a thread-safe counter.
	SafeCounter struct {
		m   sync.Mutex
		val int
	}
)

// Synchronization errors.
var (
	ErrInvalidGoroutineCount = errors.New("invalid goroutine count")
)

// Inc increments the counter.
func (c *SafeCounter) Inc() {
	c.m.Lock()
	defer c.m.Unlock()
	c.val++
}

// Value returns the current value of the counter.
func (c *SafeCounter) Value() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}

// MonitorChannels collects the completion status of operations goroutines.
//
// Each goroutine must send exactly once, on either done or errChan. All errors received are
// joined under errPrefix, which should be in the singular form.
func MonitorChannels(ctx context.Context, operations int, done <-chan struct{}, errChan <-chan error, errPrefix string) (err error) {
	if operations < 1 {
		err = fmt.Errorf("%s %w: %d", errPrefix, ErrInvalidGoroutineCount, operations)
		return
	}

	var errs []error
	for index := 0; index < operations; index++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-done:
		case e := <-errChan:
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		err = fmt.Errorf("%s %w", errPrefix, errors.Join(errs...))
	}

	return
}
