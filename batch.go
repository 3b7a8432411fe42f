// SPDX-License-Identifier: MIT
package timefmt

import (
	"context"
	"fmt"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/timefmt/types"
)

// ParseAll compiles several format descriptions concurrently on a bounded worker pool.
//
// The Descriptions are returned in input order. On failure the returned error joins an
// *IndexError for every input that failed, with nil Descriptions.
func ParseAll(ctx context.Context, inputs [][]byte, options ...Option) (descs []Description, err error) {
	cfg := NewConfig(options...)

	if len(inputs) < 1 {
		return
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithLogger(cfg.Logger))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseBatch, err)
		return
	}
	defer pool.Release()

	results := make([]Description, len(inputs))
	done := make(chan struct{}, len(inputs))
	errChan := make(chan error, len(inputs))

	var failed types.SafeCounter
	for index := range inputs {
		task := func() {
			defer func() {
				if r := recover(); r != nil {
					failed.Inc()
					errChan <- &IndexError{Index: index, Err: fmt.Errorf("%w: %v", ErrPanicked, r)}
				}
			}()

			desc, cErr := Compile(inputs[index], WithConfig(cfg))
			if cErr != nil {
				failed.Inc()
				errChan <- &IndexError{Index: index, Err: cErr}
				return
			}

			results[index] = desc
			done <- struct{}{}
		}

		if err = pool.Submit(task); err != nil {
			err = fmt.Errorf("%w: %v", ErrParseBatch, err)
			return
		}
	}

	if err = types.MonitorChannels(ctx, len(inputs), done, errChan, "format description"); err != nil {
		if cfg.Debug {
			cfg.Logger.Debugf("%d of %d format descriptions failed", failed.Value(), len(inputs))
		}
		err = fmt.Errorf("%w: %w", ErrParseBatch, err)
		return
	}
	descs = results

	return
}
