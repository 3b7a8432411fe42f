// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/timefmt"
)

var ErrInvalidDescriptions = errors.New("invalid format descriptions")

var checkCmd = &cobra.Command{
	Use:   "check DESCRIPTION...",
	Short: "Validate format descriptions",
	Long: `Parse & compile every format description concurrently, reporting each
malformed description with the location of its first problem.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	inputs := make([][]byte, len(args))
	for index := range args {
		inputs[index] = []byte(args[index])
	}

	_, err := timefmt.ParseAll(ctx, inputs, libOptions()...)

	failed := indexErrors(err)
	if err != nil && len(failed) < 1 {
		return err
	}

	s := newStyles(colorEnabled(cfg.Color, cmd.OutOrStdout()))
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	next := 0
	for index, arg := range args {
		if next < len(failed) && failed[next].Index == index {
			s.renderError(errOut, inputs[index], failed[next].Err)
			next++
			continue
		}

		s.ok.Fprint(out, "ok")
		fmt.Fprintf(out, "   %s\n", arg)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidDescriptions, len(failed), len(args))
	}

	return nil
}

// indexErrors collects the per-input errors of a batch, ordered by index.
func indexErrors(err error) (out []*timefmt.IndexError) {
	var walk func(error)
	walk = func(e error) {
		switch e := e.(type) {
		case *timefmt.IndexError:
			out = append(out, e)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(e.Unwrap())
		}
	}
	walk(err)

	slices.SortFunc(out, func(a, b *timefmt.IndexError) int { return a.Index - b.Index })

	return
}
