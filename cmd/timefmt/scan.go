// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/timefmt"
	"gitlab.com/fisherprime/timefmt/scan"
)

var scanPrefix bool

var scanCmd = &cobra.Command{
	Use:   "scan DESCRIPTION INPUT",
	Short: "Scan text against a format description",
	Long: `Compile the format description & match INPUT against it, printing the
scanned field values as YAML.`,
	Args: cobra.ExactArgs(2),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVarP(&scanPrefix, "prefix", "p", false, "Allow unmatched trailing input")
}

func runScan(cmd *cobra.Command, args []string) (err error) {
	desc, input := []byte(args[0]), []byte(args[1])
	errOut := cmd.ErrOrStderr()
	s := newStyles(colorEnabled(cfg.Color, errOut))

	compiled, err := timefmt.Compile(desc, libOptions()...)
	if err != nil {
		s.renderError(errOut, desc, err)
		return
	}

	var (
		parsed   *scan.Parsed
		consumed = len(input)
	)
	if scanPrefix {
		parsed, consumed, err = scan.ScanPrefix(compiled, input, libOptions()...)
	} else {
		parsed, err = scan.Scan(compiled, input, libOptions()...)
	}
	if err != nil {
		s.renderError(errOut, input, err)
		return
	}

	fields := parsed.Map()
	if scanPrefix {
		fields["consumed"] = consumed
	}

	out, err := yaml.Marshal(fields)
	if err != nil {
		return
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))

	return
}
