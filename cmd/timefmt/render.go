// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"gitlab.com/fisherprime/timefmt"
	"gitlab.com/fisherprime/timefmt/scan"
)

// styles holds the diagnostic color formatters.
type styles struct {
	error    *color.Color
	location *color.Color
	gutter   *color.Color
	caret    *color.Color
	ok       *color.Color
}

// newStyles creates the diagnostic formatters; enabled=false renders plain text.
func newStyles(enabled bool) *styles {
	s := &styles{
		error:    color.New(color.Bold, color.FgHiRed),
		location: color.New(color.FgHiBlue),
		gutter:   color.New(color.Bold, color.FgHiBlue),
		caret:    color.New(color.Bold, color.FgHiRed),
		ok:       color.New(color.FgHiGreen),
	}

	if !enabled {
		s.error.DisableColor()
		s.location.DisableColor()
		s.gutter.DisableColor()
		s.caret.DisableColor()
		s.ok.DisableColor()
	}

	return s
}

// colorEnabled resolves a color mode for a writer; auto requires a terminal & an unset NO_COLOR.
func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// locate extracts the byte range an error refers to.
func locate(err error) (label string, start, end int, ok bool) {
	var fErr *timefmt.Error
	if errors.As(err, &fErr) {
		span := fErr.Diagnostic.Span
		return fErr.Diagnostic.Message, span.Start.Byte, span.End.Byte, true
	}

	var sErr *scan.Error
	if errors.As(err, &sErr) {
		return "", sErr.Index, sErr.Index, true
	}

	return
}

// renderError writes err, followed by the offending line of src with a caret underline when the
// error carries a location.
func (s *styles) renderError(w io.Writer, src []byte, err error) {
	s.error.Fprint(w, "error")
	fmt.Fprintf(w, ": %v\n", err)

	label, start, end, ok := locate(err)
	if !ok {
		return
	}

	start = min(max(start, 0), len(src))
	lineStart := bytes.LastIndexByte(src[:start], '\n') + 1
	lineEnd := len(src)
	if index := bytes.IndexByte(src[start:], '\n'); index >= 0 {
		lineEnd = start + index
	}

	line := bytes.Count(src[:start], []byte{'\n'}) + 1
	column := start - lineStart
	width := max(min(end, lineEnd)-start, 1)

	gutter := strings.Repeat(" ", len(strconv.Itoa(line)))
	s.location.Fprintf(w, "%s--> %d:%d\n", gutter, line, column+1)
	s.gutter.Fprintf(w, "%s |\n", gutter)
	s.gutter.Fprintf(w, "%d |", line)
	fmt.Fprintf(w, " %s\n", src[lineStart:lineEnd])
	s.gutter.Fprintf(w, "%s |", gutter)
	fmt.Fprintf(w, " %s", strings.Repeat(" ", column))
	s.caret.Fprint(w, strings.Repeat("^", width))
	if label != "" {
		s.caret.Fprintf(w, " %s", label)
	}
	fmt.Fprintln(w)
}
