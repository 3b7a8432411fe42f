// SPDX-License-Identifier: MIT
package types

// REF: https://github.com/time-rs/time/blob/main/time-macros/src/format_description/mod.rs

import "fmt"

type (
	// Location is an absolute position in a source buffer.
	Location struct {
		// Byte is the 0-based byte offset.
		Byte int
		// Line is the 1-based line number.
		Line int
		// Column is the 0-based byte offset within Line.
		Column int
	}

	// Span is a half-open byte range, [Start.Byte, End.Byte), over a source buffer.
	Span struct {
		Start Location
		End   Location
	}

	// Diagnostic pairs a message with the Span it refers to.
	Diagnostic struct {
		Message string
		Span    Span
	}
)

// StartLocation is the Location of the first byte of any source.
var StartLocation = Location{Line: 1}

// Offset returns the Location n bytes after l.
//
// The bytes skipped are assumed not to contain a newline.
func (l Location) Offset(n int) Location {
	l.Byte += n
	l.Column += n

	return l
}

// To creates a Span from l to end.
func (l Location) To(end Location) Span { return Span{Start: l, End: end} }

// Span creates a zero-width Span at l.
func (l Location) Span() Span { return Span{Start: l, End: l} }

// Error attaches a message to a zero-width Span at l.
func (l Location) Error(msg string) Diagnostic { return l.Span().Error(msg) }

// String implements fmt.Stringer.
func (l Location) String() string { return fmt.Sprintf("%d:%d", l.Line, l.Column) }

// Len is the number of bytes covered by the Span.
func (s Span) Len() int { return s.End.Byte - s.Start.Byte }

// IsEmpty reports whether the Span is zero-width.
func (s Span) IsEmpty() bool { return s.Len() == 0 }

// ShrinkToStart returns a zero-width Span at the start of s.
func (s Span) ShrinkToStart() Span { return s.Start.Span() }

// ShrinkToEnd returns a zero-width Span at the end of s.
func (s Span) ShrinkToEnd() Span { return s.End.Span() }

// ShrinkToBefore returns the part of s preceding the byte at pos, relative to the Span's start.
func (s Span) ShrinkToBefore(pos int) Span { return Span{Start: s.Start, End: s.Start.Offset(pos)} }

// ShrinkToAfter returns the part of s following the byte at pos, relative to the Span's start.
func (s Span) ShrinkToAfter(pos int) Span { return Span{Start: s.Start.Offset(pos + 1), End: s.End} }

// Slice obtains the bytes of src covered by the Span.
func (s Span) Slice(src []byte) []byte { return src[s.Start.Byte:s.End.Byte] }

// Error attaches a message to the Span.
func (s Span) Error(msg string) Diagnostic { return Diagnostic{Message: msg, Span: s} }

// String implements fmt.Stringer.
func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Start.Byte, s.End.Byte) }

// Error implements the error interface.
func (d Diagnostic) Error() string { return fmt.Sprintf("%s at %s", d.Message, d.Span.Start) }
