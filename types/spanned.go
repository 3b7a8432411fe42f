// SPDX-License-Identifier: MIT
package types

type (
	// Spanned pairs a value with the Span of the source it was derived from.
	Spanned[T any] struct {
		Value T
		Span  Span
	}
)

// NewSpanned attaches a Span to a value.
func NewSpanned[T any](value T, span Span) Spanned[T] { return Spanned[T]{Value: value, Span: span} }

// SpannedBytes attaches a Span to the bytes of src it covers.
//
// The value shares its backing array with src.
func SpannedBytes(src []byte, span Span) Spanned[ByteSlice] {
	return Spanned[ByteSlice]{Value: ByteSlice(span.Slice(src)), Span: span}
}
