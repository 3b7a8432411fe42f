// SPDX-License-Identifier: MIT
package types

import "bytes"

type (
	// ByteSlice is a []byte borrowed from a source buffer.
	ByteSlice []byte
)

// Equal reports whether the ByteSlice holds the same bytes as s.
func (sl ByteSlice) Equal(s string) bool { return string(sl) == s }

// Locate returns the index of the first instance of b, or -1.
func (sl ByteSlice) Locate(b byte) int { return bytes.IndexByte(sl, b) }

// Cut slices the ByteSlice around the first instance of sep.
//
// found is false when sep is absent, in which case before holds the entire ByteSlice.
func (sl ByteSlice) Cut(sep byte) (before, after ByteSlice, found bool) {
	index := sl.Locate(sep)
	if index < 0 {
		before = sl
		return
	}

	before, after, found = sl[:index], sl[index+1:], true

	return
}

// String is the fmt.Stringer implementation for ByteSlice.
//
// This copies the bytes; use it at output boundaries only.
func (sl ByteSlice) String() string { return string(sl) }
