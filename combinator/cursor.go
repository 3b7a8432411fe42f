// SPDX-License-Identifier: MIT
package combinator

type (
	// Cursor is a position within a borrowed input.
	//
	// The bytes before the position have been consumed; those after remain.
	Cursor struct {
		src []byte
		pos int
	}
)

// NewCursor creates a Cursor at the start of src.
func NewCursor(src []byte) *Cursor { return &Cursor{src: src} }

// Pos obtains the number of bytes consumed.
func (c *Cursor) Pos() int { return c.pos }

// Source obtains the complete input.
func (c *Cursor) Source() []byte { return c.src }

// Remaining obtains the unconsumed input.
func (c *Cursor) Remaining() []byte { return c.src[c.pos:] }

// Len is the number of unconsumed bytes.
func (c *Cursor) Len() int { return len(c.src) - c.pos }

// Done reports whether the input is exhausted.
func (c *Cursor) Done() bool { return c.pos >= len(c.src) }

// Since obtains the bytes consumed after the position mark.
func (c *Cursor) Since(mark int) []byte { return c.src[mark:c.pos] }

// advance consumes n bytes, returning them.
func (c *Cursor) advance(n int) (consumed []byte) {
	consumed = c.src[c.pos : c.pos+n]
	c.pos += n

	return
}
