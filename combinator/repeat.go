// SPDX-License-Identifier: MIT
package combinator

import "fmt"

type (
	// NToMParser applies its element parser greedily between N & M times.
	NToMParser[T any] struct {
		Elem Parser[T]
		N, M uint8
	}
)

// NToM consumes between n and m instances of the element parser.
//
// Panics when m < n.
func NToM[T any](n, m uint8, elem Parser[T]) NToMParser[T] {
	checkBounds(n, m)

	return NToMParser[T]{Elem: elem, N: n, M: m}
}

// ExactlyN consumes exactly n instances of the element parser.
func ExactlyN[T any](n uint8, elem Parser[T]) NToMParser[T] { return NToM(n, n, elem) }

// Parse implements the Parser interface, returning the consumed bytes.
//
// The first N applications are mandatory, any failure among them leaves the Cursor unchanged.
// Up to M-N further applications follow, stopping at the first failure.
func (p NToMParser[T]) Parse(c *Cursor) (consumed []byte, ok bool) {
	scratch := *c
	mark := scratch.pos

	// Mandatory.
	for index := uint8(0); index < p.N; index++ {
		if _, ok = p.Elem.Parse(&scratch); !ok {
			return
		}
	}

	// Optional.
	for index := p.N; index < p.M; index++ {
		if _, matched := p.Elem.Parse(&scratch); !matched {
			break
		}
	}

	consumed, ok = scratch.Since(mark), true
	*c = scratch

	return
}

func checkBounds(n, m uint8) {
	if m < n {
		panic(fmt.Sprintf("internal error: combinator bounds inverted: n %d > m %d", n, m))
	}
}
