// Package identity allocates process-unique tokens for B-rep entities.
//
// A Token never repeats within a process and is never reused, even after
// the entity it tags is discarded. Cloning a topological handle copies the
// Token; inverting a handle's orientation never changes it. Equality of
// Tokens is the definition of "same edge" / "same face" used throughout
// package topo.
package identity

import "sync/atomic"

// Token identifies a topological entity (vertex, edge, or face) for the
// lifetime of the process.
type Token uint64

// Nil is the zero value, never handed out by New.
const Nil Token = 0

var counter atomic.Uint64

// New allocates the next Token. Safe for concurrent use.
func New() Token {
	return Token(counter.Add(1))
}

// Valid reports whether t was actually allocated by New.
func (t Token) Valid() bool {
	return t != Nil
}

// String implements fmt.Stringer for debug output.
func (t Token) String() string {
	return "#" + uitoa(uint64(t))
}

func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
