// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package chunk provides the fixed-capacity region a chunked buffer is built from.
package chunk

// Chunk is a fixed-capacity, append-only byte region.
// The slice capacity is the chunk capacity and the slice length marks how much
// of it has been written. Bytes past the length are never observed.
type Chunk []byte

// New returns an empty chunk able to hold capacity bytes.
func New(capacity int) Chunk {
	return make(Chunk, 0, capacity)
}

// Room returns the number of bytes that can still be written.
func (chunk Chunk) Room() int {
	return cap(chunk) - len(chunk)
}

// Full reports whether no more bytes can be written.
func (chunk Chunk) Full() bool {
	return len(chunk) == cap(chunk)
}

// Fill copies the longest prefix of p that fits into the chunk
// and returns its length. The chunk never grows past its capacity.
func (chunk *Chunk) Fill(p []byte) (n int) {
	c := *chunk
	n = min(cap(c)-len(c), len(p))
	*chunk = append(c, p[:n]...)
	return
}

// FillByte writes c if there is room and reports whether it did.
func (chunk *Chunk) FillByte(c byte) bool {
	b := *chunk
	if len(b) == cap(b) {
		return false
	}
	*chunk = append(b, c)
	return true
}
