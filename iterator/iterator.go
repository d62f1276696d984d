// Package iterator provides a byte cursor over chunked streams.
package iterator

import "github.com/dacapoday/chunkbuf"

// Cursor walks the logical byte stream of a chunkbuf.Chunks one position at a time,
// holding its place as a (chunk index, offset within chunk) pair.
// Chunk boundaries, including empty chunks, are crossed transparently.
//
// Usage:
//
//	var cur Cursor[*chunked.Buffer]
//	for cur.Load(buf); cur.Valid(); cur.Next() {
//	    b := cur.Byte()
//	    // process b
//	}
//
// The source must not be appended to while a cursor is loaded on it.
type Cursor[S chunkbuf.Chunks] struct {
	src   S
	data  []byte // written prefix of the current chunk
	chunk int    // index of the current chunk
	off   int    // offset within data
	count int    // number of chunks in src
	pos   int    // offset within the logical stream
}

// Load positions the cursor at the first byte of src.
func (cur *Cursor[S]) Load(src S) {
	cur.src = src
	cur.count = src.NumChunks()
	cur.chunk, cur.off, cur.pos = 0, 0, 0
	cur.data = nil
	if cur.count > 0 {
		cur.data = src.Chunk(0)
	}
	cur.settle()
}

// settle rolls over to the next chunk while the current one is exhausted.
func (cur *Cursor[S]) settle() {
	for cur.off == len(cur.data) && cur.chunk < cur.count {
		cur.chunk++
		cur.off = 0
		if cur.chunk < cur.count {
			cur.data = cur.src.Chunk(cur.chunk)
		} else {
			cur.data = nil
		}
	}
}

// Valid returns true if the cursor is positioned on a byte.
// Returns false once the stream is exhausted.
func (cur *Cursor[S]) Valid() bool {
	return cur.chunk < cur.count
}

// Byte returns the byte at the current position.
// Behavior is undefined if Valid() returns false.
func (cur *Cursor[S]) Byte() byte {
	return cur.data[cur.off]
}

// Span returns the remaining bytes of the current chunk, starting at the current position.
// It is never empty while Valid() returns true.
// The returned slice must not be modified.
func (cur *Cursor[S]) Span() []byte {
	return cur.data[cur.off:]
}

// Next advances the cursor by one byte.
// Returns true if the cursor is still positioned on a byte.
func (cur *Cursor[S]) Next() bool {
	return cur.Skip(1)
}

// Skip advances the cursor by n bytes, or to the end of the stream if fewer remain.
// Returns true if the cursor is still positioned on a byte.
func (cur *Cursor[S]) Skip(n int) bool {
	for n > 0 && cur.Valid() {
		step := min(n, len(cur.data)-cur.off)
		cur.off += step
		cur.pos += step
		n -= step
		cur.settle()
	}
	return cur.Valid()
}

// Position returns the current chunk index and the offset within that chunk.
// An exhausted cursor reports (NumChunks, 0).
func (cur *Cursor[S]) Position() (chunk, offset int) {
	return cur.chunk, cur.off
}

// Pos returns the offset of the cursor within the logical stream.
func (cur *Cursor[S]) Pos() int {
	return cur.pos
}
