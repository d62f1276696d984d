// Package chunkbuf defines the basic contracts shared by the chunked byte buffer
// components.
//
// A chunked buffer assembles one logical byte stream out of many appended pieces
// of unknown total size. The stream is stored as an ordered run of fixed-capacity
// chunks, so growing it never copies what was written before.
package chunkbuf

// WordSize is the size in bytes of a Word.
const WordSize = 32

// Word is a fixed 32-byte value that can be appended in full or truncated
// to a prefix.
type Word = [WordSize]byte

// Chunks provides read access to a logical byte stream stored as an ordered
// sequence of chunks.
//
// The logical stream is the concatenation of Chunk(0) through Chunk(NumChunks()-1).
// Implementations must keep Len equal to the sum of the chunk lengths.
type Chunks interface {
	// Len returns the length in bytes of the logical stream.
	Len() int

	// NumChunks returns the number of chunks.
	NumChunks() int

	// Chunk returns the written prefix of the chunk at index i.
	// The returned slice must not be modified.
	Chunk(i int) []byte
}

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch {
	case o < 0:
		return "less"
	case o > 0:
		return "greater"
	default:
		return "equal"
	}
}
