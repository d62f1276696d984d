package chunked

import (
	"fmt"

	"github.com/dacapoday/chunkbuf"
)

type kind uint8

const (
	kindBytes kind = iota
	kindWord
	kindWordN
)

// Operand is one unit of data passed to Buffer.Append.
// It is a byte string, a full Word, or a Word truncated to a prefix.
// The zero Operand is an empty byte string.
type Operand struct {
	kind kind
	size int // truncation length of kindWordN
	data []byte
	word chunkbuf.Word
}

// Bytes returns an operand appending p as is.
// The buffer copies p; the caller may reuse it after Append returns.
func Bytes(p []byte) Operand {
	return Operand{kind: kindBytes, data: p}
}

// Word returns an operand appending all 32 bytes of w.
func Word(w chunkbuf.Word) Operand {
	return Operand{kind: kindWord, word: w}
}

// WordN returns an operand appending the first n bytes of w.
// The remaining bytes of w are ignored, not padded.
// Append rejects the operand with ErrInvalidTruncationLength unless 0 <= n <= 32.
func WordN(w chunkbuf.Word, n int) Operand {
	return Operand{kind: kindWordN, word: w, size: n}
}

// bytes resolves the operand into the byte sequence it appends.
func (op *Operand) bytes() ([]byte, error) {
	switch op.kind {
	case kindWord:
		return op.word[:], nil
	case kindWordN:
		if op.size < 0 || op.size > chunkbuf.WordSize {
			return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidTruncationLength, op.size, chunkbuf.WordSize)
		}
		return op.word[:op.size], nil
	default:
		return op.data, nil
	}
}

// Len returns the number of bytes the operand appends,
// or -1 if the operand is invalid.
func (op Operand) Len() int {
	p, err := op.bytes()
	if err != nil {
		return -1
	}
	return len(p)
}
