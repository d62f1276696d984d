// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package chunked provides an append-only byte buffer stored as fixed-capacity chunks.
//
// Appending never moves bytes that were already written: when the last chunk is full
// a new one is allocated, and a single append may spread over as many chunks as it needs.
// The logical stream is flattened once, by Bytes, AppendTo or WriteTo, and two
// buffers can be ordered with Compare without flattening either.
package chunked

import (
	"fmt"
	"io"
	"slices"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/dacapoday/chunkbuf"
	"github.com/dacapoday/chunkbuf/internal/chunk"
)

// DefaultCapacity is the chunk capacity of a zero Buffer.
const DefaultCapacity = 256

// Buffer is an append-only byte buffer built from chunks of one fixed capacity.
// Not thread-safe: a Buffer must be owned by a single goroutine while it is
// appended to, and must not be read or compared concurrently with an append.
//
// Buffer requires no initialization - just declare and use:
//
//	var buf Buffer
//	buf.AppendBytes([]byte("hello"))
//
// The zero Buffer uses DefaultCapacity. Use New to pick another capacity.
type Buffer struct {
	chunks   []chunk.Chunk
	capacity int
	length   int
}

var (
	_ chunkbuf.Chunks = (*Buffer)(nil)
	_ io.Writer       = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ io.WriterTo     = (*Buffer)(nil)
	_ io.ReaderAt     = (*Buffer)(nil)
)

// New returns an empty buffer whose chunks hold capacity bytes each.
// It returns ErrInvalidCapacity if capacity is not positive.
func New(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Buffer{capacity: capacity}, nil
}

// Len returns the number of bytes appended so far.
func (buf *Buffer) Len() int {
	return buf.length
}

// Cap returns the capacity of every chunk in the buffer.
func (buf *Buffer) Cap() int {
	if buf.capacity == 0 {
		return DefaultCapacity
	}
	return buf.capacity
}

// NumChunks returns the number of chunks allocated so far.
func (buf *Buffer) NumChunks() int {
	return len(buf.chunks)
}

// Chunk returns the written prefix of the chunk at index i.
// Every chunk but the last one is full.
// The returned slice must not be modified.
func (buf *Buffer) Chunk(i int) []byte {
	return buf.chunks[i]
}

// All yields the written prefix of each chunk, in order.
// The yielded slices must not be modified.
func (buf *Buffer) All(yield func(chunk []byte) bool) {
	for _, c := range buf.chunks {
		if !yield(c) {
			return
		}
	}
}

// Append appends the bytes of op.
// If op is invalid, Append returns the error and leaves the buffer unchanged.
func (buf *Buffer) Append(op Operand) error {
	p, err := op.bytes()
	if err != nil {
		return err
	}
	buf.append(p)
	return nil
}

// AppendBytes appends p.
func (buf *Buffer) AppendBytes(p []byte) {
	buf.append(p)
}

// AppendWord appends all 32 bytes of w.
func (buf *Buffer) AppendWord(w chunkbuf.Word) {
	buf.append(w[:])
}

// AppendWordN appends the first n bytes of w.
// It returns ErrInvalidTruncationLength, appending nothing, unless 0 <= n <= 32.
func (buf *Buffer) AppendWordN(w chunkbuf.Word, n int) error {
	return buf.Append(WordN(w, n))
}

// Write appends p and always returns len(p), nil.
// It implements io.Writer.
func (buf *Buffer) Write(p []byte) (n int, err error) {
	buf.append(p)
	return len(p), nil
}

// WriteString appends s and always returns len(s), nil.
// It implements io.StringWriter.
func (buf *Buffer) WriteString(s string) (n int, err error) {
	buf.append(unsafe.Slice(unsafe.StringData(s), len(s)))
	return len(s), nil
}

// WriteByte appends c and always returns nil.
// It implements io.ByteWriter.
func (buf *Buffer) WriteByte(c byte) error {
	if last := len(buf.chunks) - 1; last >= 0 && buf.chunks[last].FillByte(c) {
		buf.length++
		return nil
	}
	buf.append([]byte{c})
	return nil
}

// append copies p into the tail of the buffer, opening new chunks as the last one fills up.
func (buf *Buffer) append(p []byte) {
	n := len(p)
	if n == 0 {
		return
	}
	if buf.capacity == 0 {
		buf.capacity = DefaultCapacity
	}
	for {
		last := len(buf.chunks) - 1
		if last < 0 || buf.chunks[last].Full() {
			buf.chunks = append(buf.chunks, chunk.New(buf.capacity))
			last++
		}
		c := buf.chunks[last].Fill(p)
		if c == len(p) {
			break
		}
		p = p[c:]
	}
	buf.length += n
	chunk.AssertLayout("append", buf.chunks, buf.capacity, buf.length)
}

// Bytes returns the logical stream as one newly allocated slice of exactly Len bytes.
// It does not modify the buffer and may be called any number of times.
func (buf *Buffer) Bytes() []byte {
	return buf.AppendTo(make([]byte, 0, buf.length))
}

// AppendTo appends the logical stream to dst and returns the extended slice.
func (buf *Buffer) AppendTo(dst []byte) []byte {
	dst = slices.Grow(dst, buf.length)
	for _, c := range buf.chunks {
		dst = append(dst, c...)
	}
	return dst
}

// WriteTo writes the logical stream to w chunk by chunk.
// It implements io.WriterTo.
//
// Returns the number of bytes written and any error encountered.
func (buf *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	for _, data := range buf.chunks {
		c, err := w.Write(data)
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return
}

// ReadAt reads len(p) bytes of the logical stream into p starting at offset off.
// It implements io.ReaderAt.
//
// ReadAt returns io.EOF when fewer than len(p) bytes are available,
// and ErrOutOfRange if off is negative.
func (buf *Buffer) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, fmt.Errorf("%w: offset %d", ErrOutOfRange, off)
	}
	if len(p) == 0 {
		return 0, nil
	}
	if off >= int64(buf.length) {
		return 0, io.EOF
	}

	capacity := int64(buf.capacity)
	idx := int(off / capacity)
	data := buf.chunks[idx][off%capacity:]
	for {
		c := copy(p[n:], data)
		n += c
		if n == len(p) {
			return n, nil
		}
		idx++
		if idx == len(buf.chunks) {
			return n, io.EOF
		}
		data = buf.chunks[idx]
	}
}

// Sum64 returns the xxhash64 digest of the logical stream.
// Buffers holding the same bytes have the same digest whatever their chunk capacity.
func (buf *Buffer) Sum64() uint64 {
	h := xxhash.New()
	for _, data := range buf.chunks {
		h.Write(data)
	}
	return h.Sum64()
}

// String returns a short description of the buffer layout, not its content.
func (buf *Buffer) String() string {
	return fmt.Sprintf("chunked.Buffer{len: %d, cap: %d, chunks: %d}", buf.length, buf.Cap(), len(buf.chunks))
}
