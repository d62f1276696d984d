//go:build debug

package chunk

import "fmt"

// AssertLayout panics if chunks break the buffer layout:
// every chunk but the last is full, all share one capacity,
// and length is the sum of their written bytes.
// Only enabled with -tags debug.
func AssertLayout(method string, chunks []Chunk, capacity, length int) {
	sum := 0
	for i, c := range chunks {
		if cap(c) != capacity {
			panic(fmt.Sprintf("%s: chunk %d capacity %d != %d", method, i, cap(c), capacity))
		}
		if i < len(chunks)-1 && !c.Full() {
			panic(fmt.Sprintf("%s: chunk %d partially filled (%d/%d)", method, i, len(c), capacity))
		}
		sum += len(c)
	}
	if sum != length {
		panic(fmt.Sprintf("%s: length %d != %d", method, length, sum))
	}
}
