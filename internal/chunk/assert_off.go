//go:build !debug

package chunk

// AssertLayout is a no-op in production.
// Enable with -tags debug for runtime checks.
func AssertLayout(string, []Chunk, int, int) {}
