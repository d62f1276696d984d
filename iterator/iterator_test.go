package iterator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// chunks is a bare chunkbuf.Chunks over a slice of slices.
// Unlike a real buffer it may hold empty and unevenly sized chunks.
type chunks [][]byte

func (c chunks) Len() int {
	n := 0
	for _, b := range c {
		n += len(b)
	}
	return n
}

func (c chunks) NumChunks() int     { return len(c) }
func (c chunks) Chunk(i int) []byte { return c[i] }

func collect(src chunks) (out []byte) {
	var cur Cursor[chunks]
	for cur.Load(src); cur.Valid(); cur.Next() {
		out = append(out, cur.Byte())
	}
	return
}

func TestCursorEmpty(t *testing.T) {
	var cur Cursor[chunks]

	cur.Load(nil)
	require.False(t, cur.Valid())
	require.False(t, cur.Next())

	cur.Load(chunks{{}, {}, {}})
	require.False(t, cur.Valid())
	chunk, off := cur.Position()
	require.Equal(t, 3, chunk)
	require.Equal(t, 0, off)
}

func TestCursorWalk(t *testing.T) {
	src := chunks{[]byte("abc"), []byte("de")}
	require.Equal(t, []byte("abcde"), collect(src))
}

func TestCursorSkipsEmptyChunks(t *testing.T) {
	src := chunks{{}, []byte("a"), {}, {}, []byte("bc"), {}}
	require.Equal(t, []byte("abc"), collect(src))
}

func TestCursorPosition(t *testing.T) {
	src := chunks{[]byte("abc"), []byte("def")}

	var cur Cursor[chunks]
	cur.Load(src)

	type position struct{ chunk, off, pos int }
	var got []position
	for ; cur.Valid(); cur.Next() {
		chunk, off := cur.Position()
		got = append(got, position{chunk, off, cur.Pos()})
	}

	require.Equal(t, []position{
		{0, 0, 0}, {0, 1, 1}, {0, 2, 2},
		{1, 0, 3}, {1, 1, 4}, {1, 2, 5},
	}, got)
	require.Equal(t, 6, cur.Pos())
}

func TestCursorSpanSkip(t *testing.T) {
	src := chunks{[]byte("abcd"), []byte("ef"), []byte("ghij")}

	var cur Cursor[chunks]
	cur.Load(src)
	require.Equal(t, []byte("abcd"), cur.Span())

	require.True(t, cur.Skip(2))
	require.Equal(t, []byte("cd"), cur.Span())

	// across two boundaries
	require.True(t, cur.Skip(5))
	require.Equal(t, []byte("hij"), cur.Span())
	require.Equal(t, 7, cur.Pos())

	require.False(t, cur.Skip(100))
	require.Equal(t, 10, cur.Pos())
	require.False(t, cur.Valid())
}

func TestCursorSkipZero(t *testing.T) {
	src := chunks{[]byte("ab")}

	var cur Cursor[chunks]
	cur.Load(src)
	require.True(t, cur.Skip(0))
	require.Equal(t, byte('a'), cur.Byte())
}

func TestCursorReload(t *testing.T) {
	var cur Cursor[chunks]
	cur.Load(chunks{[]byte("xyz")})
	cur.Skip(2)

	cur.Load(chunks{[]byte("q")})
	require.True(t, cur.Valid())
	require.Equal(t, byte('q'), cur.Byte())
	require.Equal(t, 0, cur.Pos())
}
