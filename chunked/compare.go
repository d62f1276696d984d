package chunked

import (
	"bytes"

	"github.com/dacapoday/chunkbuf"
	"github.com/dacapoday/chunkbuf/iterator"
)

// Compare orders the logical streams of a and b byte-wise, as bytes.Compare
// would order their flattened contents: the first differing byte decides,
// and a strict prefix is Less than its extension.
//
// Neither side is copied or flattened, and a and b may be chunked differently.
func Compare[A, B chunkbuf.Chunks](a A, b B) chunkbuf.Ordering {
	var x iterator.Cursor[A]
	var y iterator.Cursor[B]
	x.Load(a)
	y.Load(b)
	for {
		switch xv, yv := x.Valid(), y.Valid(); {
		case !xv && !yv:
			return chunkbuf.Equal
		case !xv:
			return chunkbuf.Less
		case !yv:
			return chunkbuf.Greater
		}
		// Both spans are non-empty; compare the run they share,
		// then step both cursors past it.
		p, q := x.Span(), y.Span()
		n := min(len(p), len(q))
		if c := bytes.Compare(p[:n], q[:n]); c != 0 {
			return chunkbuf.Ordering(c)
		}
		x.Skip(n)
		y.Skip(n)
	}
}

// Equal reports whether a and b hold the same logical stream.
func Equal[A, B chunkbuf.Chunks](a A, b B) bool {
	if a.Len() != b.Len() {
		return false
	}
	return Compare(a, b) == chunkbuf.Equal
}
