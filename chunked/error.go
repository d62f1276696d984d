package chunked

import (
	"github.com/dacapoday/chunkbuf"
)

var (
	ErrInvalidCapacity         = chunkbuf.ErrInvalidCapacity
	ErrInvalidTruncationLength = chunkbuf.ErrInvalidTruncationLength
	ErrOutOfRange              = chunkbuf.ErrOutOfRange
)
