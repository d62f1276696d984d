package chunkbuf

import "errors"

var (
	ErrInvalidCapacity         = errors.New("invalid capacity")
	ErrInvalidTruncationLength = errors.New("invalid truncation length")
	ErrOutOfRange              = errors.New("out of range")
)
