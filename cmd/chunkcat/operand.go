package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dacapoday/chunkbuf"
	"github.com/dacapoday/chunkbuf/chunked"
)

var errBadOperand = errors.New("bad operand")

// parseOperand decodes one command line operand:
// "0xHEX" for bytes, "w:0xHEX" for a word, "wL:0xHEX" for a truncated word.
// Truncation lengths are range-checked by Buffer.Append, not here.
func parseOperand(s string) (op chunked.Operand, err error) {
	tag, text, found := strings.Cut(s, ":")
	if !found {
		p, err := decodeHex(s)
		if err != nil {
			return op, err
		}
		return chunked.Bytes(p), nil
	}

	if !strings.HasPrefix(tag, "w") {
		return op, fmt.Errorf("%w: unknown tag %q", errBadOperand, tag)
	}
	p, err := decodeHex(text)
	if err != nil {
		return op, err
	}
	if len(p) > chunkbuf.WordSize {
		return op, fmt.Errorf("%w: word of %d bytes", errBadOperand, len(p))
	}
	var w chunkbuf.Word
	copy(w[:], p)

	if tag == "w" {
		return chunked.Word(w), nil
	}
	n, err := strconv.Atoi(tag[1:])
	if err != nil {
		return op, fmt.Errorf("%w: truncation length %q", errBadOperand, tag[1:])
	}
	return chunked.WordN(w, n), nil
}

func decodeHex(s string) ([]byte, error) {
	text, ok := strings.CutPrefix(s, "0x")
	if !ok {
		text, ok = strings.CutPrefix(s, "0X")
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q lacks 0x prefix", errBadOperand, s)
	}
	p, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadOperand, err)
	}
	return p, nil
}
