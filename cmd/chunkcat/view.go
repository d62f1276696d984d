package main

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/dacapoday/chunkbuf/chunked"
)

// listChunks prints one line per chunk: index, fill and content,
// keeping each line within width columns.
func listChunks(w io.Writer, buf *chunked.Buffer, width int) error {
	_, err := fmt.Fprintf(w, "len %d, cap %d, %d chunks\n", buf.Len(), buf.Cap(), buf.NumChunks())
	if err != nil {
		return err
	}
	digits := len(fmt.Sprint(max(buf.NumChunks()-1, 0)))
	fill := len(fmt.Sprint(buf.Cap()))
	i := 0
	for data := range buf.All {
		head := fmt.Sprintf("%*d %*d/%d  ", digits, i, fill, len(data), buf.Cap())
		if _, err = fmt.Fprintf(w, "%s%s\n", head, display(data, max(width-len(head), 8))); err != nil {
			return err
		}
		i++
	}
	return nil
}

// display formats bytes for display, truncating if needed.
// Shows printable UTF-8 as text, anything else as hex.
func display(b []byte, maxLen int) string {
	if len(b) == 0 {
		return "(empty)"
	}

	if utf8.Valid(b) && isPrintable(b) {
		runes := []rune(string(b))
		if len(runes) > maxLen {
			return string(runes[:maxLen-3]) + "..."
		}
		return string(runes)
	}

	hex := fmt.Sprintf("%x", b)
	if len(hex) > maxLen {
		return hex[:maxLen-3] + "..."
	}
	return hex
}

func isPrintable(b []byte) bool {
	for _, r := range string(b) {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
