package main

import (
	"testing"

	"github.com/dacapoday/chunkbuf/chunked"
	"github.com/stretchr/testify/require"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		arg  string
		want int // appended length
	}{
		{"0x", 0},
		{"0x01", 1},
		{"0X0a0B", 2},
		{"w:0x", 32},
		{"w:0x01", 32},
		{"w0:0xff", 0},
		{"w5:0x0102", 5},
		{"w32:0x01", 32},
	}

	for _, tt := range tests {
		op, err := parseOperand(tt.arg)
		require.NoError(t, err, tt.arg)
		require.Equal(t, tt.want, op.Len(), tt.arg)
	}
}

func TestParseOperandWordPadding(t *testing.T) {
	op, err := parseOperand("w4:0x0102")
	require.NoError(t, err)

	var buf chunked.Buffer
	require.NoError(t, buf.Append(op))
	require.Equal(t, []byte{0x01, 0x02, 0x00, 0x00}, buf.Bytes())
}

func TestParseOperandErrors(t *testing.T) {
	for _, arg := range []string{
		"",
		"01",
		"0x0",
		"0xgg",
		"x:0x01",
		"wx:0x01",
		"w:01",
	} {
		_, err := parseOperand(arg)
		require.ErrorIs(t, err, errBadOperand, "%q", arg)
	}

	// range checks happen on append
	op, err := parseOperand("w33:0x01")
	require.NoError(t, err)
	require.Equal(t, -1, op.Len())
}

func TestParseOperandLongWord(t *testing.T) {
	long := "w:0x" + "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff00"
	_, err := parseOperand(long)
	require.ErrorIs(t, err, errBadOperand)
}

func TestDisplay(t *testing.T) {
	require.Equal(t, "(empty)", display(nil, 10))
	require.Equal(t, "hello", display([]byte("hello"), 10))
	require.Equal(t, "hello w...", display([]byte("hello world"), 10))
	require.Equal(t, "0001ff", display([]byte{0x00, 0x01, 0xff}, 10))
	require.Equal(t, "0001020...", display([]byte{0, 1, 2, 3, 4, 5}, 10))
}
