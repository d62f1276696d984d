// chunkcat builds chunked buffers from hex operands and prints the result.
//
// Usage:
//
//	chunkcat cat [-c capacity] [--hex] [--digest] OPERAND...
//	chunkcat chunks [-c capacity] OPERAND...
//	chunkcat cmp [-a capacity] [-b capacity] LEFT RIGHT
//
// Operands:
//
//	0xHEX       byte string
//	w:0xHEX     32-byte word, right-padded with zeros
//	wL:0xHEX    word truncated to its first L bytes (0 <= L <= 32)
//
// cat writes the flattened buffer: as 0x-prefixed hex when stdout is a terminal
// or --hex is set, as raw bytes otherwise. chunks lists the chunk layout.
// cmp takes two comma-separated operand lists and prints less, equal or greater.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dacapoday/chunkbuf/chunked"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(flag.CommandLine)

	cmd := rootCmd()
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	if err := cmd.Execute(); err != nil {
		klog.Exit(err)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chunkcat",
		Short:         "Build chunked buffers from hex operands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		catCmd(),
		chunksCmd(),
		cmpCmd(),
	)
	return cmd
}

func catCmd() *cobra.Command {
	var capacity int
	var hexOut, digest bool

	cmd := &cobra.Command{
		Use:   "cat [flags] OPERAND...",
		Short: "Append operands to one buffer and write the flattened result",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := build(capacity, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case digest:
				_, err = fmt.Fprintf(out, "%016x\n", buf.Sum64())
			case hexOut || isTerminal(out):
				err = writeHex(out, buf)
			default:
				_, err = buf.WriteTo(out)
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&capacity, "capacity", "c", chunked.DefaultCapacity, "chunk capacity in bytes")
	cmd.Flags().BoolVarP(&hexOut, "hex", "x", false, "write hex even when stdout is not a terminal")
	cmd.Flags().BoolVar(&digest, "digest", false, "write the xxhash64 digest instead of the content")
	return cmd
}

func chunksCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "chunks [flags] OPERAND...",
		Short: "Append operands to one buffer and list its chunks",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := build(capacity, args)
			if err != nil {
				return err
			}
			return listChunks(cmd.OutOrStdout(), buf, width(cmd.OutOrStdout()))
		},
	}
	cmd.Flags().IntVarP(&capacity, "capacity", "c", chunked.DefaultCapacity, "chunk capacity in bytes")
	return cmd
}

func cmpCmd() *cobra.Command {
	var capA, capB int

	cmd := &cobra.Command{
		Use:   "cmp [flags] LEFT RIGHT",
		Short: "Compare the buffers built from two comma-separated operand lists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(capA, splitList(args[0]))
			if err != nil {
				return fmt.Errorf("left: %w", err)
			}
			b, err := build(capB, splitList(args[1]))
			if err != nil {
				return fmt.Errorf("right: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), chunked.Compare(a, b))
			return err
		},
	}
	cmd.Flags().IntVarP(&capA, "capacity-a", "a", chunked.DefaultCapacity, "chunk capacity of the left buffer")
	cmd.Flags().IntVarP(&capB, "capacity-b", "b", chunked.DefaultCapacity, "chunk capacity of the right buffer")
	return cmd
}

// build appends the parsed operands to a new buffer of the given capacity.
func build(capacity int, args []string) (*chunked.Buffer, error) {
	buf, err := chunked.New(capacity)
	if err != nil {
		return nil, err
	}
	for i, arg := range args {
		op, err := parseOperand(arg)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
		if err = buf.Append(op); err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
		klog.V(4).Infof("operand %d: appended %d bytes", i, op.Len())
	}
	klog.V(2).Infof("built %v", buf)
	return buf, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func writeHex(w io.Writer, buf *chunked.Buffer) error {
	if _, err := io.WriteString(w, "0x"); err != nil {
		return err
	}
	if _, err := buf.WriteTo(hex.NewEncoder(w)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// width returns the terminal width of w, or 80 if w is not a terminal.
func width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}
