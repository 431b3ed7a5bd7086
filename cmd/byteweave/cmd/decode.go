package cmd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/byteweave/byteweave/base64"
	"github.com/byteweave/byteweave/errors"
	"github.com/byteweave/byteweave/hexcodec"
	"github.com/byteweave/byteweave/varint"
)

// decodeCmd represents the decode command.
var decodeCmd = &cobra.Command{
	Use:   "decode <base64|hex|varint> [file]",
	Short: "Decode bytes with the named codec",
	Long: `Decode bytes with the named codec.

Input is read from the file argument, or from stdin when no file is
given; a trailing newline on text input is ignored. Varint output is
printed as one integer per line on a terminal, and written as packed
8-byte little-endian integers otherwise.

Examples:
  echo aGVsbG8= | byteweave decode base64
  byteweave decode hex digest.txt --out digest.bin
  byteweave encode varint --ints 300,7 | byteweave decode varint`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec := args[0]

		src, err := readInput(args[1:])
		if err != nil {
			return err
		}
		if codec != "varint" {
			src = bytes.TrimRight(src, "\r\n")
		}
		Logger().Debug("decoding",
			zap.String("codec", codec), zap.Int("input_bytes", len(src)))

		var out []byte
		switch codec {
		case "base64":
			urlsafe, _ := cmd.Flags().GetBool("urlsafe")
			need, ok := base64.DecodedLen(src, urlsafe)
			if !ok {
				return errors.InvalidInput(errors.PhaseDecode, "base64", -1,
					"input length %d is not a valid encoding length", len(src))
			}
			out = make([]byte, need)
			if err := base64.Decode(out, src, urlsafe).Err(errors.PhaseDecode, "base64"); err != nil {
				return err
			}
		case "hex":
			need, ok := hexcodec.DecodedLen(len(src))
			if !ok {
				return errors.InvalidInput(errors.PhaseDecode, "hex", -1,
					"input length %d is odd", len(src))
			}
			out = make([]byte, need)
			if err := hexcodec.Decode(out, src).Err(errors.PhaseDecode, "hex"); err != nil {
				return err
			}
		case "varint":
			// Every group is at least one byte, so len(src) integers is
			// the most a well-formed input can decode to.
			out = make([]byte, 8*len(src))
			res := varint.Decode(out, src)
			if err := res.Err(errors.PhaseDecode, "varint"); err != nil {
				return err
			}
			out = out[:res.Produced]
			return writeVarintOutput(cmd, out)
		default:
			return fmt.Errorf("unknown codec %q (want base64, hex, or varint)", codec)
		}

		return writeOutput(cmd, out, false)
	},
}

// writeVarintOutput prints decoded integers one per line when stdout is
// a terminal and no --out file is named; otherwise it writes the packed
// little-endian bytes as-is.
func writeVarintOutput(cmd *cobra.Command, packed []byte) error {
	path, _ := cmd.Flags().GetString("out")
	if path == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		var b strings.Builder
		for i := 0; i < len(packed); i += 8 {
			fmt.Fprintf(&b, "%d\n", binary.LittleEndian.Uint64(packed[i:]))
		}
		_, err := os.Stdout.WriteString(b.String())
		return err
	}
	return writeOutput(cmd, packed, false)
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().Bool("urlsafe", false, "Decode the URL-safe unpadded Base64 form")
	decodeCmd.Flags().StringP("out", "o", "", "Write output to a file instead of stdout")
}
