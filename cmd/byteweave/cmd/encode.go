package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/byteweave/byteweave/base64"
	"github.com/byteweave/byteweave/errors"
	"github.com/byteweave/byteweave/hexcodec"
	"github.com/byteweave/byteweave/varint"
)

// encodeCmd represents the encode command.
var encodeCmd = &cobra.Command{
	Use:   "encode <base64|hex|varint> [file]",
	Short: "Encode bytes with the named codec",
	Long: `Encode bytes with the named codec.

Input is read from the file argument, or from stdin when no file is
given. For varint, --ints encodes a comma-separated list of unsigned
integers instead of raw input bytes.

Examples:
  echo -n hello | byteweave encode base64
  byteweave encode hex --upper payload.bin
  byteweave encode varint --ints 300,7,1099511627776`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec := args[0]

		var src []byte
		var err error
		if ints, _ := cmd.Flags().GetString("ints"); codec == "varint" && ints != "" {
			src, err = parseInts(ints)
		} else {
			src, err = readInput(args[1:])
		}
		if err != nil {
			return err
		}
		Logger().Debug("encoding",
			zap.String("codec", codec), zap.Int("input_bytes", len(src)))

		var out []byte
		switch codec {
		case "base64":
			urlsafe, _ := cmd.Flags().GetBool("urlsafe")
			out = make([]byte, base64.EncodedLen(len(src), urlsafe))
			if err := base64.Encode(out, src, urlsafe).Err(errors.PhaseEncode, "base64"); err != nil {
				return err
			}
		case "hex":
			upper, _ := cmd.Flags().GetBool("upper")
			out = make([]byte, hexcodec.EncodedLen(len(src)))
			if err := hexcodec.Encode(out, src, upper).Err(errors.PhaseEncode, "hex"); err != nil {
				return err
			}
		case "varint":
			need, ok := varint.EncodedLen(src)
			if !ok {
				return fmt.Errorf("varint input must be a multiple of 8 bytes, got %d", len(src))
			}
			out = make([]byte, need)
			if err := varint.Encode(out, src).Err(errors.PhaseEncode, "varint"); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown codec %q (want base64, hex, or varint)", codec)
		}

		return writeOutput(cmd, out, codec != "varint")
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().Bool("urlsafe", false, "Use the URL-safe unpadded Base64 form")
	encodeCmd.Flags().Bool("upper", false, "Emit uppercase hex digits")
	encodeCmd.Flags().String("ints", "", "Comma-separated unsigned integers to encode (varint only)")
	encodeCmd.Flags().StringP("out", "o", "", "Write output to a file instead of stdout")
}
