package cmd

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "byteweave",
	Short: "Byteweave - Base64, hex, and varint codecs",
	Long: `Byteweave encodes and decodes bytes with a family of binary codecs:
standard and URL-safe Base64, lowercase and uppercase hex, and LEB128
varints over packed 64-bit integers.

Input comes from a file argument or stdin; output goes to stdout or a
file named with --out.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			SetLogger(l)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable development logging")
}

// readInput returns the bytes of the named file, or everything on stdin
// when no file argument was given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

// writeOutput writes out to the --out file when set, otherwise to stdout.
// Text output to a terminal gets a trailing newline.
func writeOutput(cmd *cobra.Command, out []byte, text bool) error {
	path, _ := cmd.Flags().GetString("out")
	if path != "" {
		if err := os.WriteFile(path, out, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}
	if text && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println()
	}
	return nil
}

// parseInts parses a comma-separated list of unsigned integers into the
// packed little-endian form the varint codec consumes.
func parseInts(s string) ([]byte, error) {
	parts := strings.Split(s, ",")
	out := make([]byte, 0, 8*len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", p, err)
		}
		out = binary.LittleEndian.AppendUint64(out, v)
	}
	return out, nil
}
