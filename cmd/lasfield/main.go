// Command lasfield inspects LAS coordinate transforms and fixed-width header
// fields from the command line.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/banshee-data/lasfield/internal/config"
	"github.com/banshee-data/lasfield/internal/las"
	"github.com/banshee-data/lasfield/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command, rest := args[0], args[1:]
	var err error
	switch command {
	case "direct":
		err = handleDirect(rest, stdout, stderr)
	case "inverse":
		err = handleInverse(rest, stdout, stderr)
	case "decode":
		err = handleDecode(rest, stdout, stderr)
	case "encode":
		err = handleEncode(rest, stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, version.String())
		return 0
	case "help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `lasfield - LAS transform and header field inspector

Usage: lasfield <command> [options] <value>

Commands:
  direct     Convert a stored integer to a real coordinate
  inverse    Convert a real coordinate to a stored integer
  decode     Decode a hex-encoded fixed-width text field
  encode     Encode text into a zero-padded fixed-width field (hex output)
  version    Show lasfield version
  help       Show this help message

Transform Flags (direct, inverse):
  --config <file>      Transform config JSON (x_scale, x_offset, ...)
  --axis <x|y|z>       Axis to take from the config (default: x)
  --scale <f>          Scale, overrides the config
  --offset <f>         Offset, overrides the config
  --round <mode>       inverse only: nearest, ceil or floor (default: nearest)

Examples:
  lasfield direct --scale 0.01 --offset 500000 12345
  lasfield inverse --config header.json --axis z --round floor 101.337
  lasfield decode --lossy 4c4153746f6f6c730000
  lasfield encode --width 32 "LAStools"`)
}

// transformFlags registers the shared transform flags on fs and returns a
// resolver that builds the selected transform after fs.Parse.
func transformFlags(fs *flag.FlagSet) func() (las.Transform, error) {
	configPath := fs.String("config", "", "Transform config JSON file")
	axis := fs.String("axis", "x", "Axis to take from the config: x, y or z")
	scale := fs.Float64("scale", las.DefaultScale, "Scale, overrides the config")
	offset := fs.Float64("offset", 0, "Offset, overrides the config")

	return func() (las.Transform, error) {
		cfg := config.EmptyTransformConfig()
		if *configPath != "" {
			loaded, err := config.LoadTransformConfig(*configPath)
			if err != nil {
				return las.Transform{}, err
			}
			cfg = loaded
		}
		t, err := cfg.Axis(*axis)
		if err != nil {
			return las.Transform{}, err
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "scale":
				t.Scale = *scale
			case "offset":
				t.Offset = *offset
			}
		})
		return t, nil
	}
}

func handleDirect(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("direct", flag.ContinueOnError)
	fs.SetOutput(stderr)
	transform := transformFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("direct takes exactly one integer, got %d arguments", fs.NArg())
	}

	n, err := strconv.ParseInt(fs.Arg(0), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid stored value %q: %w", fs.Arg(0), err)
	}
	t, err := transform()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, strconv.FormatFloat(t.Direct(int32(n)), 'f', -1, 64))
	return nil
}

func parseRoundingMode(s string) (las.RoundingMode, error) {
	for _, mode := range []las.RoundingMode{las.RoundNearest, las.RoundCeiling, las.RoundFloor} {
		if mode.String() == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown rounding mode %q, want nearest, ceil or floor", s)
}

func handleInverse(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inverse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	transform := transformFlags(fs)
	round := fs.String("round", las.RoundNearest.String(), "Rounding mode: nearest, ceil or floor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("inverse takes exactly one number, got %d arguments", fs.NArg())
	}

	v, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q: %w", fs.Arg(0), err)
	}
	mode, err := parseRoundingMode(*round)
	if err != nil {
		return err
	}
	t, err := transform()
	if err != nil {
		return err
	}
	n, err := t.InverseWithRounding(v, mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, n)
	return nil
}

func handleDecode(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lossy := fs.Bool("lossy", false, "Never fail; replace invalid text and stop at the first zero")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("decode takes exactly one hex string, got %d arguments", fs.NArg())
	}

	buf, err := hex.DecodeString(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid hex field: %w", err)
	}
	if *lossy {
		fmt.Fprintln(stdout, las.DecodeStringLossy(buf))
		return nil
	}
	s, err := las.DecodeString(buf)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, s)
	return nil
}

func handleEncode(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Int("width", las.SystemIdentifierLen, "Field width in bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("encode takes exactly one string, got %d arguments", fs.NArg())
	}
	if *width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", *width)
	}

	field, err := las.NewField(fs.Arg(0), *width)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, hex.EncodeToString(field))
	return nil
}
