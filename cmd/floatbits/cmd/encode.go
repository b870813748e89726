package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/filecoin-project/go-floatbits/floatbin"
	"github.com/filecoin-project/go-floatbits/parsing"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newEncodeCmd(opts *options) *cobra.Command {
	var fields, explain bool
	c := &cobra.Command{
		Use:   "encode VALUE...",
		Short: "Print the bit pattern of decimal values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, err := opts.parsePrecision()
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			for _, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return xerrors.Errorf("parsing value %q: %w", a, err)
				}
				b, err := floatbin.EncodeBits(v, p)
				if err != nil {
					return xerrors.Errorf("encoding %s: %w", a, err)
				}
				switch {
				case explain:
					writeExplanation(out, b)
				case fields:
					fmt.Fprintln(out, b.Grouped())
				default:
					fmt.Fprintln(out, b.String())
				}
			}
			return nil
		},
	}
	c.Flags().BoolVar(&fields, "fields", false, "separate sign, exponent and mantissa with spaces")
	c.Flags().BoolVar(&explain, "explain", false, "print every field with its decimal meaning")
	return c
}

func writeExplanation(w io.Writer, b floatbin.Bits) {
	l, _ := b.Precision.Layout()
	f := b.Fields()
	sign := "+"
	if b.Negative() {
		sign = "-"
	}
	fmt.Fprintln(w, b.Grouped())
	fmt.Fprintf(w, "sign:     %d (%s)\n", f.Sign, sign)
	fmt.Fprintf(w, "exponent: %s = %d", parsing.FormatBits(f.Exponent, l.ExponentBits), f.Exponent)
	if c := b.Class(); c == floatbin.Normal || c == floatbin.Subnormal {
		fmt.Fprintf(w, ", unbiased %d (bias %d)", b.Exponent(), l.Bias)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "mantissa: %s\n", parsing.FormatBits(f.Mantissa, l.MantissaBits))
	fmt.Fprintf(w, "class:    %s\n", b.Class())
	fmt.Fprintf(w, "value:    %s\n", strconv.FormatFloat(b.Float64(), 'g', -1, b.Precision.Bits()))
}
