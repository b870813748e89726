package cmd

import (
	"fmt"
	"io"

	"github.com/filecoin-project/go-floatbits/floatbin"
	"github.com/filecoin-project/go-floatbits/types"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newDemoCmd() *cobra.Command {
	var digits int
	c := &cobra.Command{
		Use:   "demo",
		Short: "Walk through 12.25 in single precision and the 0.1 + 0.2 rounding error",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if digits < 0 {
				return xerrors.Errorf("digits must not be negative, got %d", digits)
			}
			return runDemo(c.OutOrStdout(), digits)
		},
	}
	c.Flags().IntVar(&digits, "digits", 17, "digits printed after the decimal point")
	return c
}

func runDemo(w io.Writer, digits int) error {
	b, err := floatbin.EncodeBits(12.25, types.Single)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "12.25 in single precision is %s\n", b.Grouped())
	v, err := floatbin.Decode(b.String(), types.Single)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s decodes back to %v\n", b, v)

	roundTrip := func(label string, value float64) (float64, error) {
		bits, err := floatbin.Encode(value, types.Double)
		if err != nil {
			return 0, err
		}
		res, err := floatbin.Decode(bits, types.Double)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(w, "%s in binary is %s, which equals to %.*f\n", label, bits, digits, res)
		return res, nil
	}

	a, err := roundTrip("0.1", 0.1)
	if err != nil {
		return err
	}
	bb, err := roundTrip("0.2", 0.2)
	if err != nil {
		return err
	}
	sum, err := roundTrip("0.1+0.2", a+bb)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Sum: %v\n", sum)
	return nil
}
