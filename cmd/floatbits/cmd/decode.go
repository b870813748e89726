package cmd

import (
	"fmt"
	"strconv"

	"github.com/filecoin-project/go-floatbits/floatbin"
	"github.com/filecoin-project/go-floatbits/parsing"
	"github.com/spf13/cobra"
)

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode BITS...",
		Short: "Print the value of bit strings, spaces and underscores between groups are ignored",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, err := opts.parsePrecision()
			if err != nil {
				return err
			}
			bits := make([]string, len(args))
			for i, a := range args {
				bits[i] = parsing.Compact(a)
			}
			values, err := floatbin.DecodeAll(bits, p)
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(c.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, p.Bits()))
			}
			return nil
		},
	}
}
