package cmd

import (
	"github.com/filecoin-project/go-floatbits/floatbin"
	"github.com/filecoin-project/go-floatbits/types"
	"github.com/spf13/cobra"
)

type options struct {
	precision string
}

func (o *options) parsePrecision() (types.Precision, error) {
	return floatbin.ParsePrecision(o.precision)
}

// New builds the floatbits command tree. Negative values have to follow "--",
// e.g. floatbits encode -- -12.25
func New() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "floatbits",
		Short:         "floatbits shows how floating point numbers are stored in IEEE-754 binary formats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.precision, "precision", "p", "64",
		"precision to use: 32 (single) or 64 (double)")

	root.AddCommand(newEncodeCmd(opts), newDecodeCmd(opts), newDemoCmd())
	return root
}
