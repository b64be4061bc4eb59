package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/distrib/internal/compois"
	"github.com/born-ml/distrib/internal/parallel"
)

func calcVarCmd(a *app) *cobra.Command {
	var mean, nu []float64
	var sequential bool

	c := &cobra.Command{
		Use:   "calcvar",
		Short: "Conway-Maxwell-Poisson variance for each (mean, nu) pair",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := parallel.DefaultConfig()
			if sequential {
				cfg = parallel.Sequential()
			}

			out, err := compois.CalcVarVec(mean, nu, cfg)
			if err != nil {
				return err
			}
			a.logger.Debug("calcvar.done", "n", len(out), "parallel", cfg.Enabled)

			for i, v := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\t%g\t%.10g\n", mean[i], nu[i], v)
			}
			return nil
		},
	}

	c.Flags().Float64SliceVar(&mean, "mean", nil, "comma-separated means (required)")
	c.Flags().Float64SliceVar(&nu, "nu", nil, "comma-separated dispersions, same length as --mean (required)")
	c.Flags().BoolVar(&sequential, "sequential", false, "evaluate on one goroutine")

	_ = c.MarkFlagRequired("mean")
	_ = c.MarkFlagRequired("nu")
	return c
}
