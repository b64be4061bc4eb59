package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/born-ml/distrib/internal/density"
)

func densityCmd(a *app) *cobra.Command {
	var (
		family        string
		ys            []float64
		a1, b1, n1    float64
		theta, lambda float64
		giveLog       bool
	)

	c := &cobra.Command{
		Use:   "density",
		Short: "Evaluate a beta-binomial or generalized Poisson density",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var f func(y float64) float64
			switch family {
			case "betabinom":
				f = func(y float64) float64 {
					if giveLog && isCount(y) && isCount(n1) && y <= n1 {
						return density.LogBetaBinomInt(int(y), int(n1), a1, b1)
					}
					return density.DBetaBinom(y, a1, b1, n1, giveLog)
				}
			case "genpois":
				f = func(y float64) float64 { return density.DGenPois(y, theta, lambda, giveLog) }
			default:
				return fmt.Errorf("unknown family %q (want betabinom or genpois)", family)
			}
			a.logger.Debug("density.eval", "family", family, "n", len(ys), "log", giveLog)

			for _, y := range ys {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\t%.12g\n", y, f(y))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&family, "family", "f", "", "betabinom or genpois (required)")
	c.Flags().Float64SliceVarP(&ys, "y", "y", nil, "comma-separated counts (required)")
	c.Flags().Float64Var(&a1, "a", 1, "beta-binomial shape a")
	c.Flags().Float64Var(&b1, "b", 1, "beta-binomial shape b")
	c.Flags().Float64Var(&n1, "n", 1, "beta-binomial number of trials")
	c.Flags().Float64Var(&theta, "theta", 1, "generalized Poisson rate")
	c.Flags().Float64Var(&lambda, "lambda", 0, "generalized Poisson dispersion")
	c.Flags().BoolVar(&giveLog, "log", false, "print log densities")

	_ = c.MarkFlagRequired("family")
	_ = c.MarkFlagRequired("y")
	return c
}

// isCount reports whether v is a non-negative integer small enough for int.
func isCount(v float64) bool {
	return v >= 0 && v <= math.MaxInt32 && v == math.Trunc(v)
}
