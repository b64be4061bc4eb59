package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/distrib/internal/fit"
)

func fitCmd(a *app) *cobra.Command {
	var (
		family    string
		ys, ns    []float64
		maxIter   int
		optimizer string
	)

	c := &cobra.Command{
		Use:   "fit",
		Short: "Maximum-likelihood fit of a genpois or betabinom sample",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := fit.Config{MaxIter: maxIter, Optimizer: optimizer, Logger: a.logger}

			var (
				res   fit.Result
				names []string
				err   error
			)
			switch family {
			case "genpois":
				res, err = fit.GenPois(ys, cfg)
				names = []string{"theta", "lambda"}
			case "betabinom":
				res, err = fit.BetaBinom(ys, ns, cfg)
				names = []string{"a", "b"}
			default:
				return fmt.Errorf("unknown family %q (want betabinom or genpois)", family)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, name := range names {
				fmt.Fprintf(w, "%s\t%.8g\n", name, res.Params[i])
			}
			fmt.Fprintf(w, "loglik\t%.10g\n", res.LogLik)
			fmt.Fprintf(w, "iterations\t%d\n", res.Iterations)
			fmt.Fprintf(w, "converged\t%t\n", res.Converged)
			return nil
		},
	}

	c.Flags().StringVarP(&family, "family", "f", "", "betabinom or genpois (required)")
	c.Flags().Float64SliceVarP(&ys, "y", "y", nil, "comma-separated counts (required)")
	c.Flags().Float64SliceVarP(&ns, "n", "n", nil, "comma-separated trial sizes for betabinom")
	c.Flags().IntVar(&maxIter, "max-iter", 0, "iteration cap (0 for default)")
	c.Flags().StringVar(&optimizer, "optimizer", "adam", "adam or sgd")

	_ = c.MarkFlagRequired("family")
	_ = c.MarkFlagRequired("y")
	return c
}
