package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lanetsp/builder"
	"github.com/katalvlaran/lanetsp/tsp"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		file     string
		lanes    int
		noFilter bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the optimal tour of a scenario file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := readScenario(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			d, err := sc.Distance()
			if err != nil {
				return err
			}

			m, stop := a.startMetrics()
			defer stop()
			opts := a.cfg.EngineOptions(a.log, m)
			if lanes > tsp.MaxLanes {
				return fmt.Errorf("--lanes %d exceeds %d", lanes, tsp.MaxLanes)
			}
			if lanes > 0 {
				opts = append(opts, tsp.WithLanes(lanes))
			}
			if noFilter {
				opts = append(opts, tsp.WithSymmetryFilter(false))
			}

			e := tsp.NewEngine(opts...)
			if err = e.Ingest(d); err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			res, err := e.Run(ctx)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "scenario YAML file, - for stdin")
	cmd.Flags().IntVar(&lanes, "lanes", 0, "lane count (overrides config)")
	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "evaluate mirrored tours too (asymmetric matrices)")

	return cmd
}

func readScenario(path string, stdin io.Reader) (builder.Scenario, error) {
	if path == "-" {
		return builder.ReadScenario(stdin)
	}

	return builder.LoadScenario(path)
}

func printResult(w io.Writer, res tsp.SearchResult) error {
	closed, err := tsp.MakeTourFromPermutation(res.Tour, res.N, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "cost: %d\nindex: %d\nlane: %d\ntour: %s\nevaluated: %d/%d\nelapsed: %s\n",
		res.BestCost, res.BestIndex, res.BestLane, tsp.DebugString(closed),
		res.Evaluated, res.Visited, res.Elapsed)

	return err
}
