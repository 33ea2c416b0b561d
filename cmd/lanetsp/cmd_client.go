package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lanetsp/remote"
	"github.com/katalvlaran/lanetsp/tsp"
)

func newClientCmd(a *app) *cobra.Command {
	var (
		addr     string
		nodes    int
		scenario uint32
	)
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Fetch a scenario from a controller, solve it and submit the distance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Remote.Addr
			}
			m, stop := a.startMetrics()
			defer stop()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			c, err := remote.Dial(ctx, addr, tsp.NewEngine(a.cfg.EngineOptions(a.log, m)...), remoteOptions(a, m)...)
			if err != nil {
				return err
			}
			defer c.Close()

			out, err := c.Solve(ctx, nodes, scenario)
			if err != nil {
				return err
			}
			if err = printResult(cmd.OutOrStdout(), out.Result); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", out.Status)

			return err
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "controller address (overrides config)")
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 0, "node count")
	cmd.Flags().Uint32VarP(&scenario, "scenario", "s", 0, "scenario id")
	_ = cmd.MarkFlagRequired("nodes")

	return cmd
}

func remoteOptions(a *app, m remote.MetricsCollector) []remote.Option {
	r := a.cfg.Remote

	return []remote.Option{
		remote.WithTimeout(r.Timeout),
		remote.WithRetries(r.Retries),
		remote.WithRate(r.Rate, r.Burst),
		remote.WithLogger(a.log),
		remote.WithMetrics(m),
	}
}
