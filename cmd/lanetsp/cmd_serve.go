package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lanetsp/remote"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a scenario controller that verifies submitted distances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen == "" {
				listen = a.cfg.Remote.Listen
			}
			m, stop := a.startMetrics()
			defer stop()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			opts := append(remoteOptions(a, m),
				remote.WithVerifyNodes(a.cfg.Remote.VerifyNodes),
				remote.WithEngineOptions(a.cfg.EngineOptions(a.log, m)...),
			)
			s, err := remote.Listen(ctx, listen, opts...)
			if err != nil {
				return err
			}

			return s.Serve(ctx)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "UDP listen address (overrides config)")

	return cmd
}
