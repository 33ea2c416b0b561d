package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lanetsp/config"
	"github.com/katalvlaran/lanetsp/logging"
	"github.com/katalvlaran/lanetsp/metrics"
)

// app carries state shared by all subcommands after PersistentPreRunE.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg config.Config
	log *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lanetsp",
		Short:         "Exhaustive lane-partitioned TSP solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "text or json (overrides config)")

	root.AddCommand(
		newSolveCmd(a),
		newDecodeCmd(a),
		newGenCmd(a),
		newClientCmd(a),
		newServeCmd(a),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if a.log, err = cfg.Logger(cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// startMetrics builds the collector and, when metrics.addr is set, serves
// /metrics until the returned stop func is called.
func (a *app) startMetrics() (*metrics.Prometheus, func()) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg, a.cfg.Metrics.Namespace)
	if a.cfg.Metrics.Addr == "" {
		return m, func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              a.cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server failed", "addr", srv.Addr, "error", err)
		}
	}()
	a.log.Info("metrics endpoint listening", "addr", srv.Addr)

	return m, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
