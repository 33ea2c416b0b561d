// Package config loads lanetsp settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lanetsp/logging"
	"github.com/katalvlaran/lanetsp/perm"
	"github.com/katalvlaran/lanetsp/remote"
	"github.com/katalvlaran/lanetsp/tsp"
	"github.com/katalvlaran/lanetsp/wire"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level configuration document.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Log     LogConfig     `yaml:"log"`
	Remote  RemoteConfig  `yaml:"remote"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// EngineConfig mirrors the tsp engine options.
type EngineConfig struct {
	Lanes          int    `yaml:"lanes"`
	Workers        int    `yaml:"workers"` // 0 means GOMAXPROCS
	BatchSize      uint64 `yaml:"batch_size"`
	MaxNodes       int    `yaml:"max_nodes"`
	WeightBound    uint32 `yaml:"weight_bound"` // 0 means no bound
	SymmetryFilter bool   `yaml:"symmetry_filter"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RemoteConfig configures the UDP client and server.
type RemoteConfig struct {
	// Addr is the controller address the client talks to.
	Addr string `yaml:"addr"`
	// Listen is the address the server binds.
	Listen string `yaml:"listen"`
	// Timeout is how long the client waits for each reply before retransmitting.
	Timeout time.Duration `yaml:"timeout"`
	// Retries is the number of retransmissions after the first attempt.
	Retries int `yaml:"retries"`
	// Rate and Burst pace client retransmissions and server replies.
	Rate  float64 `yaml:"rate"`
	Burst int     `yaml:"burst"`
	// VerifyNodes is the largest scenario the server verifies.
	VerifyNodes int `yaml:"verify_nodes"`
}

// MetricsConfig configures the Prometheus endpoint. Empty Addr disables it.
type MetricsConfig struct {
	Addr      string `yaml:"addr"`
	Namespace string `yaml:"namespace"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			Lanes:          tsp.DefaultLanes,
			BatchSize:      tsp.DefaultBatchSize,
			MaxNodes:       tsp.DefaultMaxNodes,
			SymmetryFilter: tsp.DefaultSymmetryFilter,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Remote: RemoteConfig{
			Addr:        "127.0.0.1:7100",
			Listen:      ":7100",
			Timeout:     2 * time.Second,
			Retries:     3,
			Rate:        50,
			Burst:       10,
			VerifyNodes: remote.DefaultVerifyNodes,
		},
		Metrics: MetricsConfig{
			Namespace: "lanetsp",
		},
	}
}

// Load reads path over the defaults, applies LANETSP_* environment overrides
// and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Write encodes c as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return enc.Close()
}

// applyEnv overrides fields from LANETSP_* variables.
func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("LANETSP_LANES"); ok {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LANETSP_LANES=%q: %w", v, ErrInvalid)
		}
		c.Engine.Lanes = i
	}
	if v, ok := lookup("LANETSP_WORKERS"); ok {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LANETSP_WORKERS=%q: %w", v, ErrInvalid)
		}
		c.Engine.Workers = i
	}
	if v, ok := lookup("LANETSP_SYMMETRY_FILTER"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LANETSP_SYMMETRY_FILTER=%q: %w", v, ErrInvalid)
		}
		c.Engine.SymmetryFilter = b
	}
	if v, ok := lookup("LANETSP_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("LANETSP_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := lookup("LANETSP_REMOTE_ADDR"); ok {
		c.Remote.Addr = v
	}
	if v, ok := lookup("LANETSP_METRICS_ADDR"); ok {
		c.Metrics.Addr = v
	}

	return nil
}

// Validate checks every section.
func (c Config) Validate() error {
	e := c.Engine
	if e.Lanes < 1 || e.Lanes > tsp.MaxLanes {
		return fmt.Errorf("engine.lanes=%d must be in [1,%d]: %w", e.Lanes, tsp.MaxLanes, ErrInvalid)
	}
	if e.Workers < 0 {
		return fmt.Errorf("engine.workers=%d must be >= 0: %w", e.Workers, ErrInvalid)
	}
	if e.BatchSize < 1 {
		return fmt.Errorf("engine.batch_size must be >= 1: %w", ErrInvalid)
	}
	if e.MaxNodes < 1 || e.MaxNodes > perm.MaxN {
		return fmt.Errorf("engine.max_nodes=%d must be in [1,%d]: %w", e.MaxNodes, perm.MaxN, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %v: %w", err, ErrInvalid)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format=%q must be text or json: %w", c.Log.Format, ErrInvalid)
	}
	r := c.Remote
	if r.Timeout <= 0 {
		return fmt.Errorf("remote.timeout must be > 0: %w", ErrInvalid)
	}
	if r.Retries < 0 {
		return fmt.Errorf("remote.retries must be >= 0: %w", ErrInvalid)
	}
	if r.Rate <= 0 || r.Burst < 1 {
		return fmt.Errorf("remote.rate must be > 0 and remote.burst >= 1: %w", ErrInvalid)
	}
	if wire.CheckNodes(r.VerifyNodes) != nil {
		return fmt.Errorf("remote.verify_nodes=%d must be in [%d,%d]: %w", r.VerifyNodes, wire.MinNodes, wire.MaxNodes, ErrInvalid)
	}

	return nil
}

// EngineOptions maps the engine section onto tsp options.
func (c Config) EngineOptions(log *logging.Logger, m tsp.MetricsCollector) []tsp.Option {
	opts := []tsp.Option{
		tsp.WithLanes(c.Engine.Lanes),
		tsp.WithBatchSize(c.Engine.BatchSize),
		tsp.WithMaxNodes(c.Engine.MaxNodes),
		tsp.WithWeightBound(c.Engine.WeightBound),
		tsp.WithSymmetryFilter(c.Engine.SymmetryFilter),
		tsp.WithLogger(log),
		tsp.WithMetrics(m),
	}
	if c.Engine.Workers > 0 {
		opts = append(opts, tsp.WithWorkers(c.Engine.Workers))
	}

	return opts
}

// Logger builds the configured logger writing to w.
func (c Config) Logger(w io.Writer) (*logging.Logger, error) {
	return logging.New(w, c.Log.Level, c.Log.Format)
}
