// Package config defines cobraassign's layered configuration: built-in
// defaults, overridden by an optional YAML file, overridden by
// COBRAOPS_-prefixed environment variables, overridden by CLI flags.
// Grounded on MeKo-Christian-pogo/internal/config's Config/Loader split.
package config

import (
	"errors"
	"fmt"
)

const (
	infoLevel = "info"
)

// Config is the fully resolved configuration for a cobraassign run.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Verbose  bool   `mapstructure:"verbose"`

	Bench   BenchConfig   `mapstructure:"bench"`
	Server  ServerConfig  `mapstructure:"server"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// BenchConfig locates a bench geometry description. The assign and serve
// subcommands do not read it: assign takes its bench from --bench and
// serve from each request body.
type BenchConfig struct {
	// Path to a bench geometry file (YAML/JSON); see tools/genbench for
	// a generator that produces files in this format.
	Path string `mapstructure:"path"`
}

// ServerConfig controls the HTTP server started by `cobraassign serve`.
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	TimeoutSec      int    `mapstructure:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// DefaultConfig returns a configuration with sensible defaults, mirroring
// pogo's DefaultConfig constructor.
func DefaultConfig() Config {
	return Config{
		LogLevel: infoLevel,
		Verbose:  false,
		Bench: BenchConfig{
			Path: "",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			TimeoutSec:      30,
			ShutdownTimeout: 10,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate checks the configuration for internally inconsistent values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server.port %d", c.Server.Port)
	}
	if c.Server.TimeoutSec <= 0 {
		return errors.New("config: server.timeout_sec must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("config: server.shutdown_timeout must be positive")
	}

	return nil
}
