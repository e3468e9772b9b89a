// Package config defines all configuration structures for the hansen engine.
// No I/O or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/solventworks/hansen/internal/infrastructure/monitoring/logging"
)

// ServerConfig holds HTTP API server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// EngineConfig holds the estimation engine's tunables.
type EngineConfig struct {
	// Temperature in Kelvin used by the equation-of-state correction.
	Temperature float64 `mapstructure:"temperature"`

	// ComplexityLength is the connectivity-string length above which a
	// molecule is judged structurally complex and routed to the energy-based
	// method when no reference entry exists.
	ComplexityLength int `mapstructure:"complexity_length"`

	// ReferenceEnabled toggles the experimental reference table.  Disabling
	// it forces every molecule through the predictive methods; useful when
	// benchmarking the methods against the references themselves.
	ReferenceEnabled bool `mapstructure:"reference_enabled"`

	// MetricsNamespace prefixes all Prometheus metric names.
	MetricsNamespace string `mapstructure:"metrics_namespace"`
}

// Config is the root configuration object.
type Config struct {
	Server ServerConfig   `mapstructure:"server"`
	Log    logging.Config `mapstructure:"log"`
	Engine EngineConfig   `mapstructure:"engine"`
}

// Validate checks cross-field constraints after defaults have been applied.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug|release|test, got %q", c.Server.Mode)
	}
	if c.Engine.Temperature <= 0 {
		return fmt.Errorf("engine.temperature must be positive Kelvin, got %g", c.Engine.Temperature)
	}
	if c.Engine.ComplexityLength <= 0 {
		return fmt.Errorf("engine.complexity_length must be positive, got %d", c.Engine.ComplexityLength)
	}
	return nil
}
