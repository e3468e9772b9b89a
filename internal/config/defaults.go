package config

import "time"

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultShutdownTimeout = 15 * time.Second
)

// Default values applied to unset fields.  Kept in one place so tests and
// documentation cannot drift from the loader's behaviour.
const (
	DefaultServerPort      = 8080
	DefaultServerMode      = "release"
	DefaultTemperatureK    = 298.15
	DefaultComplexityLen   = 20
	DefaultMetricNamespace = "hansen"
)

// ApplyDefaults fills every unset field of cfg with its documented default.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	if cfg.Engine.Temperature == 0 {
		cfg.Engine.Temperature = DefaultTemperatureK
	}
	if cfg.Engine.ComplexityLength == 0 {
		cfg.Engine.ComplexityLength = DefaultComplexityLen
	}
	if cfg.Engine.MetricsNamespace == "" {
		cfg.Engine.MetricsNamespace = DefaultMetricNamespace
	}
	// ReferenceEnabled defaults to true; viper cannot distinguish unset from
	// false for bools, so the loader sets the default before unmarshalling.
}
