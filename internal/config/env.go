package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// RuntimeEnv holds deployment settings supplied through the environment.
type RuntimeEnv struct {
	ConfigPath     string `env:"buckshot_config_path" envDefault:"data/solver_config.json"`
	MetricsEnabled bool   `env:"buckshot_metrics_enabled" envDefault:"true"`
}

// ParseRuntimeEnv reads settings from vars, such as the Nakama runtime
// environment. A nil map reads the process environment instead.
func ParseRuntimeEnv(vars map[string]string) (RuntimeEnv, error) {
	var out RuntimeEnv
	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(&out, opts); err != nil {
		return RuntimeEnv{}, fmt.Errorf("parse env: %w", err)
	}
	return out, nil
}
