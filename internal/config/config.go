// Package config carries the runtime settings of the saltsizer CLI.
//
// Settings come from SALTSIZER_* environment variables with documented
// defaults; persistent flags override them per invocation. Calculator
// parameters never come from the environment: flags, case files and the
// reference defaults are their only sources.
package config

import "github.com/kelseyhightower/envconfig"

// Config holds the CLI runtime settings.
type Config struct {
	LogLevel  string `envconfig:"SALTSIZER_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"SALTSIZER_LOG_FORMAT" default:"console"`
	Output    string `envconfig:"SALTSIZER_OUTPUT" default:"table"`
}

// New reads Config from the environment.
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
