package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".octonav"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for octonav settings.
const envPrefix = "OCTONAV"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("navigation.min_cell_size", DefaultMinCellSize)
	v.SetDefault("navigation.edge_dilation", 0.0)
	v.SetDefault("navigation.max_edge_length", 0.0)
	v.SetDefault("navigation.build_workers", 0)

	v.SetDefault("search.max_concurrent", DefaultMaxConcurrent)
	v.SetDefault("search.iteration_cap", 0)
	v.SetDefault("search.heuristic", DefaultHeuristic)

	v.SetDefault("scheduler.requests_per_second", 0.0)
	v.SetDefault("scheduler.burst", 0)
	v.SetDefault("scheduler.buffer", DefaultBuffer)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}
