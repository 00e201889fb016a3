package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables read by Load.
const EnvPrefix = "PGSOLVE"

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"order":          "order",
	"strategy":       "strategy",
	"grouped":        "grouped",
	"seed":           "seed",
	"yield-interval": "yield_interval",
	"max-iterations": "max_iterations",
}

// Load reads defaults, the optional file at path, PGSOLVE_* variables and
// any of flags that the user set, then validates the result.
// path and flags may be empty and nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("order", def.Order)
	v.SetDefault("strategy", def.Strategy)
	v.SetDefault("grouped", def.Grouped)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("yield_interval", def.YieldInterval)
	v.SetDefault("max_iterations", def.MaxIterations)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
