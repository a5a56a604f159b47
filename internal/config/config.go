// Package config loads jdx's layered defaults — flags override environment
// variables, which override a config file, which override built-in
// defaults — for max_samples, max_candidates, cache_size, and the document
// format, via viper's SetDefault + ReadInConfig + SetEnvPrefix +
// AutomaticEnv + BindPFlags.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultMaxSamples    = 50
	DefaultMaxCandidates = 20
	DefaultCacheSize     = 256
)

// Config holds every layered setting the CLI and engine packages consult.
type Config struct {
	Format        string `mapstructure:"format"`
	MaxSamples    int    `mapstructure:"max_samples"`
	MaxCandidates int    `mapstructure:"max_candidates"`
	CacheSize     int    `mapstructure:"cache_size"`
}

// Load builds a Config from, in increasing priority: built-in defaults,
// an optional `.jdx.yaml` (or `.jdx.json`/`.jdx.toml`) file in the current
// directory or $HOME, `JDX_*` environment variables, then flags already
// bound onto fs (if non-nil).
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("format", "") // empty: the CLI picks it from the file extension, else json
	v.SetDefault("max_samples", DefaultMaxSamples)
	v.SetDefault("max_candidates", DefaultMaxCandidates)
	v.SetDefault("cache_size", DefaultCacheSize)

	v.SetConfigName(".jdx")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("JDX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
		// These CLI flag names differ from the config keys they override.
		for key, name := range map[string]string{"max_samples": "max-samples", "max_candidates": "max-candidates", "cache_size": "cache"} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
