// Package config loads runtime settings from a .env file and the environment.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Debug            bool
	LogLevel         string
	LogFormat        string
	CORSAllowOrigins []string
	RateLimitRPS     float64
	RateLimitBurst   int
	MaxBatchSize     int
}

var defaults = map[string]any{
	"ai_port":            "5001",
	"debug":              false,
	"log_level":          "info",
	"log_format":         "json",
	"cors_allow_origins": "*",
	"rate_limit_rps":     0.0,
	"rate_limit_burst":   20,
	"max_batch_size":     0,
}

// Load reads configuration from ./.env (if present) overlaid by the process
// environment.
func Load() (Config, error) {
	return load(".env")
}

func load(envFiles ...string) (Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.SetConfigType("env")
	for _, path := range envFiles {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, err
		}
	}
	v.AutomaticEnv()

	cfg := Config{
		Port:             strings.TrimSpace(v.GetString("ai_port")),
		Debug:            v.GetBool("debug"),
		LogLevel:         strings.ToLower(v.GetString("log_level")),
		LogFormat:        strings.ToLower(v.GetString("log_format")),
		CORSAllowOrigins: splitAndTrim(v.GetString("cors_allow_origins")),
		RateLimitRPS:     v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:   v.GetInt("rate_limit_burst"),
		MaxBatchSize:     v.GetInt("max_batch_size"),
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
