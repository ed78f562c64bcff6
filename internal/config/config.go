// Package config loads runtime settings from an optional YAML file and
// ANOMALY_MCP_* environment variables.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/ironsheep/hue-anomaly-mcp/internal/anomaly"
)

// EnvPrefix is prepended to every environment variable. Nested keys use
// underscores, e.g. ANOMALY_MCP_DETECTOR_MARGIN.
const EnvPrefix = "ANOMALY_MCP"

// Detector mirrors anomaly.Options.
type Detector struct {
	Margin           int     `mapstructure:"margin"`
	MinDistance      float64 `mapstructure:"min_distance"`
	BrightnessCutoff float64 `mapstructure:"brightness_cutoff"`
	BrightThreshold  float64 `mapstructure:"bright_threshold"`
	DarkThreshold    float64 `mapstructure:"dark_threshold"`
}

// Options converts the settings for anomaly.NewDetector.
func (d Detector) Options() anomaly.Options {
	return anomaly.Options{
		Margin:           d.Margin,
		MinDistance:      d.MinDistance,
		BrightnessCutoff: d.BrightnessCutoff,
		BrightThreshold:  d.BrightThreshold,
		DarkThreshold:    d.DarkThreshold,
	}
}

// Config holds everything Load resolves: log level and detector tuning.
type Config struct {
	LogLevel string   `mapstructure:"log_level"`
	Detector Detector `mapstructure:"detector"`
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// Load reads settings. path may be empty, in which case only defaults and
// environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal
	def := anomaly.DefaultOptions()
	v.SetDefault("log_level", "info")
	v.SetDefault("detector.margin", def.Margin)
	v.SetDefault("detector.min_distance", def.MinDistance)
	v.SetDefault("detector.brightness_cutoff", def.BrightnessCutoff)
	v.SetDefault("detector.bright_threshold", def.BrightThreshold)
	v.SetDefault("detector.dark_threshold", def.DarkThreshold)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	d := c.Detector
	switch {
	case d.Margin < 0:
		return fmt.Errorf("detector.margin must not be negative, got %d", d.Margin)
	case d.MinDistance < 0 || math.IsNaN(d.MinDistance) || math.IsInf(d.MinDistance, 0):
		return fmt.Errorf("detector.min_distance must be a finite non-negative number, got %g", d.MinDistance)
	case d.BrightThreshold < 0 || d.DarkThreshold < 0:
		return fmt.Errorf("detector thresholds must not be negative, got %g/%g", d.BrightThreshold, d.DarkThreshold)
	}
	return nil
}
