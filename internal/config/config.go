// Package config loads the demo's presentation preferences from a TOML file
// and SLIDE_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Motion     MotionConfig
	Appearance AppearanceConfig
	Debug      DebugConfig
}

// MotionConfig holds transition settings.
type MotionConfig struct {
	// Reduced skips timed transitions and jumps straight to end states.
	Reduced bool
	// Spring settles interrupted transitions with a spring instead of the
	// fixed-duration ease.
	Spring bool
	// Interactive enables drag-to-dismiss.
	Interactive bool
}

// AppearanceConfig holds presentation styling.
type AppearanceConfig struct {
	// Edge the sheet slides in from: top, bottom, left, right, leading or
	// trailing.
	Edge string
	// CornerRadius while the sheet is in motion; 0 keeps the default.
	CornerRadius float64 `mapstructure:"corner_radius"`
	// DepthEffect pushes the underlying view back while a sheet is up.
	DepthEffect bool `mapstructure:"depth_effect"`
	// SizeFraction is the sheet's share of the terminal, in (0, 1].
	SizeFraction float64 `mapstructure:"size_fraction"`
	// RightToLeft mirrors leading/trailing edges.
	RightToLeft bool `mapstructure:"right_to_left"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	// LogFile receives tea debug logging when set.
	LogFile string `mapstructure:"log_file"`
}

// Load reads configuration from file and env. Env var overrides use prefix SLIDE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("motion.reduced", false)
	v.SetDefault("motion.spring", false)
	v.SetDefault("motion.interactive", true)
	v.SetDefault("appearance.edge", "bottom")
	v.SetDefault("appearance.corner_radius", 0.0)
	v.SetDefault("appearance.depth_effect", true)
	v.SetDefault("appearance.size_fraction", 0.6)
	v.SetDefault("appearance.right_to_left", false)
	v.SetDefault("debug.log_file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SLIDE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "slide"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SLIDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func validate(c Config) error {
	switch strings.ToLower(c.Appearance.Edge) {
	case "top", "bottom", "left", "right", "leading", "trailing":
	default:
		return fmt.Errorf("config: unknown edge %q", c.Appearance.Edge)
	}
	if f := c.Appearance.SizeFraction; f <= 0 || f > 1 {
		return fmt.Errorf("config: size_fraction %v outside (0, 1]", f)
	}
	if c.Appearance.CornerRadius < 0 {
		return fmt.Errorf("config: negative corner_radius %v", c.Appearance.CornerRadius)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the demo's settings sheet.
func Save(cfg Config) error {
	path := os.Getenv("SLIDE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "slide", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("motion.reduced", cfg.Motion.Reduced)
	v.Set("motion.spring", cfg.Motion.Spring)
	v.Set("motion.interactive", cfg.Motion.Interactive)
	v.Set("appearance.edge", cfg.Appearance.Edge)
	v.Set("appearance.corner_radius", cfg.Appearance.CornerRadius)
	v.Set("appearance.depth_effect", cfg.Appearance.DepthEffect)
	v.Set("appearance.size_fraction", cfg.Appearance.SizeFraction)
	v.Set("appearance.right_to_left", cfg.Appearance.RightToLeft)
	v.Set("debug.log_file", cfg.Debug.LogFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
