// Package config loads the estimator service's runtime configuration: the
// default error budget split, protocol selection, and server settings,
// backed by viper so values can come from a file, environment variables, or
// explicit defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config wraps a *viper.Viper instance carrying the estimator's runtime
// settings.
type Config struct {
	v *viper.Viper
}

// Load reads configuration from configPath (if non-empty) plus the
// QRE_-prefixed environment, falling back to the built-in defaults below.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("QRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	return &Config{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("port", 8080)
	v.SetDefault("localOnly", false)
	v.SetDefault("corsAllowOrigin", "")
	v.SetDefault("protocol", "surface-code")
	v.SetDefault("errorBudget.logical", 1.0/3)
	v.SetDefault("errorBudget.magicStates", 1.0/3)
	v.SetDefault("errorBudget.rotations", 1.0/3)
}

// GetBool returns the boolean value at key.
func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

// GetString returns the string value at key.
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// GetInt returns the integer value at key.
func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

// GetFloat64 returns the float value at key.
func (c *Config) GetFloat64(key string) float64 { return c.v.GetFloat64(key) }
