package config

import (
	"errors"
	"fmt"
	"os"

	cfg "github.com/Borislavv/ownership/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrInvalidSharedAliases  = errors.New("SHARED_ALIASES must be at least 1")
	ErrInvalidRegistryShards = errors.New("REGISTRY_SHARDS must be a positive power of two")
)

// DefaultEnvFiles are loaded in order, later files override earlier ones.
var DefaultEnvFiles = []string{".env", ".env.local"}

var defaults = map[string]any{
	"APP_ENV":         "prod",
	"APP_DEBUG":       false,
	"LOG_LEVEL":       "",
	"EXCLUSIVE_VALUE": 42,
	"SHARED_VALUE":    10,
	"SHARED_ALIASES":  2,
	"REGISTRY_SHARDS": 16,
}

type Config struct {
	cfg.Config   `mapstructure:",squash"`
	cfg.Demo     `mapstructure:",squash"`
	cfg.Registry `mapstructure:",squash"`
}

// LoadEnvFiles overloads the process environment with those of files that exist.
func LoadEnvFiles(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Overload(existing...); err != nil {
		return fmt.Errorf("load env files %v: %w", existing, err)
	}
	return nil
}

// Bind registers defaults and binds every known key to its environment variable.
func Bind(v *viper.Viper) error {
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

// Load binds v, unmarshals the configuration and validates it.
func Load(v *viper.Viper) (*Config, error) {
	if err := Bind(v); err != nil {
		return nil, err
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unmarshal config from envs: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.SharedAliases < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidSharedAliases, c.SharedAliases)
	}
	if c.Shards < 1 || c.Shards&(c.Shards-1) != 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidRegistryShards, c.Shards)
	}
	return nil
}
