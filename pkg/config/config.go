package config

import "strings"

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	AppDebug bool   `mapstructure:"APP_DEBUG"`
	// LogLevel overrides the level implied by AppDebug:
	// trace, debug, info, warn, error or disabled.
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

func (c *Config) IsProd() bool {
	return strings.EqualFold(c.AppEnv, "prod")
}

func (c *Config) IsDebugOn() bool {
	return c.AppDebug
}
