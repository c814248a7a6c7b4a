package config

type Registry struct {
	// Shards is a number of registry shards, must be a power of two.
	Shards int `mapstructure:"REGISTRY_SHARDS"`
}
