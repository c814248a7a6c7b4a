package config

type Demo struct {
	// ExclusiveValue is held by the exclusively owned holder.
	ExclusiveValue int `mapstructure:"EXCLUSIVE_VALUE"`
	// SharedValue is held by the holder behind the shared owners.
	SharedValue int `mapstructure:"SHARED_VALUE"`
	// SharedAliases is the number of shared owners of the same holder, the first one included (>= 1).
	SharedAliases int `mapstructure:"SHARED_ALIASES"`
}
