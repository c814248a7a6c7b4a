package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ExclusiveValue != 42 || cfg.SharedValue != 10 || cfg.SharedAliases != 2 {
		t.Fatalf("unexpected demo defaults: %+v", cfg.Demo)
	}
	if cfg.Shards != 16 {
		t.Fatalf("unexpected registry shards: %d", cfg.Shards)
	}
	if !cfg.IsProd() || cfg.IsDebugOn() {
		t.Fatalf("unexpected app defaults: %+v", cfg.Config)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("EXCLUSIVE_VALUE", "7")
	t.Setenv("SHARED_VALUE", "-1")
	t.Setenv("SHARED_ALIASES", "4")
	t.Setenv("REGISTRY_SHARDS", "8")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IsProd() || !cfg.IsDebugOn() {
		t.Fatalf("unexpected app config: %+v", cfg.Config)
	}
	if cfg.ExclusiveValue != 7 || cfg.SharedValue != -1 || cfg.SharedAliases != 4 || cfg.Shards != 8 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadValidates(t *testing.T) {
	cases := map[string]struct {
		env  map[string]string
		want error
	}{
		"no aliases":        {env: map[string]string{"SHARED_ALIASES": "0"}, want: ErrInvalidSharedAliases},
		"odd shards":        {env: map[string]string{"REGISTRY_SHARDS": "12"}, want: ErrInvalidRegistryShards},
		"nonpositive shard": {env: map[string]string{"REGISTRY_SHARDS": "0"}, want: ErrInvalidRegistryShards},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(viper.New()); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	local := filepath.Join(dir, ".env.local")
	if err := os.WriteFile(env, []byte("SHARED_VALUE=11\nEXCLUSIVE_VALUE=43\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("SHARED_VALUE=12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// registered so that t restores the variables godotenv sets
	t.Setenv("SHARED_VALUE", "")
	t.Setenv("EXCLUSIVE_VALUE", "")

	if err := LoadEnvFiles(env, local, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ExclusiveValue != 43 || cfg.SharedValue != 12 {
		t.Fatalf(".env.local must override .env: %+v", cfg.Demo)
	}
}

func TestLoadEnvFilesWithoutFiles(t *testing.T) {
	if err := LoadEnvFiles(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing files must be skipped, got %v", err)
	}
}
