package main

import (
	"os"
	"runtime"

	"github.com/Borislavv/ownership/internal/demo"
	"github.com/Borislavv/ownership/internal/demo/config"
	"github.com/Borislavv/ownership/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"
)

// Loads .env and .env.local (when present) so any value may be overridden there.
func init() {
	logging.ConfigureRuntime()

	if err := config.LoadEnvFiles(config.DefaultEnvFiles...); err != nil {
		log.Fatal().Err(err).Msg("[main] failed to load env files")
	}
}

// setMaxProcs sets GOMAXPROCS from the available CPUs and cgroup quotas (uses automaxprocs).
func setMaxProcs() {
	logger := maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug().Msgf("[main] "+format, args...)
	})
	if _, err := maxprocs.Set(logger); err != nil {
		log.Err(err).Msg("[main] setting up GOMAXPROCS value failed")
		panic(err)
	}
	log.Debug().Msgf("[main] optimized GOMAXPROCS=%d was set up", runtime.GOMAXPROCS(0))
}

// loadCfg loads the configuration from environment variables bound through viper.
func loadCfg() *config.Config {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatal().Err(err).Msg("[main] failed to load config from envs")
	}
	return cfg
}

func main() {
	cfg := loadCfg()
	logging.Configure(os.Stderr, logging.ProfileRuntime, &cfg.Config)

	setMaxProcs()

	app, err := demo.NewApp(cfg, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("[main] failed to init ownership demo")
	}
	app.Run()
}
