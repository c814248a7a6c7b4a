package demo

import (
	"io"

	"github.com/Borislavv/ownership/internal/demo/config"
	"github.com/Borislavv/ownership/pkg/model"
	"github.com/Borislavv/ownership/pkg/prometheus/metrics"
	"github.com/Borislavv/ownership/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// App encapsulates the demonstration state: config, meter, live registry and driver.
type App struct {
	cfg    *config.Config
	meter  *metrics.Metrics
	driver *Driver
}

// NewApp wires the meter (on its own prometheus registry), the live-holder registry and the driver.
func NewApp(cfg *config.Config, out io.Writer) (*App, error) {
	meter, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	live := registry.New[*model.Holder](cfg.Shards, 1)

	return &App{
		cfg:    cfg,
		meter:  meter,
		driver: NewDriver(cfg, out, meter, live),
	}, nil
}

// Run executes the demonstration once.
func (a *App) Run() Report {
	log.Info().Msg("[demo] starting ownership demo")

	report := a.driver.Run()

	log.Debug().
		Float64("constructed", report.Metrics.Constructed).
		Float64("destroyed", report.Metrics.Destroyed).
		Float64("alive", report.Metrics.Alive).
		Float64("sharedRefs", report.Metrics.SharedReferences).
		Float64("exclusiveReleases", report.Metrics.ExclusiveReleases).
		Float64("sharedReleases", report.Metrics.SharedReleases).
		Msg("[demo] lifecycle metrics")

	if len(report.Leaked) > 0 {
		log.Error().Msgf("[demo] %d holders leaked", len(report.Leaked))
	}
	log.Info().Msg("[demo] ownership demo has been finished")

	return report
}
