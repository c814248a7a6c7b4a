package demo

import (
	"io"

	"github.com/Borislavv/ownership/internal/demo/config"
	"github.com/Borislavv/ownership/pkg/model"
	"github.com/Borislavv/ownership/pkg/owner"
	"github.com/Borislavv/ownership/pkg/prometheus/metrics"
	"github.com/Borislavv/ownership/pkg/registry"
	"github.com/rs/zerolog/log"
)

// Report summarizes one demonstration run.
type Report struct {
	Destroyed int              // values destroyed when the scope closed
	Leaked    []*model.Holder  // holders still alive after the scope closed
	Metrics   metrics.Snapshot // meter values after the run
}

// Driver runs the ownership demonstration.
type Driver struct {
	cfg   *config.Config
	out   io.Writer
	meter metrics.Meter
	live  *registry.Registry[*model.Holder]
}

func NewDriver(cfg *config.Config, out io.Writer, meter metrics.Meter, live *registry.Registry[*model.Holder]) *Driver {
	return &Driver{cfg: cfg, out: out, meter: meter, live: live}
}

// Run executes the demonstration and checks that nothing outlived its owners.
func (d *Driver) Run() Report {
	destroyed := d.runScope()

	report := Report{
		Destroyed: destroyed,
		Metrics:   d.meter.Snapshot(),
	}
	d.live.Walk(func(_ uint64, h *model.Holder) {
		report.Leaked = append(report.Leaked, h)
		log.Error().Msgf("[demo] holder #%d (value: %d) outlived its owners", h.ID(), h.Value())
	})
	return report
}

// runScope is the single execution scope of the demonstration; everything
// acquired here is released by the deferred scope.Close.
func (d *Driver) runScope() (destroyed int) {
	scope := owner.NewScope()
	defer func() {
		destroyed = scope.Close()
		log.Debug().Msgf("[demo] scope closed, %d values destroyed", destroyed)
	}()

	exclusive := owner.NewUnique(d.newHolder(d.cfg.ExclusiveValue), owner.WithObserver(d.meter))
	scope.Exclusive(exclusive)
	exclusive.Get().Display()

	first := owner.NewShared(d.newHolder(d.cfg.SharedValue), owner.WithObserver(d.meter))
	scope.Shared(first)
	first.Get().Display()

	for i := 1; i < d.cfg.SharedAliases; i++ {
		alias := first.Share()
		scope.Shared(alias)
		alias.Get().Display()
	}
	log.Debug().Msgf("[demo] shared holder has %d owners", first.UseCount())

	return
}

func (d *Driver) newHolder(value int) *model.Holder {
	return model.NewHolder(value,
		model.WithOutput(d.out),
		model.WithTrackers(d.meter, liveTracker{live: d.live}),
	)
}
