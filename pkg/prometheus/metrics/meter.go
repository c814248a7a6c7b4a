package metrics

import (
	"errors"

	"github.com/Borislavv/ownership/pkg/model"
	"github.com/Borislavv/ownership/pkg/owner"
	"github.com/Borislavv/ownership/pkg/prometheus/metrics/keyword"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog/log"
)

var MetricRegisterErrorMessage = "failed to register metric collector"

// Meter observes holder lifecycles (model.Tracker) and owner references (owner.Observer).
type Meter interface {
	model.Tracker
	owner.Observer
	Snapshot() Snapshot
}

// Snapshot is a point-in-time copy of the meter values.
type Snapshot struct {
	Constructed       float64
	Destroyed         float64
	Alive             float64
	SharedReferences  float64
	ExclusiveReleases float64
	SharedReleases    float64
}

type Metrics struct {
	holdersConstructedCounter prometheus.Counter
	holdersDestroyedCounter   prometheus.Counter
	holdersAliveGauge         prometheus.Gauge
	sharedReferencesGauge     prometheus.Gauge
	releasesCounter           *prometheus.CounterVec
}

// New creates the meter and registers its collectors on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		holdersConstructedCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: keyword.HoldersConstructedMetricName,
			Help: "Number of constructed holders.",
		}),
		holdersDestroyedCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: keyword.HoldersDestroyedMetricName,
			Help: "Number of destroyed holders.",
		}),
		holdersAliveGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: keyword.HoldersAliveMetricName,
			Help: "Number of holders constructed and not yet destroyed.",
		}),
		sharedReferencesGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: keyword.SharedReferencesMetricName,
			Help: "Number of live shared owner handles.",
		}),
		releasesCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: keyword.ReleasesMetricName,
				Help: "Number of owner releases by ownership kind.",
			},
			[]string{"kind"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.holdersConstructedCounter,
		m.holdersDestroyedCounter,
		m.holdersAliveGauge,
		m.sharedReferencesGauge,
		m.releasesCounter,
	} {
		if err := reg.Register(c); err != nil {
			log.Err(err).Msg(MetricRegisterErrorMessage)
			return nil, errors.New(MetricRegisterErrorMessage)
		}
	}

	return m, nil
}

func (m *Metrics) Constructed(_ *model.Holder) {
	m.holdersConstructedCounter.Inc()
	m.holdersAliveGauge.Inc()
}

func (m *Metrics) Destroyed(_ *model.Holder) {
	m.holdersDestroyedCounter.Inc()
	m.holdersAliveGauge.Dec()
}

func (m *Metrics) Acquired(kind owner.Kind, _ int64) {
	if kind == owner.Shared {
		m.sharedReferencesGauge.Inc()
	}
}

func (m *Metrics) Released(kind owner.Kind, _ int64, _ bool) {
	if kind == owner.Shared {
		m.sharedReferencesGauge.Dec()
	}
	m.releasesCounter.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Constructed:       value(m.holdersConstructedCounter),
		Destroyed:         value(m.holdersDestroyedCounter),
		Alive:             value(m.holdersAliveGauge),
		SharedReferences:  value(m.sharedReferencesGauge),
		ExclusiveReleases: value(m.releasesCounter.WithLabelValues(string(owner.Exclusive))),
		SharedReleases:    value(m.releasesCounter.WithLabelValues(string(owner.Shared))),
	}
}

func value(metric prometheus.Metric) float64 {
	var pb dto.Metric
	if err := metric.Write(&pb); err != nil {
		log.Err(err).Msg("failed to read metric value")
		return 0
	}
	switch {
	case pb.Counter != nil:
		return pb.Counter.GetValue()
	case pb.Gauge != nil:
		return pb.Gauge.GetValue()
	default:
		return 0
	}
}
