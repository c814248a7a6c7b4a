package metrics

import (
	"bytes"
	"testing"

	"github.com/Borislavv/ownership/pkg/model"
	"github.com/Borislavv/ownership/pkg/owner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMeterCountsLifecycle(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	u := owner.NewUnique(model.NewHolder(42, model.WithOutput(&out), model.WithTrackers(m)), owner.WithObserver(m))
	a := owner.NewShared(model.NewHolder(10, model.WithOutput(&out), model.WithTrackers(m)), owner.WithObserver(m))
	b := a.Share()

	if got := testutil.ToFloat64(m.holdersAliveGauge); got != 2 {
		t.Fatalf("expected 2 alive holders, got %v", got)
	}
	if got := testutil.ToFloat64(m.sharedReferencesGauge); got != 2 {
		t.Fatalf("expected 2 shared references, got %v", got)
	}

	u.Release()
	b.Release()
	a.Release()

	s := m.Snapshot()
	want := Snapshot{
		Constructed:       2,
		Destroyed:         2,
		Alive:             0,
		SharedReferences:  0,
		ExclusiveReleases: 1,
		SharedReleases:    2,
	}
	if s != want {
		t.Fatalf("got snapshot %+v, want %+v", s, want)
	}
	if got := testutil.ToFloat64(m.releasesCounter.WithLabelValues(string(owner.Shared))); got != 2 {
		t.Fatalf("expected 2 shared releases, got %v", got)
	}
}

func TestNewFailsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatal(err)
	}
	if _, err := New(reg); err == nil {
		t.Fatal("expected registration error")
	}
}
