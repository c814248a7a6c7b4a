package demo

import (
	"github.com/Borislavv/ownership/pkg/model"
	"github.com/Borislavv/ownership/pkg/registry"
)

// liveTracker keeps constructed and not yet destroyed holders in the registry.
type liveTracker struct {
	live *registry.Registry[*model.Holder]
}

func (t liveTracker) Constructed(h *model.Holder) {
	t.live.Set(h)
}

func (t liveTracker) Destroyed(h *model.Holder) {
	t.live.Del(h.Key())
}
