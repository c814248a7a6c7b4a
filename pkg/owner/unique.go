package owner

import (
	"sync/atomic"

	"github.com/Borislavv/ownership/pkg/types"
	"github.com/rs/zerolog/log"
)

// Unique is the only owner of its value: releasing it destroys the value.
// A Unique must not be copied; pass the pointer returned by NewUnique.
type Unique[T types.Destroyer] struct {
	_        noCopy
	value    T
	released atomic.Bool
	opts     options
}

func NewUnique[T types.Destroyer](value T, opts ...Option) *Unique[T] {
	u := &Unique[T]{value: value, opts: newOptions(opts)}
	u.opts.observer.Acquired(Exclusive, 1)
	return u
}

// Get returns the owned value. Panics once the owner is released.
func (u *Unique[T]) Get() T {
	if u.released.Load() {
		panic("owner: get on a released unique owner")
	}
	return u.value
}

// Release destroys the value. Only the first call has an effect.
func (u *Unique[T]) Release() bool {
	if !u.released.CompareAndSwap(false, true) {
		return false
	}
	u.value.Destroy()
	u.opts.observer.Released(Exclusive, 0, true)
	log.Debug().Msg("[owner] unique owner released its value")
	return true
}

// RefCount is 1 while the value is owned and 0 after release.
func (u *Unique[T]) RefCount() int64 {
	if u.released.Load() {
		return 0
	}
	return 1
}
