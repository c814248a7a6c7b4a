package owner

import (
	"sync/atomic"

	"github.com/Borislavv/ownership/pkg/types"
	"github.com/rs/zerolog/log"
)

// control is the block every alias of one shared value points to.
type control[T types.Destroyer] struct {
	value T
	refs  atomic.Int64
	opts  options
}

// SharedOwner is one handle of a reference-counted value. The value is destroyed
// when the last handle is released. Handles must not be copied; use Share.
type SharedOwner[T types.Destroyer] struct {
	_        noCopy
	ctrl     *control[T]
	released atomic.Bool
}

// NewShared takes ownership of value with a reference count of one.
func NewShared[T types.Destroyer](value T, opts ...Option) *SharedOwner[T] {
	ctrl := &control[T]{value: value, opts: newOptions(opts)}
	ctrl.refs.Store(1)
	ctrl.opts.observer.Acquired(Shared, 1)
	return &SharedOwner[T]{ctrl: ctrl}
}

// Share returns a new handle to the same value and increments the count.
func (s *SharedOwner[T]) Share() *SharedOwner[T] {
	if s.released.Load() {
		panic("owner: share on a released shared owner")
	}
	refs := s.ctrl.refs.Add(1)
	if refs == 1 {
		panic("owner: incremented an already-zero reference count")
	}
	s.ctrl.opts.observer.Acquired(Shared, refs)
	log.Debug().Msgf("[owner] shared reference acquired (refs: %d)", refs)
	return &SharedOwner[T]{ctrl: s.ctrl}
}

// Get returns the shared value. Panics once this handle is released.
func (s *SharedOwner[T]) Get() T {
	if s.released.Load() {
		panic("owner: get on a released shared owner")
	}
	return s.ctrl.value
}

// Release drops this handle's reference. The first release of a handle
// decrements the count; repeated calls are no-ops. Reports whether the value was destroyed.
func (s *SharedOwner[T]) Release() bool {
	if !s.released.CompareAndSwap(false, true) {
		return false
	}

	refs := s.ctrl.refs.Add(-1)
	switch {
	case refs < 0:
		panic("owner: decremented an already-zero reference count")
	case refs == 0:
		s.ctrl.value.Destroy()
		s.ctrl.opts.observer.Released(Shared, 0, true)
		log.Debug().Msg("[owner] last shared reference released, value destroyed")
		return true
	default:
		s.ctrl.opts.observer.Released(Shared, refs, false)
		log.Debug().Msgf("[owner] shared reference released (refs: %d)", refs)
		return false
	}
}

// UseCount reports the number of live handles sharing the value.
func (s *SharedOwner[T]) UseCount() int64 {
	return s.ctrl.refs.Load()
}

func (s *SharedOwner[T]) RefCount() int64 {
	return s.UseCount()
}
