package owner

import (
	"sync"

	"github.com/Borislavv/ownership/pkg/types"
)

// Scope collects owners created inside one block and releases them when the
// block ends. Close is meant to be deferred right after NewScope so that every
// exit path, panics included, releases what was registered.
//
// Exclusive owners are released first, then shared owners; each group in
// reverse order of registration.
type Scope struct {
	mu        sync.Mutex
	exclusive []types.Releasable
	shared    []types.Releasable
	closed    bool
}

func NewScope() *Scope {
	return &Scope{}
}

// Exclusive registers an exclusive owner. Once the scope is closed the owner is released immediately.
func (s *Scope) Exclusive(r types.Releasable) {
	if !s.add(&s.exclusive, r) {
		r.Release()
	}
}

// Shared registers a shared owner handle. Once the scope is closed the handle is released immediately.
func (s *Scope) Shared(r types.Releasable) {
	if !s.add(&s.shared, r) {
		r.Release()
	}
}

func (s *Scope) add(group *[]types.Releasable, r types.Releasable) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	*group = append(*group, r)
	return true
}

// Close releases every registered owner and returns how many values were destroyed.
// Subsequent calls return 0.
func (s *Scope) Close() int {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0
	}
	s.closed = true
	exclusive, shared := s.exclusive, s.shared
	s.exclusive, s.shared = nil, nil
	s.mu.Unlock()

	destroyed := 0
	for _, group := range [][]types.Releasable{exclusive, shared} {
		for i := len(group) - 1; i >= 0; i-- {
			if group[i].Release() {
				destroyed++
			}
		}
	}
	return destroyed
}
