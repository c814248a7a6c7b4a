package registry

import (
	"sync"
	"sync/atomic"

	"github.com/Borislavv/ownership/pkg/types"
)

type Shard[V types.Keyed] struct {
	sync.RWMutex
	id    uint64
	items map[uint64]V
	Len   *atomic.Int64
}

func NewShard[V types.Keyed](id uint64, defaultLen int) *Shard[V] {
	return &Shard[V]{
		RWMutex: sync.RWMutex{},
		id:      id,
		items:   make(map[uint64]V, defaultLen),
		Len:     &atomic.Int64{},
	}
}

func (shard *Shard[V]) ID() uint64 {
	return shard.id
}

func (shard *Shard[V]) Set(value V) {
	shard.Lock()
	if _, found := shard.items[value.Key()]; !found {
		shard.Len.Add(1)
	}
	shard.items[value.Key()] = value
	shard.Unlock()
}

func (shard *Shard[V]) Get(key uint64) (value V, found bool) {
	shard.RLock()
	v, ok := shard.items[key]
	shard.RUnlock()
	return v, ok
}

func (shard *Shard[V]) Del(key uint64) (value V, found bool) {
	shard.Lock()
	v, f := shard.items[key]
	if f {
		delete(shard.items, key)
		shard.Len.Add(-1)
	}
	shard.Unlock()
	return v, f
}

func (shard *Shard[V]) Walk(fn func(uint64, V)) {
	shard.RLock()
	defer shard.RUnlock()
	for k, v := range shard.items {
		fn(k, v)
	}
}
