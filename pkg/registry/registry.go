// Package registry keeps track of live values in a sharded map keyed by their xxh3 keys.
package registry

import (
	"math/bits"

	"github.com/Borislavv/ownership/pkg/types"
)

const DefaultShardCount = 16

type Registry[V types.Keyed] struct {
	shards []*Shard[V]
	mask   uint64
}

// New builds a registry with shardCount shards rounded up to a power of two.
func New[V types.Keyed](shardCount int, defaultLen int) *Registry[V] {
	if shardCount < 1 {
		shardCount = DefaultShardCount
	}
	n := uint64(1) << bits.Len64(uint64(shardCount-1))

	r := &Registry[V]{
		shards: make([]*Shard[V], n),
		mask:   n - 1,
	}
	for id := uint64(0); id < n; id++ {
		r.shards[id] = NewShard[V](id, defaultLen)
	}
	return r
}

func (r *Registry[V]) Shard(key uint64) *Shard[V] {
	return r.shards[key&r.mask]
}

func (r *Registry[V]) ShardCount() int {
	return len(r.shards)
}

func (r *Registry[V]) Set(value V) {
	r.Shard(value.Key()).Set(value)
}

func (r *Registry[V]) Get(key uint64) (value V, found bool) {
	return r.Shard(key).Get(key)
}

func (r *Registry[V]) Del(key uint64) (value V, found bool) {
	return r.Shard(key).Del(key)
}

// Walk visits every value shard by shard. fn must not modify the registry.
func (r *Registry[V]) Walk(fn func(uint64, V)) {
	for _, shard := range r.shards {
		shard.Walk(fn)
	}
}

func (r *Registry[V]) Len() int64 {
	var length int64
	for _, shard := range r.shards {
		length += shard.Len.Load()
	}
	return length
}
