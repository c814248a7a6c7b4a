package registry

import (
	"sort"
	"testing"

	"github.com/zeebo/xxh3"
)

type item struct {
	name string
}

func (i item) Key() uint64 { return xxh3.HashString(i.name) }

func TestNewRoundsShardCount(t *testing.T) {
	for in, want := range map[int]int{0: DefaultShardCount, 1: 1, 3: 4, 16: 16, 17: 32} {
		if got := New[item](in, 1).ShardCount(); got != want {
			t.Errorf("New(%d).ShardCount() = %d, want %d", in, got, want)
		}
	}
}

func TestRegistrySetGetDel(t *testing.T) {
	r := New[item](4, 1)
	a, b := item{name: "a"}, item{name: "b"}

	r.Set(a)
	r.Set(b)
	r.Set(a) // overwrite must not change the length
	if r.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", r.Len())
	}

	if got, found := r.Get(a.Key()); !found || got != a {
		t.Fatalf("expected to find %v, got %v (found=%v)", a, got, found)
	}

	if _, found := r.Del(a.Key()); !found {
		t.Fatal("expected to delete a")
	}
	if _, found := r.Del(a.Key()); found {
		t.Fatal("second delete must not find a")
	}
	if _, found := r.Get(a.Key()); found {
		t.Fatal("a must be gone")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", r.Len())
	}
}

func TestRegistryWalk(t *testing.T) {
	r := New[item](8, 1)
	for _, name := range []string{"x", "y", "z"} {
		r.Set(item{name: name})
	}

	var names []string
	r.Walk(func(key uint64, v item) {
		if key != v.Key() {
			t.Errorf("walk key mismatch for %s", v.name)
		}
		names = append(names, v.name)
	})
	sort.Strings(names)
	if len(names) != 3 || names[0] != "x" || names[1] != "y" || names[2] != "z" {
		t.Fatalf("unexpected walk result: %v", names)
	}
}
