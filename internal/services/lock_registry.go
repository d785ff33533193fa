package services

import (
	"sort"
	"sync"
)

// LockRegistry hands out one mutex per entity id. The assembly and recycle
// services share a single registry so their exclusion scopes overlap: the
// ledger holds the aircraft and component locks for its whole
// check-then-mutate sequence, and a recycle batch holds the locks for its
// exact component set. Two installs racing for the same slot serialize
// here and the loser sees the occupied state; an install and a recycle
// touching the same component cannot interleave.
// Locks are acquired in sorted key order to rule out deadlock between
// overlapping sets.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[string]*sync.Mutex)}
}

func (r *LockRegistry) get(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, exists := r.locks[key]; exists {
		return l
	}
	l := &sync.Mutex{}
	r.locks[key] = l
	return l
}

// Acquire locks every key and returns the matching release func.
func (r *LockRegistry) Acquire(keys ...string) func() {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for i, key := range sorted {
		if i > 0 && sorted[i-1] == key {
			continue // duplicate key, already held
		}
		l := r.get(key)
		l.Lock()
		held = append(held, l)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
