// Package keylock provides per-key mutual exclusion, used to serialize
// check-then-write sequences that span more than one record for the same
// resource (e.g. a room's availability flag and its bookings).
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *KeyedMutex {
	return &KeyedMutex{
		entries: map[string]*entry{},
	}
}

// Lock acquires the mutex for key and returns the corresponding unlock
// function. The unlock function must be called on every exit path.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}

	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()

		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}

		k.mu.Unlock()
	}
}
