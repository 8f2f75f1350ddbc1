package app

import "sync"

// CollectionLocks serializes read-modify-write sequences per collection so
// two requests in this process cannot interleave and lose an update. It does
// not coordinate separate processes sharing a data directory.
type CollectionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCollectionLocks returns an empty lock set.
func NewCollectionLocks() *CollectionLocks {
	return &CollectionLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the collection's mutex and returns its release func.
func (l *CollectionLocks) Lock(collection string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[collection]
	if !ok {
		m = &sync.Mutex{}
		l.locks[collection] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
