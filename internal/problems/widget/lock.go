package widget

import "sync"

// instanceLocks serializes state changes per instance key within the process.
var instanceLocks = newKeyLocks()

type keyLock struct {
	mu   sync.Mutex
	refs int
}

type keyLocks struct {
	mu    sync.Mutex
	locks map[Key]*keyLock
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: map[Key]*keyLock{}}
}

// lock blocks until key is free and returns its release func.
func (l *keyLocks) lock(key Key) func() {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &keyLock{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// held reports how many keys have a holder or waiter.
func (l *keyLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
