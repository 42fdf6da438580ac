package concurrency

import (
	"strings"
	"sync"
)

// LockManager tracks named in-flight operations. A key is held by at most one
// caller at a time and is forgotten once released.
type LockManager struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{held: make(map[string]struct{})}
}

// TryAcquire claims key without blocking. ok is false when another caller
// holds it. release is idempotent.
func (lm *LockManager) TryAcquire(key string) (release func(), ok bool) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if _, busy := lm.held[key]; busy {
		return func() {}, false
	}
	lm.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			lm.mu.Lock()
			delete(lm.held, key)
			lm.mu.Unlock()
		})
	}, true
}

// Held returns the number of keys currently claimed
func (lm *LockManager) Held() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.held)
}

// Key joins parts into a lock key
func Key(parts ...string) string {
	return strings.Join(parts, "\x1f")
}
