// FILE: lixenwraith/fixlog/syncutil/mutex.go
package syncutil

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Mutex is a non-reentrant lock that records which goroutine holds it.
// Locking it twice from the same goroutine, or unlocking it from a goroutine
// that does not hold it, panics.
type Mutex struct {
	mu      sync.Mutex
	holder  atomic.Int64 // goroutine id, 0 when unlocked
	relaxed bool
}

// NewRelaxedMutex returns a Mutex whose Unlock only checks that the mutex is
// held, not by whom. Lock still panics on reentry. A lock cycle costs one
// goroutine id lookup instead of two.
func NewRelaxedMutex() *Mutex {
	return &Mutex{relaxed: true}
}

// Lock acquires the mutex
func (m *Mutex) Lock() {
	id := goid()
	if m.holder.Load() == id {
		panic(fmt.Sprintf("syncutil: goroutine %d locked a mutex it already holds", id))
	}
	m.mu.Lock()
	m.holder.Store(id)
}

// TryLock acquires the mutex if it is free
func (m *Mutex) TryLock() bool {
	if !m.mu.TryLock() {
		return false
	}
	m.holder.Store(goid())
	return true
}

// Unlock releases the mutex
func (m *Mutex) Unlock() {
	if m.relaxed {
		if m.holder.Swap(0) == 0 {
			panic("syncutil: unlock of a mutex that is not held")
		}
		m.mu.Unlock()
		return
	}
	id := goid()
	if h := m.holder.Load(); h != id {
		panic(fmt.Sprintf("syncutil: goroutine %d unlocked a mutex held by %d", id, h))
	}
	m.holder.Store(0)
	m.mu.Unlock()
}

// IsLockedByCaller reports whether the calling goroutine holds the mutex
func (m *Mutex) IsLockedByCaller() bool {
	return m.holder.Load() == goid()
}

// AssertLocked panics unless the calling goroutine holds the mutex
func (m *Mutex) AssertLocked() {
	if !m.IsLockedByCaller() {
		panic("syncutil: mutex not held by caller")
	}
}

// unassign clears the holder ahead of a condition wait releasing the lock
func (m *Mutex) unassign() { m.holder.Store(0) }
