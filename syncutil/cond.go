// FILE: lixenwraith/fixlog/syncutil/cond.go
package syncutil

import (
	"sync"
	"time"
)

// Cond is a condition variable bound to a Mutex.
// Unlike sync.Cond it supports waiting with a timeout.
type Cond struct {
	m       *Mutex
	mu      sync.Mutex
	waiters []chan struct{}
}

// NewCond binds a condition to m
func NewCond(m *Mutex) *Cond {
	return &Cond{m: m}
}

// Wait releases the mutex, blocks until signalled, then reacquires it.
// The caller must hold the mutex.
func (c *Cond) Wait() {
	ch := c.enqueue()
	<-ch
	c.m.Lock()
}

// WaitTimeout is Wait bounded by d. It returns false on timeout.
func (c *Cond) WaitTimeout(d time.Duration) bool {
	ch := c.enqueue()
	timer := time.NewTimer(d)
	defer timer.Stop()

	signalled := true
	select {
	case <-ch:
	case <-timer.C:
		signalled = !c.dequeue(ch)
	}
	c.m.Lock()
	return signalled
}

// Signal wakes one waiter, if any
func (c *Cond) Signal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.waiters) > 0 {
		close(c.waiters[0])
		c.waiters = c.waiters[1:]
	}
}

// Broadcast wakes all waiters
func (c *Cond) Broadcast() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.waiters {
		close(ch)
	}
	c.waiters = nil
}

// enqueue registers a waiter and releases the bound mutex
func (c *Cond) enqueue() chan struct{} {
	c.m.AssertLocked()
	ch := make(chan struct{})
	c.mu.Lock()
	c.waiters = append(c.waiters, ch)
	c.mu.Unlock()
	c.m.unassign()
	c.m.mu.Unlock()
	return ch
}

// dequeue removes ch, reporting false if a signal already consumed it
func (c *Cond) dequeue(ch chan struct{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, w := range c.waiters {
		if w == ch {
			c.waiters = append(c.waiters[:i], c.waiters[i+1:]...)
			return true
		}
	}
	return false
}
