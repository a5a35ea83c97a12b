// FILE: lixenwraith/fixlog/syncutil/counter.go
// Package syncutil provides the counter, lock and thread primitives used by
// the logging core: an atomic counter, an owner-tracking mutex, a condition
// variable with timed waits, and a start/join thread wrapper.
package syncutil

import "sync/atomic"

// Counter is an atomic int64. The zero value is ready to use.
type Counter struct {
	v atomic.Int64
}

// IncrementAndGet adds one and returns the new value
func (c *Counter) IncrementAndGet() int64 {
	return c.v.Add(1)
}

// Get returns the current value
func (c *Counter) Get() int64 {
	return c.v.Load()
}
