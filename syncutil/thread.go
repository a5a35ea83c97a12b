// FILE: lixenwraith/fixlog/syncutil/thread.go
package syncutil

import (
	"errors"
	"runtime"
	"strconv"
)

var (
	ErrThreadStarted = errors.New("syncutil: thread already started")
	ErrThreadJoin    = errors.New("syncutil: thread not started or already joined")
)

var numCreated Counter

// NumCreated reports how many threads have been constructed
func NumCreated() int64 { return numCreated.Get() }

// Thread runs a function on a goroutine pinned to its own OS thread and
// lets another goroutine wait for it to finish.
type Thread struct {
	fn   func()
	name string

	mu      Mutex
	cond    *Cond
	started bool
	running bool
	done    bool
	joined  bool
	tid     int
}

// NewThread wraps fn. An empty name becomes "Thread<N>".
func NewThread(fn func(), name string) *Thread {
	n := numCreated.IncrementAndGet()
	if name == "" {
		name = "Thread" + strconv.FormatInt(n, 10)
	}
	t := &Thread{fn: fn, name: name}
	t.cond = NewCond(&t.mu)
	return t
}

// Start launches the thread and returns once it is running
func (t *Thread) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return ErrThreadStarted
	}
	t.started = true

	go t.run()

	for !t.running {
		t.cond.Wait()
	}
	return nil
}

func (t *Thread) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	t.mu.Lock()
	t.tid = Tid()
	t.running = true
	t.cond.Broadcast()
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.done = true
		t.cond.Broadcast()
		t.mu.Unlock()
	}()
	t.fn()
}

// Join blocks until the thread function returns. A thread joins once.
func (t *Thread) Join() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started || t.joined {
		return ErrThreadJoin
	}
	t.joined = true
	for !t.done {
		t.cond.Wait()
	}
	return nil
}

// Name returns the thread name
func (t *Thread) Name() string { return t.name }

// Started reports whether Start has been called
func (t *Thread) Started() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started
}

// Joined reports whether Join has been called
func (t *Thread) Joined() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.joined
}

// Tid returns the OS thread id, valid after Start returns
func (t *Thread) Tid() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tid
}
