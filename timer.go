// FILE: lixenwraith/fixlog/timer.go
package fixlog

import (
	"time"

	"github.com/lixenwraith/fixlog/syncutil"
)

// periodic runs fn at a fixed interval on its own thread until stopped
type periodic struct {
	interval time.Duration
	fn       func()

	mu      syncutil.Mutex
	cond    *syncutil.Cond
	stopped bool
	thread  *syncutil.Thread
}

// startPeriodic launches the loop. Intervals below minWaitTime are raised to it.
func startPeriodic(name string, interval time.Duration, fn func()) (*periodic, error) {
	if interval < minWaitTime {
		interval = minWaitTime
	}
	p := &periodic{interval: interval, fn: fn}
	p.cond = syncutil.NewCond(&p.mu)
	p.thread = syncutil.NewThread(p.loop, name)
	if err := p.thread.Start(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *periodic) loop() {
	p.mu.Lock()
	for !p.stopped {
		if p.cond.WaitTimeout(p.interval) {
			continue
		}
		p.mu.Unlock()
		p.fn()
		p.mu.Lock()
	}
	p.mu.Unlock()
}

// stop wakes the loop and waits for it to exit. Safe on nil and repeated calls.
func (p *periodic) stop() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.cond.Broadcast()
	p.mu.Unlock()
	_ = p.thread.Join()
}
