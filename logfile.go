// FILE: lixenwraith/fixlog/logfile.go
package fixlog

import (
	"bufio"
	"os"
	"time"

	"github.com/agilira/go-timecache"

	"github.com/lixenwraith/fixlog/civil"
	"github.com/lixenwraith/fixlog/syncutil"
)

// LogFileConfig describes a rotating file sink
type LogFileConfig struct {
	Directory     string
	Name          string // Base name, no path separators
	Extension     string // Without dot, may be empty
	RollSize      int64  // Bytes; a write that would push the file past it lands in a new file
	ThreadSafe    bool   // Serialize all operations with a lock
	FlushInterval time.Duration
	CheckEveryN   int // Appends between day-boundary and flush checks
	BufferSize    int // Write buffer in front of the file, 0 writes through

	// Clock returns wall time for rotation decisions.
	// Defaults to a millisecond-resolution cached clock.
	Clock func() civil.Instant

	// OnError receives I/O failures from Append, which has no error return
	OnError func(error)
}

// LogFileStats is a snapshot of sink counters
type LogFileStats struct {
	Name         string // Current file path
	Written      int64  // Bytes in the current file
	TotalWritten int64  // Bytes across all files
	Rolls        uint64 // Files created, including the first
	Errors       uint64 // Failed I/O operations
}

// LogFile appends records to a file that is rolled by size and at each UTC
// day boundary, and flushed on a cadence measured in appends.
type LogFile struct {
	cfg   LogFileConfig
	mu    *syncutil.Mutex // nil unless ThreadSafe
	cache *timecache.TimeCache
	host  string
	pid   int

	file          *os.File
	w             *bufio.Writer
	path          string
	written       int64
	count         int
	startOfPeriod int64 // Unix seconds of the UTC day the file belongs to
	lastFlush     civil.Instant

	totalWritten int64
	rolls        uint64
	errors       uint64
	closed       bool

	flusher *periodic
}

// NewLogFile validates cfg, fills defaults and opens the first file
func NewLogFile(cfg LogFileConfig) (*LogFile, error) {
	if cfg.Name == "" {
		return nil, fmtErrorf("log file name cannot be empty")
	}
	if cfg.RollSize <= 0 {
		return nil, fmtErrorf("roll size must be positive: %d", cfg.RollSize)
	}
	if cfg.Directory == "" {
		cfg.Directory = "."
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.CheckEveryN <= 0 {
		cfg.CheckEveryN = defaultCheckEveryN
	}
	if cfg.BufferSize < 0 {
		cfg.BufferSize = 0
	}

	f := &LogFile{
		host: hostname(),
		pid:  os.Getpid(),
	}
	if cfg.Clock == nil {
		f.cache = timecache.NewWithResolution(time.Millisecond)
		cache := f.cache
		cfg.Clock = func() civil.Instant { return civil.FromTime(cache.CachedTime()) }
	}
	if cfg.ThreadSafe {
		f.mu = syncutil.NewRelaxedMutex()
	}
	f.cfg = cfg

	if _, err := f.rollFile(); err != nil {
		f.stopClock()
		return nil, err
	}
	return f, nil
}

func (f *LogFile) lock() {
	if f.mu != nil {
		f.mu.Lock()
	}
}

func (f *LogFile) unlock() {
	if f.mu != nil {
		f.mu.Unlock()
	}
}

// Append writes p, rolling and flushing as required.
// Failures are reported through OnError and never returned.
func (f *LogFile) Append(p []byte) {
	f.lock()
	defer f.unlock()
	if err := f.appendUnlocked(p); err != nil {
		f.report(err)
	}
}

// Write implements io.Writer
func (f *LogFile) Write(p []byte) (int, error) {
	f.lock()
	defer f.unlock()
	if err := f.appendUnlocked(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (f *LogFile) appendUnlocked(p []byte) error {
	if f.closed {
		return fmtErrorf("append to closed log file '%s'", f.path)
	}

	// Size is checked on every append, the clock only every CheckEveryN
	f.count++
	check := f.count >= f.cfg.CheckEveryN
	var now civil.Instant
	if check {
		f.count = 0
		now = f.cfg.Clock()
	}

	roll := f.written > 0 && f.written+int64(len(p)) > f.cfg.RollSize
	if !roll && check {
		roll = civil.StartOfDay(now.Unix()) != f.startOfPeriod
	}
	if roll {
		if _, err := f.rollFile(); err != nil {
			// Keep writing to the old file
			f.report(err)
		}
	}

	if err := f.writeBytes(p); err != nil {
		return err
	}

	if check && civil.Diff(now, f.lastFlush) >= f.cfg.FlushInterval.Seconds() {
		return f.flushUnlocked(now)
	}
	return nil
}

// writeBytes advances the counters only once the bytes are accepted
func (f *LogFile) writeBytes(p []byte) error {
	var err error
	if f.w != nil {
		_, err = f.w.Write(p)
	} else {
		_, err = f.file.Write(p)
	}
	if err != nil {
		f.errors++
		return fmtErrorf("failed to write log file '%s': %w", f.path, err)
	}
	f.written += int64(len(p))
	f.totalWritten += int64(len(p))
	return nil
}

// Flush pushes buffered bytes to the file and syncs it
func (f *LogFile) Flush() error {
	f.lock()
	defer f.unlock()
	if f.closed {
		return nil
	}
	return f.flushUnlocked(f.cfg.Clock())
}

func (f *LogFile) flushUnlocked(now civil.Instant) error {
	if f.w != nil {
		if err := f.w.Flush(); err != nil {
			f.errors++
			return fmtErrorf("failed to flush log file '%s': %w", f.path, err)
		}
	}
	if err := syncFile(f.file); err != nil {
		f.errors++
		return err
	}
	f.lastFlush = now
	return nil
}

// RollFile starts a new file now. It reports false when the new file
// could not be created, in which case the current file stays in use.
func (f *LogFile) RollFile() (bool, error) {
	f.lock()
	defer f.unlock()
	if f.closed {
		return false, fmtErrorf("roll of closed log file '%s'", f.path)
	}
	return f.rollFile()
}

// rollFile opens the next file and retires the current one.
// State changes only after the new file exists.
func (f *LogFile) rollFile() (bool, error) {
	now := f.cfg.Clock()
	name := logFileName(f.cfg.Name, now, f.host, f.pid, f.cfg.Extension)

	file, path, err := createNewLogFile(f.cfg.Directory, name, f.cfg.Extension)
	if err != nil {
		f.errors++
		return false, err
	}

	var retireErr error
	if f.file != nil {
		if f.w != nil {
			if err := f.w.Flush(); err != nil {
				retireErr = fmtErrorf("failed to flush log file '%s' before roll: %w", f.path, err)
			}
		}
		retireErr = combineErrors(retireErr, closeFile(f.file))
		if retireErr != nil {
			f.errors++
		}
	}

	f.file = file
	f.path = path
	if f.cfg.BufferSize > 0 {
		if f.w == nil {
			f.w = bufio.NewWriterSize(file, f.cfg.BufferSize)
		} else {
			f.w.Reset(file)
		}
	}
	f.written = 0
	f.startOfPeriod = civil.StartOfDay(now.Unix())
	f.lastFlush = now
	f.rolls++

	return true, retireErr
}

// StartFlusher flushes every FlushInterval on a background thread,
// independent of the append cadence. Requires ThreadSafe.
func (f *LogFile) StartFlusher() error {
	if f.mu == nil {
		return fmtErrorf("background flusher requires a thread-safe log file")
	}
	f.lock()
	defer f.unlock()
	if f.closed {
		return fmtErrorf("flusher on closed log file '%s'", f.path)
	}
	if f.flusher != nil {
		return nil
	}
	p, err := startPeriodic(f.cfg.Name+"-flusher", f.cfg.FlushInterval, func() {
		if err := f.Flush(); err != nil {
			f.report(err)
		}
	})
	if err != nil {
		return err
	}
	f.flusher = p
	return nil
}

// StopFlusher stops the background flusher, if running
func (f *LogFile) StopFlusher() {
	f.lock()
	p := f.flusher
	f.flusher = nil
	f.unlock()
	// The flusher takes the lock, so it is joined outside it
	p.stop()
}

// Close stops the flusher, flushes and closes the file.
// Later appends report an error.
func (f *LogFile) Close() error {
	f.StopFlusher()

	f.lock()
	defer f.unlock()
	if f.closed {
		return nil
	}
	f.closed = true

	var err error
	if f.w != nil {
		if ferr := f.w.Flush(); ferr != nil {
			err = fmtErrorf("failed to flush log file '%s': %w", f.path, ferr)
		}
	}
	err = combineErrors(err, closeFile(f.file))
	f.stopClock()
	return err
}

func (f *LogFile) stopClock() {
	if f.cache != nil {
		f.cache.Stop()
	}
}

// Name returns the path of the current file
func (f *LogFile) Name() string {
	f.lock()
	defer f.unlock()
	return f.path
}

// Stats returns a snapshot of the counters
func (f *LogFile) Stats() LogFileStats {
	f.lock()
	defer f.unlock()
	return LogFileStats{
		Name:         f.path,
		Written:      f.written,
		TotalWritten: f.totalWritten,
		Rolls:        f.rolls,
		Errors:       f.errors,
	}
}

func (f *LogFile) report(err error) {
	if f.cfg.OnError != nil {
		f.cfg.OnError(err)
	}
}
