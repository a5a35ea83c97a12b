// FILE: lixenwraith/fixlog/heartbeat.go
package fixlog

import (
	"runtime"
)

// emitHeartbeat writes one INFO record with logger, file and runtime statistics
func (l *Logger) emitHeartbeat() {
	if l.state.LoggerDisabled.Load() || l.state.ShutdownCalled.Load() {
		return
	}

	sequence := l.state.HeartbeatSequence.Add(1)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	r := l.record(LevelInfo, 0, 0)
	r.Str("heartbeat seq=").Uint64(sequence).
		Str(" uptime_s=").Int64(int64(l.Uptime().Seconds())).
		Str(" records=").SI(int64(l.state.TotalRecords.Load()))

	if lf := l.state.CurrentFile.Load(); lf != nil {
		st := lf.Stats()
		r.Str(" file_size=").IEC(st.Written).
			Str(" total_written=").IEC(st.TotalWritten).
			Str(" rolls=").Uint64(st.Rolls).
			Str(" file_errors=").Uint64(st.Errors)
	}

	r.Str(" heap=").IEC(int64(memStats.HeapAlloc)).
		Str(" sys=").IEC(int64(memStats.Sys)).
		Str(" num_gc=").Uint32(memStats.NumGC).
		Str(" goroutines=").Int(runtime.NumGoroutine()).
		Send()
}
