// FILE: lixenwraith/fixlog/constant.go
package fixlog

import (
	"time"
)

// Severity levels, ordered
const (
	LevelTrace Severity = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	numLevels
)

// Fixed-width labels, each followed by padding to six columns
var levelLabels = [numLevels]string{
	"TRACE ",
	"DEBUG ",
	"INFO  ",
	"WARN  ",
	"ERROR ",
	"FATAL ",
}

var levelNames = [numLevels]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// Environment variables selecting the initial threshold
const (
	EnvTrace = "FIXLOG_TRACE"
	EnvDebug = "FIXLOG_DEBUG"
)

// Record layout
const (
	// Room held back while the body is written so the trailer always fits
	trailerReserve = 128
	// Width of the thread id field
	tidWidth = 5
	// Exit code used after a FATAL record
	fatalExitCode = 2
)

// Storage
const (
	// Size multiplier for KB
	sizeMultiplier = 1000
	// Defaults for the file sink
	defaultFlushInterval = 3 * time.Second
	defaultCheckEveryN   = 1024
	defaultFileBuffer    = 64 * 1024
)

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
)
