// FILE: lixenwraith/fixlog/syncutil/tid_other.go
//go:build !linux

package syncutil

import "os"

// Tid falls back to the process id where thread ids are not exposed
func Tid() int {
	return os.Getpid()
}
