// FILE: lixenwraith/fixlog/syncutil/tid_linux.go
//go:build linux

package syncutil

import "golang.org/x/sys/unix"

// Tid returns the kernel id of the OS thread running the caller
func Tid() int {
	return unix.Gettid()
}
