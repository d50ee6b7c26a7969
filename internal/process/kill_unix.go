//go:build !windows

// Package process terminates the headless browser's process tree.
package process

import "syscall"

// KillTree sends SIGKILL to the process group led by pid, which takes down
// Chrome's renderer and GPU helpers with it. Errors are ignored: the
// launcher's own Kill is the fallback.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
