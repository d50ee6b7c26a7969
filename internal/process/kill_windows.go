//go:build windows

// Package process terminates the headless browser's process tree.
package process

import (
	"os/exec"
	"strconv"
)

// KillTree force-kills pid and its children with taskkill (/F /T).
// Errors are ignored: the launcher's own Kill is the fallback.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
