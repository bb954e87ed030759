//go:build !windows

// Package process terminates browser process trees left behind by the PDF backend.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid,
// which takes Chrome's renderer and GPU helpers down with it.
func KillProcessGroup(pid int) {
	// Best-effort; the launcher has already killed the leader
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
