//go:build linux

package terminal

import "golang.org/x/sys/unix"

// TCSETSF drains output and flushes unread input on the way into and out of
// raw mode, matching tcsetattr(TCSAFLUSH).
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
