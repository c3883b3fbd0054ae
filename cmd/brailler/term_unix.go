//go:build !windows
// +build !windows

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

func getTerminalSize() (width, height int, err error) {
	// Stdout and stdin are often redirected, stderr rarely is.
	ws, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1, err
	}
	return int(ws.Col), int(ws.Row), nil
}
