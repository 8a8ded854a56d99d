// SPDX-License-Identifier: Unlicense OR MIT

//go:build unix
// +build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// ttyWidth returns the number of columns of the terminal on standard
// output.
func ttyWidth() (int, error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	return int(ws.Col), nil
}
