// SPDX-License-Identifier: Unlicense OR MIT

//go:build !unix
// +build !unix

package main

import "errors"

func ttyWidth() (int, error) {
	return 0, errors.New("terminal size not supported on this platform")
}
