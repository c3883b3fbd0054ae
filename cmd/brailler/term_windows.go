package main

import "errors"

func getTerminalSize() (width, height int, err error) {
	return -1, -1, errors.New("terminal size is not supported on windows")
}
