package brailler

import (
	"fmt"
	"io"
)

// Terminal repositions output so frames can be redrawn in place.
type Terminal interface {
	ResetCursor(rows int) error
	ShowCursor(show bool) error
}

type Xterm struct {
	Writer io.Writer
}

// Move the cursor to the beginning of the line and up rows
func (term *Xterm) ResetCursor(rows int) error {
	if rows <= 0 {
		_, err := io.WriteString(term.Writer, "\033[999D")
		return err
	}
	_, err := fmt.Fprintf(term.Writer, "\033[999D\033[%dA", rows)
	return err
}

func (term *Xterm) ShowCursor(show bool) error {
	var err error
	if show {
		_, err = io.WriteString(term.Writer, "\033[?12l\033[?25h")
	} else {
		_, err = io.WriteString(term.Writer, "\033[?25l")
	}
	return err
}
