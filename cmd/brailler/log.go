package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
	levelCount
)

var levelStrings = [2][levelCount]string{
	// uncolored
	{
		levelDebug: "  DEBUG",
		levelInfo:  "   INFO",
		levelWarn:  "WARNING",
		levelError: "  ERROR",
	},
	// colored
	{
		levelDebug: "\033[37m  DEBUG\033[0m",
		levelInfo:  "\033[34m   INFO\033[0m",
		levelWarn:  "\033[33mWARNING\033[0m",
		levelError: "\033[31m  ERROR\033[0m",
	},
}

// logger writes leveled lines to stderr. Level tags are colored only when
// the output is a terminal.
type logger struct {
	mu    sync.Mutex
	w     io.Writer
	min   level
	color int
}

func newLogger(f *os.File, verbose bool) *logger {
	l := &logger{w: f, min: levelInfo}
	if verbose {
		l.min = levelDebug
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		l.w = colorable.NewColorable(f)
		l.color = 1
	}
	return l
}

func (l *logger) logf(lvl level, format string, v ...interface{}) {
	if lvl < l.min {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", levelStrings[l.color][lvl], fmt.Sprintf(format, v...))
}

func (l *logger) Debugf(format string, v ...interface{}) { l.logf(levelDebug, format, v...) }
func (l *logger) Infof(format string, v ...interface{})  { l.logf(levelInfo, format, v...) }
func (l *logger) Warnf(format string, v ...interface{})  { l.logf(levelWarn, format, v...) }
func (l *logger) Errorf(format string, v ...interface{}) { l.logf(levelError, format, v...) }
