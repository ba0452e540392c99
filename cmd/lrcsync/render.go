package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"lrcsync/internal/lyrics"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiDim   = "\x1b[2m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatTimestamp renders ms as mm:ss.cc, the LRC tag layout.
func formatTimestamp(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	minutes := ms / 60000
	seconds := (ms / 1000) % 60
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%s%02d:%02d.%02d", sign, minutes, seconds, centis)
}

func renderActiveLine(line lyrics.Line, colorize bool) string {
	stamp := "[" + formatTimestamp(line.TimestampMs) + "]"
	if !colorize {
		return stamp + " " + line.Text
	}
	return ansiDim + stamp + ansiReset + " " + ansiBold + ansiCyan + line.Text + ansiReset
}
