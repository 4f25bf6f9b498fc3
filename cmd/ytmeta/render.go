package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

const failureMarker = "✗"

// formatFailure renders the single top-level error line.
func formatFailure(err error, colorize bool) string {
	message := "interrupted"
	if !errors.Is(err, context.Canceled) {
		message = err.Error()
	}
	line := failureMarker + " Error: " + message
	if colorize {
		return ansiRed + line + ansiReset
	}
	return line
}

func paint(value, color string, colorize bool) string {
	if !colorize || color == "" {
		return value
	}
	return color + value + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
