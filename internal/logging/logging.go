// Package logging sets up the process-wide slog logger. Log lines go to a
// file so stdout stays clean for the analysis output.
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// LogFilePath is where log lines are appended, relative to the working directory.
const LogFilePath = "loglens.log"

// Setup installs a file-backed text handler as the slog default and returns
// a close func for the underlying file.
func Setup(debug bool) (func(), error) {
	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))

	return func() { _ = f.Close() }, nil
}
