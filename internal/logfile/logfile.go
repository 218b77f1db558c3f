// Package logfile reads the text files whose tails get sent for analysis.
package logfile

import (
	"fmt"
	"os"
	"strings"
)

// Tail reads path as UTF-8 text and returns its last n lines. If the file
// holds fewer than n lines, or n <= 0, every line is returned. A trailing
// newline does not count as an extra empty line.
func Tail(path string, n int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	lines := splitLines(string(data))
	if n <= 0 || len(lines) <= n {
		return lines, nil
	}
	return lines[len(lines)-n:], nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
