package updateversion

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// lineSeparator terminates every line written back by WriteLines.
var lineSeparator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// IsFile reports whether path names an existing regular file.
// The empty path is never a file.
func IsFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadLines returns the lines of the file at path. A missing file, or the
// empty path, yields a nil slice and no error.
//
// Lines are split on "\n". A final newline does not produce an extra empty
// line. Outside Windows a trailing "\r" stays part of the line, so CRLF files
// round-trip through WriteLines unchanged.
func ReadLines(path string) ([]string, error) {
	if !IsFile(path) {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return splitLines(string(data)), nil
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	if lineSeparator == "\r\n" {
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// WriteLines overwrites the file at path with lines, each followed by the
// platform line separator. Nothing is written when path is not an existing
// regular file: the tool never creates files.
func WriteLines(path string, lines []string) error {
	if !IsFile(path) {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(lineSeparator)
	}

	if err := os.WriteFile(path, []byte(b.String()), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
