package updateversion

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "a.h")
	if err := os.WriteFile(file, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{file, true},
		{tmpDir, false},
		{filepath.Join(tmpDir, "missing.h"), false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsFile(tc.path); got != tc.expected {
			t.Errorf("IsFile(%q) = %v, expected %v", tc.path, got, tc.expected)
		}
	}
}

func TestReadLines(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines kept", "a\n\n\nb\n", []string{"a", "", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"empty file", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "file.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			got, err := ReadLines(path)
			if err != nil {
				t.Fatalf("ReadLines failed: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ReadLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLinesMissing(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope")} {
		got, err := ReadLines(path)
		if err != nil {
			t.Errorf("ReadLines(%q) returned error: %v", path, err)
		}
		if got != nil {
			t.Errorf("ReadLines(%q) = %v, expected nil", path, got)
		}
	}
}

func TestWriteLines(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("expects \\n line endings")
	}
	path := filepath.Join(t.TempDir(), "version.h")
	if err := os.WriteFile(path, []byte("old\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := WriteLines(path, []string{"one", "", "three"}); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\n\nthree\n" {
		t.Errorf("file content = %q, expected %q", data, "one\n\nthree\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, expected 0600", info.Mode().Perm())
	}
}

func TestWriteLinesNeverCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Doxyfile")
	if err := WriteLines(path, []string{"PROJECT_NUMBER         = v1.0.0"}); err != nil {
		t.Fatalf("WriteLines returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s not to be created, stat err = %v", path, err)
	}
	if err := WriteLines("", []string{"x"}); err != nil {
		t.Errorf("WriteLines with empty path returned error: %v", err)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("expects \\n line endings")
	}
	content := "#pragma once\r\n#define A 1\r\n\n// end\n"
	path := filepath.Join(t.TempDir(), "rt.h")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteLines(path, lines); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Errorf("round trip changed content: got %q, expected %q", data, content)
	}
}
