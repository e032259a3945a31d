package updateversion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExampleReplaceHeader shows the three macro lines being rewritten while the
// rest of the header is left alone.
func ExampleReplaceHeader() {
	header := []string{
		"#pragma once",
		`#define COW_COREFS_VERSION_MAJOR    "0"`,
		`#define COW_COREFS_VERSION_MINOR    "3"`,
		`#define COW_COREFS_VERSION_REVISION "8"`,
	}

	v, err := ParseVersion("1.0.2")
	if err != nil {
		fmt.Println("bad version:", err)
		return
	}

	updated, r := ReplaceHeader("COREFS", header, v)
	for _, line := range updated {
		fmt.Println(line)
	}
	fmt.Printf("changed lines %d-%d\n", r.First, r.Last)

	// Output:
	// #pragma once
	// #define COW_COREFS_VERSION_MAJOR    "1"
	// #define COW_COREFS_VERSION_MINOR    "0"
	// #define COW_COREFS_VERSION_REVISION "2"
	// changed lines 1-3
}

// ExampleRun updates a header in a temporary directory without prompting.
func ExampleRun() {
	tmpDir, err := os.MkdirTemp("", "updateversion_example")
	if err != nil {
		fmt.Println("failed to create temporary directory:", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	headerPath := filepath.Join(tmpDir, "CoreLog.h")
	initialContent := "#define COW_CORELOG_VERSION_MAJOR    \"0\"\n" +
		"#define COW_CORELOG_VERSION_MINOR    \"0\"\n" +
		"#define COW_CORELOG_VERSION_REVISION \"1\"\n"
	if err := os.WriteFile(headerPath, []byte(initialContent), 0644); err != nil {
		fmt.Println("failed to write header:", err)
		return
	}

	var report strings.Builder
	res, err := Run(context.Background(), Options{
		Project:    "CORELOG",
		Version:    "0.1.0",
		HeaderPath: headerPath,
		AssumeYes:  true,
		Out:        &report,
	})
	if err != nil {
		fmt.Println("error updating version:", err)
		return
	}
	fmt.Printf("Version updated from %s to %s\n", res.OldVersion, res.NewVersion)

	newContent, err := os.ReadFile(headerPath)
	if err != nil {
		fmt.Println("failed to read header:", err)
		return
	}
	fmt.Printf("%s", strings.ReplaceAll(string(newContent), "\r\n", "\n"))

	// Output:
	// Version updated from 0.0.1 to 0.1.0
	// #define COW_CORELOG_VERSION_MAJOR    "0"
	// #define COW_CORELOG_VERSION_MINOR    "1"
	// #define COW_CORELOG_VERSION_REVISION "0"
}
