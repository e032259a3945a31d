// Package main implements a CLI tool that writes a release version into the
// version macros of a C header and, optionally, into a Doxygen configuration.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	updateversion "github.com/bcomnes/updateversion/pkg"
)

const usageLine = "update_version <project-name> <version Major.Minor.Revision> <Header-Path> [Doxy-Path]"

func usage(w io.Writer, fs *pflag.FlagSet) {
	msg := `Usage:
  ` + usageLine + `

Rewrites the COW_<project-name>_VERSION_{MAJOR,MINOR,REVISION} macros of the header
and, when a Doxygen file is given, its PROJECT_NUMBER line. The changed lines are
printed and nothing is written until the change is confirmed with "y".

Examples:
  update_version COREFS 1.2.3 include/CoreFS/CoreFS_Utils.h
  update_version COREFS 1.2.3 include/CoreFS/CoreFS_Utils.h Doxyfile
  update_version --dry-run COREFS 2.0.0 include/CoreFS/CoreFS_Utils.h

Options:
`
	fmt.Fprint(w, msg)
	fmt.Fprint(w, fs.FlagUsages())
}

type cliOptions struct {
	dryRun      bool
	yes         bool
	verbose     bool
	showVersion bool
	help        bool
}

func newFlagSet(opts *cliOptions) *pflag.FlagSet {
	fs := pflag.NewFlagSet("update_version", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the changes without prompting or writing any file")
	fs.BoolVarP(&opts.yes, "yes", "y", false, "Write the changes without asking for confirmation")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	fs.BoolVar(&opts.showVersion, "version", false, "Show CLI version and exit")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help message and exit")
	return fs
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts cliOptions
	fs := newFlagSet(&opts)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stdout, "Error:", err)
		usage(stdout, fs)
		return 1
	}
	if opts.help {
		usage(stdout, fs)
		return 0
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, "update_version CLI version", Version)
		return 0
	}

	pos := fs.Args()
	if len(pos) < 3 || len(pos) > 4 {
		fmt.Fprintln(stdout, usageLine)
		return 1
	}

	uopts := updateversion.Options{
		Project:    pos[0],
		Version:    pos[1],
		HeaderPath: pos[2],
		AssumeYes:  opts.yes,
		In:         stdin,
		Out:        stdout,
		Logger:     newLogger(stderr, opts.verbose),
	}
	if len(pos) == 4 {
		uopts.DoxyPath = pos[3]
	}

	var (
		res updateversion.Result
		err error
	)
	if opts.dryRun {
		res, err = updateversion.DryRun(uopts)
	} else {
		res, err = updateversion.Run(context.Background(), uopts)
	}
	if err != nil {
		fmt.Fprintln(stdout, "Error:", err)
		return 1
	}

	uopts.Logger.WithFields(log.Fields{
		"old":       res.OldVersion,
		"new":       res.NewVersion,
		"confirmed": res.Confirmed,
		"files":     res.UpdatedFiles,
	}).Debug("finished")
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
