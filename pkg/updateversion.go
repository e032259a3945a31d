package updateversion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrHeaderNotFound is returned when the header path is not an existing file.
	ErrHeaderNotFound = errors.New("Header file doesn't exist.")
	// ErrDoxyNotFound is returned when a Doxygen path was given but is not an existing file.
	ErrDoxyNotFound = errors.New("Doxy file doesn't exist.")
)

const rule = "-----------------------------------------------------------"

// Options configures a Run or DryRun.
type Options struct {
	Project    string // Project name as spelled in the header macros.
	Version    string // "Major.Minor.Revision".
	HeaderPath string
	DoxyPath   string // Optional; empty means no Doxygen file.

	AssumeYes bool // Skip the confirmation prompt.

	In     io.Reader // Confirmation input. Defaults to os.Stdin.
	Out    io.Writer // Report and prompt output. Defaults to os.Stdout.
	Logger log.FieldLogger
}

// Result describes what a run found and did.
type Result struct {
	Project     string
	OldVersion  string // Version found in the header before the edit, if complete.
	NewVersion  string
	HeaderRange EditRange
	DoxyRange   EditRange
	Confirmed   bool
	// Paths of files written (or that would be written, for DryRun).
	UpdatedFiles []string
}

type plan struct {
	header []string
	doxy   []string
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Logger == nil {
		l := log.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
}

// prepare parses the version, checks the target files and computes the edits.
// Everything up to, but not including, the confirmation prompt happens here.
func prepare(opts Options, res *Result) (plan, error) {
	var p plan
	res.Project = opts.Project

	v, err := ParseVersion(opts.Version)
	if err != nil {
		return p, err
	}
	res.NewVersion = v.String()

	w := opts.Out
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Project Name: %s\n", opts.Project)
	fmt.Fprintf(w, "Version:      %s\n", opts.Version)
	fmt.Fprintf(w, "Header File:  %s\n", opts.HeaderPath)
	fmt.Fprintf(w, "Doxy File:    %s\n", opts.DoxyPath)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "MAJOR:    %d\n", v.Major)
	fmt.Fprintf(w, "MINOR:    %d\n", v.Minor)
	fmt.Fprintf(w, "REVISION: %d\n", v.Revision)

	if !IsFile(opts.HeaderPath) {
		return p, fmt.Errorf("%w (%s)", ErrHeaderNotFound, opts.HeaderPath)
	}
	if opts.DoxyPath != "" && !IsFile(opts.DoxyPath) {
		return p, fmt.Errorf("%w (%s)", ErrDoxyNotFound, opts.DoxyPath)
	}

	header, err := ReadLines(opts.HeaderPath)
	if err != nil {
		return p, err
	}
	doxy, err := ReadLines(opts.DoxyPath)
	if err != nil {
		return p, err
	}
	logger := opts.Logger.WithField("project", opts.Project)
	logger.Debugf("read %d header lines, %d doxygen lines", len(header), len(doxy))

	if old, ok := CurrentHeaderVersion(opts.Project, header); ok {
		res.OldVersion = old.String()
		if v.Compare(old) < 0 {
			logger.Warnf("new version %s is lower than current version %s", v.Semver(), old.Semver())
		}
	} else {
		logger.Debugf("no complete version found in %s", opts.HeaderPath)
	}

	p.header, res.HeaderRange = ReplaceHeader(opts.Project, header, v)
	p.doxy, res.DoxyRange = ReplaceDoxy(doxy, v)
	logger.Debugf("header range %+v, doxygen range %+v", res.HeaderRange, res.DoxyRange)
	if !res.HeaderRange.Changed {
		logger.Warnf("no COW_%s_VERSION_* macros found in %s", opts.Project, opts.HeaderPath)
	}

	fmt.Fprintln(w, rule)
	Report(w, p.header, res.HeaderRange)
	Report(w, p.doxy, res.DoxyRange)
	return p, nil
}

// Run updates the version macros in the header, and the PROJECT_NUMBER line
// in the Doxygen file when one is given, after the operator confirms the
// reported edits. A declined prompt is not an error: the returned Result has
// Confirmed set to false and nothing is written.
func Run(ctx context.Context, opts Options) (Result, error) {
	opts.defaults()
	var res Result

	p, err := prepare(opts, &res)
	if err != nil {
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if opts.AssumeYes {
		res.Confirmed = true
	} else {
		res.Confirmed, err = Confirm(opts.In, opts.Out)
		if err != nil {
			return res, err
		}
	}
	if !res.Confirmed {
		opts.Logger.Debug("edit declined, nothing written")
		return res, nil
	}

	targets := []struct {
		path  string
		lines []string
	}{
		{opts.HeaderPath, p.header},
		{opts.DoxyPath, p.doxy},
	}
	for _, t := range targets {
		if t.path == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := WriteLines(t.path, t.lines); err != nil {
			return res, err
		}
		opts.Logger.WithField("file", t.path).Debug("written")
		res.UpdatedFiles = append(res.UpdatedFiles, t.path)
	}

	fmt.Fprintln(opts.Out, "Done...")
	return res, nil
}

// DryRun reports the edits Run would make without prompting or writing.
// UpdatedFiles lists the files whose contents would change.
func DryRun(opts Options) (Result, error) {
	opts.defaults()
	var res Result

	if _, err := prepare(opts, &res); err != nil {
		return res, err
	}
	if res.HeaderRange.Changed {
		res.UpdatedFiles = append(res.UpdatedFiles, opts.HeaderPath)
	}
	if res.DoxyRange.Changed {
		res.UpdatedFiles = append(res.UpdatedFiles, opts.DoxyPath)
	}
	if len(res.UpdatedFiles) == 0 {
		fmt.Fprintln(opts.Out, "Dry run complete, no files would change.")
	} else {
		fmt.Fprintf(opts.Out, "Dry run complete, would update: %s\n", strings.Join(res.UpdatedFiles, ", "))
	}
	return res, nil
}
