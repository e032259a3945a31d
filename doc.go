// Package main implements the update_version CLI tool.
//
// update_version writes a release version into a C header that declares it with
// three macros:
//
//	#define COW_<PROJECT>_VERSION_MAJOR    "1"
//	#define COW_<PROJECT>_VERSION_MINOR    "2"
//	#define COW_<PROJECT>_VERSION_REVISION "3"
//
// and, when a Doxygen configuration is given, into its PROJECT_NUMBER line
// ("PROJECT_NUMBER         = v1.2.3"). The project name must be spelled with
// the same case as in the macros. Every other line is written back untouched.
//
// Before anything is written the changed lines are printed and the operator is
// asked "Is this correct? [y/N]". Only "y" or "Y" proceeds; any other answer
// exits with status 0 and leaves both files as they were. Files that do not
// exist are never created.
//
// Command Usage:
//
//	update_version [flags] <project-name> <version Major.Minor.Revision> <Header-Path> [Doxy-Path]
//
// Flags:
//
//	-n, --dry-run: Print the changes without prompting or writing any file.
//	-y, --yes:     Write the changes without asking for confirmation.
//	-v, --verbose: Enable debug logging on stderr.
//	--version:     Displays the version of the update_version CLI tool and exits.
//	-h, --help:    Displays the usage text and exits.
//
// Exit status is 1 when arguments are missing, the version is not
// Major.Minor.Revision, the header does not exist, or a Doxygen path was given
// but does not exist. It is 0 otherwise, including when the prompt is declined.
//
// Examples:
//
//	# Update the header only
//	update_version COREFS 1.2.3 include/CoreFS/CoreFS_Utils.h
//
//	# Update the header and the Doxyfile
//	update_version COREFS 1.2.3 include/CoreFS/CoreFS_Utils.h Doxyfile
//
//	# Non-interactive use from a release script
//	update_version --yes COREFS 1.2.3 include/CoreFS/CoreFS_Utils.h Doxyfile
//
// For the library API see the "pkg" package.
package main
