// Package updateversion rewrites the version macros of a C header and the
// PROJECT_NUMBER of a Doxygen configuration for a release.
//
// It provides functionalities for:
//   - Parsing a "Major.Minor.Revision" string into a Version.
//   - Reading a text file into lines and writing them back verbatim.
//   - Rewriting the "#define COW_<PROJECT>_VERSION_{MAJOR,MINOR,REVISION}" lines of a header.
//   - Rewriting the first "PROJECT_NUMBER         =" line of a Doxyfile.
//   - Reporting the edited lines and asking the operator for confirmation.
//
// The replacers are pure functions over []string, so they can be used on
// their own. Run ties the steps together the way the update_version CLI does.
//
// Usage Example:
//
//	import (
//	    "context"
//	    "log"
//
//	    updateversion "github.com/bcomnes/updateversion/pkg"
//	)
//
//	func main() {
//	    res, err := updateversion.Run(context.Background(), updateversion.Options{
//	        Project:    "CORELOG",
//	        Version:    "1.4.0",
//	        HeaderPath: "include/CoreLog/CoreLog_Utils.h",
//	        DoxyPath:   "Doxyfile",
//	    })
//	    if err != nil {
//	        log.Fatalf("update failed: %v", err)
//	    }
//	    if res.Confirmed {
//	        log.Println("Version updated to", res.NewVersion)
//	    }
//	}
package updateversion
