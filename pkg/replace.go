package updateversion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DoxyMarker identifies the Doxygen line holding the project version.
// The run of spaces is significant.
const DoxyMarker = "PROJECT_NUMBER         ="

// EditRange is the inclusive span of 0-based line indices touched by a
// replacer. It is a reporting hint only; Changed is false when no line
// matched, in which case First and Last are zero.
type EditRange struct {
	First   int
	Last    int
	Changed bool
}

// extend grows the range to cover line index i.
func (r *EditRange) extend(i int) {
	if !r.Changed {
		r.First, r.Last, r.Changed = i, i, true
		return
	}
	if i < r.First {
		r.First = i
	}
	if i > r.Last {
		r.Last = i
	}
}

// Marker is a header macro prefix together with the layout used to rewrite
// the line that carries it.
type Marker struct {
	Name   string // MAJOR, MINOR or REVISION.
	Text   string // e.g. "#define COW_FOO_VERSION_MAJOR".
	Layout string // fmt layout taking Text and the number.
}

// HeaderMarkers returns the MAJOR, MINOR and REVISION markers for project,
// in match order. The project name is used exactly as given.
func HeaderMarkers(project string) []Marker {
	return []Marker{
		{Name: "MAJOR", Text: fmt.Sprintf("#define COW_%s_VERSION_MAJOR", project), Layout: "%s    \"%d\""},
		{Name: "MINOR", Text: fmt.Sprintf("#define COW_%s_VERSION_MINOR", project), Layout: "%s    \"%d\""},
		{Name: "REVISION", Text: fmt.Sprintf("#define COW_%s_VERSION_REVISION", project), Layout: "%s \"%d\""},
	}
}

func (m Marker) value(v Version) int {
	switch m.Name {
	case "MAJOR":
		return v.Major
	case "MINOR":
		return v.Minor
	default:
		return v.Revision
	}
}

// ReplaceHeader rewrites every line containing one of the project's version
// markers with the marker followed by the quoted component. A line is
// rewritten by the first marker it contains. The input slice is not modified.
func ReplaceHeader(project string, lines []string, v Version) ([]string, EditRange) {
	markers := HeaderMarkers(project)
	out := make([]string, len(lines))
	var r EditRange
	for i, line := range lines {
		out[i] = line
		for _, m := range markers {
			if strings.Contains(line, m.Text) {
				out[i] = fmt.Sprintf(m.Layout, m.Text, m.value(v))
				r.extend(i)
				break
			}
		}
	}
	return out, r
}

// ReplaceDoxy rewrites the first line containing DoxyMarker as
// "PROJECT_NUMBER         = vM.N.R". Later occurrences are left alone.
// The input slice is not modified.
func ReplaceDoxy(lines []string, v Version) ([]string, EditRange) {
	var r EditRange
	if len(lines) == 0 {
		return lines, r
	}
	out := make([]string, len(lines))
	copy(out, lines)
	for i, line := range out {
		if strings.Contains(line, DoxyMarker) {
			out[i] = fmt.Sprintf("%s v%d.%d.%d", DoxyMarker, v.Major, v.Minor, v.Revision)
			r.extend(i)
			break
		}
	}
	return out, r
}

var quotedNumber = regexp.MustCompile(`^\s*"?\s*(\d+)\s*"?`)

// CurrentHeaderVersion reads the version currently declared by the project's
// markers. ok is false unless all three markers carry a number.
func CurrentHeaderVersion(project string, lines []string) (v Version, ok bool) {
	found := make(map[string]int, 3)
	for _, line := range lines {
		for _, m := range HeaderMarkers(project) {
			idx := strings.Index(line, m.Text)
			if idx < 0 {
				continue
			}
			if _, seen := found[m.Name]; !seen {
				if sub := quotedNumber.FindStringSubmatch(line[idx+len(m.Text):]); sub != nil {
					if n, err := strconv.Atoi(sub[1]); err == nil {
						found[m.Name] = n
					}
				}
			}
			break
		}
	}
	if len(found) != 3 {
		return Version{}, false
	}
	return Version{Major: found["MAJOR"], Minor: found["MINOR"], Revision: found["REVISION"]}, true
}
