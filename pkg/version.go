package updateversion

import (
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
)

// ErrVersionFormat is returned when a version string does not start with
// three integers separated by dots.
var ErrVersionFormat = errors.New("Version isn't in format Major.Minor.Revision")

// Version holds the three numeric components written into the header macros.
type Version struct {
	Major    int
	Minor    int
	Revision int
}

// ParseVersion splits a "Major.Minor.Revision" string into its components.
//
// Each integer is scanned like C's %i: leading blanks are skipped and base
// prefixes (0x, 0o, 0b, or a bare leading 0 for octal) are honoured. Anything
// after the third integer is ignored, so "1.2.3-rc1" parses as 1.2.3.
func ParseVersion(s string) (Version, error) {
	var v Version
	n, err := fmt.Sscanf(s, "%v.%v.%v", &v.Major, &v.Minor, &v.Revision)
	if n != 3 {
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrVersionFormat, s, err)
		}
		return Version{}, fmt.Errorf("%w: %q", ErrVersionFormat, s)
	}
	if v.Major < 0 || v.Minor < 0 || v.Revision < 0 {
		return Version{}, fmt.Errorf("%w: %q has a negative component", ErrVersionFormat, s)
	}
	return v, nil
}

// String returns the version as "Major.Minor.Revision".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Semver returns the canonical semver form, e.g. "v1.2.3".
func (v Version) Semver() string {
	return semver.Canonical("v" + v.String())
}

// Compare orders v against other using semver precedence.
// The result is -1, 0 or +1.
func (v Version) Compare(other Version) int {
	return semver.Compare(v.Semver(), other.Semver())
}
