// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"strings"
)

// EscapeName makes a configuration value safe for direct insertion
// into a URL path by percent-escaping spaces.  Organization, project,
// and team names are the only values the service allows spaces in,
// and spaces are the only characters it allows that a URL does not;
// anything else is passed through verbatim.
func EscapeName(name string) string {
	return strings.ReplaceAll(name, " ", "%20")
}
