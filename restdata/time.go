// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"time"
)

// timestampLayout renders two fractional digits, truncated.  The Z is
// appended literally: the service wants exactly "Z", never "+00:00".
const timestampLayout = "2006-01-02T15:04:05.00"

// FormatTimestamp renders a time the way the service expects every
// date field: UTC, ISO-8601, two fractional digits, trailing Z.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout) + "Z"
}
