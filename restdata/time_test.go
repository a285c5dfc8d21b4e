// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	when := time.Date(2024, time.November, 12, 9, 5, 3, 456000000, time.UTC)
	assert.Equal(t, "2024-11-12T09:05:03.45Z", FormatTimestamp(when))
}

func TestFormatTimestampConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	when := time.Date(2024, time.November, 12, 10, 5, 3, 456000000, zone)
	assert.Equal(t, "2024-11-12T09:05:03.45Z", FormatTimestamp(when))
}

func TestFormatTimestampWholeSeconds(t *testing.T) {
	// The two fractional digits are always present, even when zero.
	when := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-01-02T03:04:05.00Z", FormatTimestamp(when))
}
