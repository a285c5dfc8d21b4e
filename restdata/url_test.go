// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeName(t *testing.T) {
	assert.Equal(t, "My%20Team", EscapeName("My Team"))
	assert.Equal(t, "NoSpaces", EscapeName("NoSpaces"))
	assert.Equal(t, "a%20b%20c", EscapeName("a b c"))
	assert.Equal(t, "", EscapeName(""))
}
