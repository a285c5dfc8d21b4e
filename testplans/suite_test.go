// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans_test

import (
	"testing"

	"github.com/simoneemedas/JUnit2ADO/restdata"
	"github.com/simoneemedas/JUnit2ADO/testplans"
	"github.com/stretchr/testify/assert"
)

func sampleTree() []restdata.TestSuite {
	return []restdata.TestSuite{
		{ID: 1, Name: "Root"},
		{ID: 2, Name: "Child One", ParentSuite: &restdata.SuiteReference{ID: 1}},
		{ID: 3, Name: "Child Two", ParentSuite: &restdata.SuiteReference{ID: 1}},
		{ID: 4, Name: "Grand Child", ParentSuite: &restdata.SuiteReference{ID: 2}},
	}
}

func TestFindSuiteDefaultParent(t *testing.T) {
	// With no parent id, the first suite's id is the effective
	// parent; the root, carrying no parent link, matches itself.
	suite, ok := testplans.FindSuite(sampleTree(), nil, "Root")
	if assert.True(t, ok) {
		assert.Equal(t, 1, suite.ID)
	}
}

func TestFindSuiteSpaceInsensitive(t *testing.T) {
	parent := 1
	suite, ok := testplans.FindSuite(sampleTree(), &parent, "ChildOne")
	if assert.True(t, ok) {
		assert.Equal(t, 2, suite.ID)
	}

	// Case still matters.
	_, ok = testplans.FindSuite(sampleTree(), &parent, "childone")
	assert.False(t, ok)
}

func TestFindSuiteWrongParent(t *testing.T) {
	parent := 1
	_, ok := testplans.FindSuite(sampleTree(), &parent, "GrandChild")
	assert.False(t, ok)

	parent = 2
	suite, ok := testplans.FindSuite(sampleTree(), &parent, "GrandChild")
	if assert.True(t, ok) {
		assert.Equal(t, 4, suite.ID)
	}
}

func TestFindSuiteEmptyTree(t *testing.T) {
	_, ok := testplans.FindSuite(nil, nil, "Root")
	assert.False(t, ok)
}

func TestFindSuiteFirstMatchWins(t *testing.T) {
	parent := 1
	tree := append(sampleTree(), restdata.TestSuite{
		ID: 5, Name: "Child One", ParentSuite: &restdata.SuiteReference{ID: 1},
	})
	suite, ok := testplans.FindSuite(tree, &parent, "Child One")
	if assert.True(t, ok) {
		assert.Equal(t, 2, suite.ID)
	}
}
