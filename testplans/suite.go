// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans

import (
	"strconv"
	"strings"

	"github.com/simoneemedas/JUnit2ADO/restdata"
)

// GetTestSuites retrieves a plan's full suite hierarchy as a flat
// list with parent-suite links.
func (c *Client) GetTestSuites(planID int) ([]restdata.TestSuite, error) {
	var list restdata.TestSuiteList
	req := c.Rest.NewRequest(testSuitesTemplate)
	req.SetPlaceholder("planId", strconv.Itoa(planID))
	err := req.Get(&list)
	return list.Value, err
}

// FindSuite searches an already-fetched suite tree for the first
// suite under parentID whose name matches name.  Names compare with
// spaces stripped from both sides, case-sensitive otherwise.  A root
// suite, which carries no parent link, counts as its own parent.
//
// When parentID is nil, the id of the first suite in the tree is used
// instead; for the trees the service returns, that is the root.
func FindSuite(suites []restdata.TestSuite, parentID *int, name string) (restdata.TestSuite, bool) {
	if len(suites) == 0 {
		return restdata.TestSuite{}, false
	}
	effective := suites[0].ID
	if parentID != nil {
		effective = *parentID
	}
	want := stripSpaces(name)
	for _, suite := range suites {
		parent := suite.ID
		if suite.ParentSuite != nil {
			parent = suite.ParentSuite.ID
		}
		if parent != effective {
			continue
		}
		if stripSpaces(suite.Name) == want {
			return suite, true
		}
	}
	return restdata.TestSuite{}, false
}

// GetSuiteByName fetches a plan's suite tree and returns the first
// suite matching name anywhere in the plan, spaces stripped.
func (c *Client) GetSuiteByName(planID int, name string) (restdata.TestSuite, bool, error) {
	suites, err := c.GetTestSuites(planID)
	if err != nil {
		return restdata.TestSuite{}, false, err
	}
	want := stripSpaces(name)
	for _, suite := range suites {
		if stripSpaces(suite.Name) == want {
			return suite, true, nil
		}
	}
	return restdata.TestSuite{}, false, nil
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
