// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans

import (
	"strconv"

	"github.com/simoneemedas/JUnit2ADO/restdata"
)

// GetTestPoint retrieves the test point binding a test case to a
// suite.  The service answers with a list envelope; the first entry
// is the point a run executes.  ok=false when the case has no point
// in that suite.
func (c *Client) GetTestPoint(planID, suiteID, testCaseID int) (restdata.TestPoint, bool, error) {
	var list restdata.TestPointList
	req := c.Rest.NewRequest(testPointTemplate)
	req.SetPlaceholder("planId", strconv.Itoa(planID))
	req.SetPlaceholder("suiteId", strconv.Itoa(suiteID))
	req.SetPlaceholder("testCaseId", strconv.Itoa(testCaseID))
	err := req.Get(&list)
	if err != nil {
		return restdata.TestPoint{}, false, err
	}
	if len(list.Value) == 0 {
		return restdata.TestPoint{}, false, nil
	}
	return list.Value[0], true, nil
}
