// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans

import (
	"strconv"

	"github.com/simoneemedas/JUnit2ADO/restdata"
)

// GetTestPlan retrieves a test plan by id.
func (c *Client) GetTestPlan(planID int) (restdata.TestPlan, error) {
	var plan restdata.TestPlan
	req := c.Rest.NewRequest(testPlanTemplate)
	req.SetPlaceholder("planId", strconv.Itoa(planID))
	err := req.Get(&plan)
	return plan, err
}
