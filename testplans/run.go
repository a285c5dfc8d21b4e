// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans

import (
	"strconv"

	"github.com/simoneemedas/JUnit2ADO/restdata"
)

// CreateTestRun creates an automated test run over the given points,
// associated with a plan and a build.  The run's start date is taken
// from the client's clock at call time.
func (c *Client) CreateTestRun(name string, planID int, build restdata.BuildReference, pointIDs []int) (restdata.TestRun, error) {
	payload := restdata.RunCreatePayload{
		Automated:      true,
		Name:           name,
		Build:          build,
		BuildReference: build,
		Plan:           restdata.PlanReference{ID: planID},
		PointIDs:       pointIDs,
		StartDate:      restdata.FormatTimestamp(c.Clock.Now()),
	}

	var run restdata.TestRun
	req := c.Rest.NewRequest(testRunCreateTemplate)
	err := req.Post(payload, &run)
	return run, err
}

// GetTestRun retrieves a test run by id.
func (c *Client) GetTestRun(runID int) (restdata.TestRun, error) {
	var run restdata.TestRun
	req := c.Rest.NewRequest(testRunTemplate)
	req.SetPlaceholder("runId", strconv.Itoa(runID))
	err := req.Get(&run)
	return run, err
}

// SubmitTestResults submits a batch of result records to a run.  The
// endpoint wants the PATCH verb with a plain JSON body.
func (c *Client) SubmitTestResults(runID int, results []restdata.TestCaseResult) error {
	req := c.Rest.NewRequest(testResultsTemplate)
	req.SetPlaceholder("runId", strconv.Itoa(runID))
	return req.PatchJSON(results, nil)
}

// CompleteTestRun marks a run completed.  Same PATCH-with-plain-JSON
// contract as result submission.
func (c *Client) CompleteTestRun(runID int) error {
	req := c.Rest.NewRequest(testRunTemplate)
	req.SetPlaceholder("runId", strconv.Itoa(runID))
	return req.PatchJSON(restdata.RunUpdatePayload{State: restdata.StateCompleted}, nil)
}
