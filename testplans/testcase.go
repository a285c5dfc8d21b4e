// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans

import (
	"strconv"

	"github.com/satori/go.uuid"
	"github.com/simoneemedas/JUnit2ADO/restdata"
)

// workItemTypeTestCase is the work-item type created for automated
// test cases.
const workItemTypeTestCase = "Test Case"

// automatedTestType is the value of the AutomatedTestType field on
// every test case this client creates.
const automatedTestType = "Unit Test"

// GetTestCases retrieves the test cases attached to a suite.
func (c *Client) GetTestCases(planID, suiteID int) ([]restdata.SuiteTestCase, error) {
	var list restdata.SuiteTestCaseList
	req := c.Rest.NewRequest(suiteTestCasesTemplate)
	req.SetPlaceholder("planId", strconv.Itoa(planID))
	req.SetPlaceholder("suiteId", strconv.Itoa(suiteID))
	err := req.Get(&list)
	return list.Value, err
}

// CreateTestCaseWorkItem creates a Test Case work item carrying the
// automated-test fields, via a six-operation JSON-Patch document.
// The AutomatedTestId field gets a freshly generated UUID on every
// call.  Returns the created item's reference, or ok=false when the
// service answered without a usable work item.
func (c *Client) CreateTestCaseWorkItem(title, description, testName, testStorage string) (restdata.WorkItemReference, bool, error) {
	ops := []restdata.PatchOperation{
		restdata.AddOperation("/fields/System.Title", title),
		restdata.AddOperation("/fields/System.Description", description),
		restdata.AddOperation("/fields/Microsoft.VSTS.TCM.AutomatedTestName", testName),
		restdata.AddOperation("/fields/Microsoft.VSTS.TCM.AutomatedTestStorage", testStorage),
		restdata.AddOperation("/fields/Microsoft.VSTS.TCM.AutomatedTestType", automatedTestType),
		restdata.AddOperation("/fields/Microsoft.VSTS.TCM.AutomatedTestId", uuid.NewV4().String()),
	}

	var item restdata.WorkItem
	req := c.Rest.NewRequest(workItemCreateTemplate)
	req.SetPlaceholder("workItemType", workItemTypeTestCase)
	err := req.Patch(ops, &item)
	if err != nil {
		return restdata.WorkItemReference{}, false, err
	}
	if item.ID == 0 {
		return restdata.WorkItemReference{}, false, nil
	}
	return restdata.WorkItemReference{ID: item.ID, URL: item.URL}, true, nil
}

// CreateTestCase creates a test-case work item and adds it to a
// suite.  When work-item creation yields no result the operation
// short-circuits with ok=false and the add-to-suite POST is never
// issued, so the service never sees a missing work-item id.
func (c *Client) CreateTestCase(planID, suiteID int, title, description, testName, testStorage string) (restdata.SuiteTestCaseList, bool, error) {
	ref, ok, err := c.CreateTestCaseWorkItem(title, description, testName, testStorage)
	if err != nil || !ok {
		return restdata.SuiteTestCaseList{}, false, err
	}

	payload := restdata.SuiteTestCasePayload{
		PointAssignments: []interface{}{},
		WorkItem:         restdata.WorkItemReference{ID: ref.ID},
	}
	var added restdata.SuiteTestCaseList
	req := c.Rest.NewRequest(suiteTestCaseAddTemplate)
	req.SetPlaceholder("planId", strconv.Itoa(planID))
	req.SetPlaceholder("suiteId", strconv.Itoa(suiteID))
	err = req.Post(payload, &added)
	if err != nil {
		return restdata.SuiteTestCaseList{}, false, err
	}
	return added, true, nil
}
