// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restdata

// TestPlan is a named container of test suites for a project.
type TestPlan struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AreaPath  string `json:"areaPath,omitempty"`
	Iteration string `json:"iteration,omitempty"`
	URL       string `json:"url,omitempty"`
}

// SuiteReference is the shallow form of a suite, used for parent
// links inside the suite tree.
type SuiteReference struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// TestSuite is one node of a plan's suite hierarchy.  The service
// returns the whole tree as a flat list; ParentSuite links each node
// to its parent and is nil on the root.
type TestSuite struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	ParentSuite *SuiteReference `json:"parentSuite,omitempty"`
	URL         string          `json:"url,omitempty"`
}

// TestSuiteList is the list envelope for suite queries.
type TestSuiteList struct {
	Count int         `json:"count"`
	Value []TestSuite `json:"value"`
}

// WorkItemReference identifies a work item by id and canonical URL.
// Work-item creation returns one of these; the test-case flow carries
// it from the create call to the add-to-suite call.
type WorkItemReference struct {
	ID  int    `json:"id"`
	URL string `json:"url,omitempty"`
}

// WorkItem is the full work-item shape.  Fields is keyed by reference
// name, e.g. "System.Title".
type WorkItem struct {
	ID     int                    `json:"id"`
	Fields map[string]interface{} `json:"fields,omitempty"`
	URL    string                 `json:"url,omitempty"`
}

// PatchOperation is a single JSON-Patch operation.  Work-item create
// and update calls send arrays of these with the
// application/json-patch+json media type.
type PatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
}

// AddOperation builds the "add" patch operation used for setting
// work-item fields.
func AddOperation(path string, value interface{}) PatchOperation {
	return PatchOperation{Op: "add", Path: path, Value: value}
}

// SuiteTestCase is one entry of a suite's test-case list.
type SuiteTestCase struct {
	TestCase         WorkItemReference `json:"testCase"`
	PointAssignments []interface{}     `json:"pointAssignments,omitempty"`
}

// SuiteTestCaseList is the list envelope for a suite's test cases.
// The add-to-suite POST returns the same envelope holding the cases
// just added.
type SuiteTestCaseList struct {
	Count int             `json:"count"`
	Value []SuiteTestCase `json:"value"`
}

// SuiteTestCasePayload is the body of the add-test-case-to-suite POST.
// PointAssignments is always present, even when empty.
type SuiteTestCasePayload struct {
	PointAssignments []interface{}     `json:"pointAssignments"`
	WorkItem         WorkItemReference `json:"workItem"`
}

// TestPointReference identifies a test point by id and URL, as
// embedded in result records.
type TestPointReference struct {
	ID  int    `json:"id"`
	URL string `json:"url,omitempty"`
}

// TestPoint binds a test case to a suite and configuration; points
// are the unit actually executed in a run.
type TestPoint struct {
	ID       int               `json:"id"`
	URL      string            `json:"url,omitempty"`
	TestCase WorkItemReference `json:"testCaseReference,omitempty"`
}

// TestPointList is the list envelope for point queries.
type TestPointList struct {
	Count int         `json:"count"`
	Value []TestPoint `json:"value"`
}

// BuildReference identifies a build by id and URL.
type BuildReference struct {
	ID  int    `json:"id"`
	URL string `json:"url,omitempty"`
}

// Build is the build shape returned by the build endpoints.
type Build struct {
	ID          int    `json:"id"`
	BuildNumber string `json:"buildNumber,omitempty"`
	Status      string `json:"status,omitempty"`
	Result      string `json:"result,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	FinishTime  string `json:"finishTime,omitempty"`
	URL         string `json:"url,omitempty"`
}

// BuildList is the list envelope for build queries.
type BuildList struct {
	Count int     `json:"count"`
	Value []Build `json:"value"`
}

// PlanReference identifies a plan inside a run payload.
type PlanReference struct {
	ID int `json:"id"`
}

// RunCreatePayload is the body of the create-test-run POST.
type RunCreatePayload struct {
	Automated      bool           `json:"automated"`
	Name           string         `json:"name"`
	Build          BuildReference `json:"build"`
	BuildReference BuildReference `json:"buildReference"`
	Plan           PlanReference  `json:"plan"`
	PointIDs       []int          `json:"pointIds"`
	StartDate      string         `json:"startDate"`
}

// RunUpdatePayload is the body of the run-completion call, sent with
// the PATCH verb but a plain JSON media type.
type RunUpdatePayload struct {
	State State `json:"state"`
}

// TestRun is the run shape returned by the run endpoints.  State is
// left as a plain string because the service's reported spellings do
// not always round-trip through the State enumeration.
type TestRun struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	State string `json:"state,omitempty"`
	URL   string `json:"url,omitempty"`
}

// SubResult is one assertion or step inside an aggregated result.
type SubResult struct {
	ID           int     `json:"id"`
	DisplayName  string  `json:"displayName"`
	ErrorMessage string  `json:"errorMessage,omitempty"`
	StackTrace   string  `json:"stackTrace,omitempty"`
	Outcome      Outcome `json:"outcome"`
}

// TestCaseResult is one result record of a run, submitted in bulk to
// the results endpoint.
type TestCaseResult struct {
	ID              int                `json:"id"`
	Outcome         Outcome            `json:"outcome"`
	TestPoint       TestPointReference `json:"testPoint"`
	StartedDate     string             `json:"startedDate"`
	CompletedDate   string             `json:"completedDate"`
	State           State              `json:"state"`
	ErrorMessage    string             `json:"errorMessage,omitempty"`
	StackTrace      string             `json:"stackTrace,omitempty"`
	ResultGroupType ResultGroupType    `json:"resultGroupType,omitempty"`
	SubResults      []SubResult        `json:"subResults,omitempty"`
}
