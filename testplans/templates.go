// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans

// URL templates for every operation.  {{...}} placeholders resolve
// from the client configuration when the request is built; :tokens
// resolve per call.  Token names must not be prefixes of one another,
// since per-call substitution is plain text replacement.
//
// Most endpoints take the configured api-version.  The add-to-suite
// POST and the test-point GET require 7.1, and the latest-build GET
// is only served as 7.1-preview.1; those are pinned in the template.
const (
	testPlanTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/testplan/Plans/:planId?api-version={{api-version}}"

	testSuitesTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/testplan/Plans/:planId/suites?api-version={{api-version}}"

	suiteTestCasesTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/testplan/Plans/:planId/Suites/:suiteId/TestCase?api-version={{api-version}}"

	workItemCreateTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/wit/workitems/$:workItemType?api-version={{api-version}}"

	suiteTestCaseAddTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/testplan/Plans/:planId/Suites/:suiteId/TestCase?api-version=7.1"

	testPointTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/testplan/Plans/:planId/Suites/:suiteId/TestPoint?testCaseId=:testCaseId&api-version=7.1"

	testRunCreateTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/test/runs?api-version={{api-version}}"

	testRunTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/test/Runs/:runId?api-version={{api-version}}"

	testResultsTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/test/Runs/:runId/results?api-version={{api-version}}"

	latestBuildTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/build/latest/:definitionId?api-version=7.1-preview.1"

	buildTemplate = "https://{{instance}}/{{organization}}/{{project-name}}/_apis/build/builds/:buildId?api-version={{api-version}}"
)
