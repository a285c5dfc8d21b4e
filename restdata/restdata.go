// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

// Package restdata defines the data structures exchanged with the
// Azure DevOps test-management REST surface: test plans, suites, test
// cases, test points, test runs, test results, builds, and work items.
//
// Shapes follow the remote service's JSON conventions.  List endpoints
// wrap their payload in an envelope
//
//	{
//	    "count": 2,
//	    "value": [...]
//	}
//
// modelled here as the *List types.  Enumerated fields (test outcomes,
// run and result states, result group types) are closed enumerations
// whose serialized form must match the remote casing exactly:
// "Passed", not "passed"; "orderedTest", not "OrderedTest".
//
// Timestamps sent to the service are rendered in UTC as
// "2012-03-04T05:06:07.89Z": ISO-8601 with exactly two fractional
// digits and a literal Z suffix.  FormatTimestamp produces this form.
package restdata

// JSONMediaType is the default request and response media type.
const JSONMediaType = "application/json"

// JSONPatchMediaType is the media type for JSON-Patch documents, used
// by work-item create and update calls.
const JSONPatchMediaType = "application/json-patch+json"
