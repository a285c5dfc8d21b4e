// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans

// Pure builders for the result records submitted to a run.  Nothing
// here talks to the service.

import (
	"strings"
	"time"

	"github.com/simoneemedas/JUnit2ADO/restdata"
)

// subResultSeparator sits between aggregated sub-result entries in
// the combined error message and stack trace.
const subResultSeparator = "\n--------------------\n"

// maxStackTraceLength is the service's limit on the stackTrace field.
const maxStackTraceLength = 1000

// NewPassedResult builds the result record for a passed test point.
func NewPassedResult(id int, point restdata.TestPointReference, started, completed time.Time) restdata.TestCaseResult {
	return restdata.TestCaseResult{
		ID:            id,
		Outcome:       restdata.OutcomePassed,
		TestPoint:     point,
		StartedDate:   restdata.FormatTimestamp(started),
		CompletedDate: restdata.FormatTimestamp(completed),
		State:         restdata.StateCompleted,
	}
}

// NewFailedResult builds the result record for a failed test point,
// aggregating its sub-results.  The combined error message lists each
// sub-result's display name and message; the combined stack trace
// lists each display name and trace, clamped to the service's
// 1000-character limit.  The record carries the full sub-result list
// grouped as an ordered test.
func NewFailedResult(id int, point restdata.TestPointReference, started, completed time.Time, subResults []restdata.SubResult) restdata.TestCaseResult {
	messages := make([]string, 0, len(subResults))
	traces := make([]string, 0, len(subResults))
	for _, sub := range subResults {
		messages = append(messages, sub.DisplayName+": "+sub.ErrorMessage)
		traces = append(traces, sub.DisplayName+"\n"+sub.StackTrace)
	}

	stackTrace := strings.Join(traces, subResultSeparator)
	if len(stackTrace) > maxStackTraceLength {
		stackTrace = stackTrace[:maxStackTraceLength]
	}

	return restdata.TestCaseResult{
		ID:              id,
		Outcome:         restdata.OutcomeFailed,
		TestPoint:       point,
		StartedDate:     restdata.FormatTimestamp(started),
		CompletedDate:   restdata.FormatTimestamp(completed),
		State:           restdata.StateCompleted,
		ErrorMessage:    strings.Join(messages, subResultSeparator),
		StackTrace:      stackTrace,
		ResultGroupType: restdata.GroupOrderedTest,
		SubResults:      subResults,
	}
}
