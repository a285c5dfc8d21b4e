// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package testplans_test

import (
	"strings"
	"testing"
	"time"

	"github.com/simoneemedas/JUnit2ADO/restdata"
	"github.com/simoneemedas/JUnit2ADO/testplans"
	"github.com/stretchr/testify/assert"
)

var (
	resultStart = time.Date(2024, time.November, 12, 9, 5, 3, 456000000, time.UTC)
	resultEnd   = time.Date(2024, time.November, 12, 9, 6, 0, 0, time.UTC)
	resultPoint = restdata.TestPointReference{ID: 55, URL: "http://host/points/55"}
)

func TestNewPassedResult(t *testing.T) {
	result := testplans.NewPassedResult(7, resultPoint, resultStart, resultEnd)

	assert.Equal(t, 7, result.ID)
	assert.Equal(t, restdata.OutcomePassed, result.Outcome)
	assert.Equal(t, resultPoint, result.TestPoint)
	assert.Equal(t, "2024-11-12T09:05:03.45Z", result.StartedDate)
	assert.Equal(t, "2024-11-12T09:06:00.00Z", result.CompletedDate)
	assert.Equal(t, restdata.StateCompleted, result.State)
	assert.Empty(t, result.ErrorMessage)
	assert.Empty(t, result.SubResults)
	assert.Equal(t, restdata.GroupNone, result.ResultGroupType)
}

func TestNewFailedResult(t *testing.T) {
	subResults := []restdata.SubResult{
		{ID: 1, DisplayName: "asserts equality", ErrorMessage: "want 1, got 2",
			StackTrace: "at Foo.Test:12", Outcome: restdata.OutcomeFailed},
		{ID: 2, DisplayName: "asserts order", ErrorMessage: "out of order",
			StackTrace: "at Foo.Test:34", Outcome: restdata.OutcomeFailed},
	}

	result := testplans.NewFailedResult(7, resultPoint, resultStart, resultEnd, subResults)

	assert.Equal(t, restdata.OutcomeFailed, result.Outcome)
	assert.Equal(t, restdata.StateCompleted, result.State)
	assert.Equal(t, restdata.GroupOrderedTest, result.ResultGroupType)
	assert.Equal(t, subResults, result.SubResults)

	// Both aggregates name every sub-result, separated.
	assert.Contains(t, result.ErrorMessage, "asserts equality: want 1, got 2")
	assert.Contains(t, result.ErrorMessage, "asserts order: out of order")
	assert.Contains(t, result.StackTrace, "at Foo.Test:12")
	assert.Contains(t, result.StackTrace, "at Foo.Test:34")
	assert.Contains(t, result.ErrorMessage, "--------------------")
}

func TestNewFailedResultTruncatesStackTrace(t *testing.T) {
	subResults := []restdata.SubResult{
		{ID: 1, DisplayName: "first", StackTrace: strings.Repeat("a", 700)},
		{ID: 2, DisplayName: "second", StackTrace: strings.Repeat("b", 700)},
	}

	result := testplans.NewFailedResult(7, resultPoint, resultStart, resultEnd, subResults)
	assert.Len(t, result.StackTrace, 1000)

	// Short traces come through whole.
	short := testplans.NewFailedResult(7, resultPoint, resultStart, resultEnd,
		subResults[:1])
	assert.Len(t, short.StackTrace, len("first\n")+700)
}
