// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"fmt"
)

// Outcome describes the result of executing a single test point.
type Outcome int

const (
	// OutcomeUnspecified is the zero outcome, reported when no
	// outcome has been assigned yet.
	OutcomeUnspecified Outcome = iota

	// OutcomeNone marks a result with no outcome at all.
	OutcomeNone

	// OutcomePassed marks a successful execution.
	OutcomePassed

	// OutcomeFailed marks a failed execution.
	OutcomeFailed

	// OutcomeInconclusive marks an execution whose verdict could
	// not be determined.
	OutcomeInconclusive

	// OutcomeTimeout marks an execution aborted by a timeout.
	OutcomeTimeout

	// OutcomeAborted marks an execution aborted by the harness or
	// the user.
	OutcomeAborted

	// OutcomeBlocked marks a test that could not run because of an
	// external impediment.
	OutcomeBlocked

	// OutcomeNotExecuted marks a test that was never started.
	OutcomeNotExecuted

	// OutcomeWarning marks a pass with warnings.
	OutcomeWarning

	// OutcomeError marks an execution that errored outside the
	// test body itself.
	OutcomeError

	// OutcomeNotApplicable marks a test excluded from the run on
	// purpose.
	OutcomeNotApplicable

	// OutcomePaused marks a manual test whose execution is paused.
	OutcomePaused

	// OutcomeInProgress marks a test currently executing.
	OutcomeInProgress

	// OutcomeNotImpacted marks a test skipped by impact analysis.
	OutcomeNotImpacted
)

// outcomeNames holds the wire spellings, indexed by Outcome.  The
// service is case-sensitive about these.
var outcomeNames = []string{
	"Unspecified",
	"None",
	"Passed",
	"Failed",
	"Inconclusive",
	"Timeout",
	"Aborted",
	"Blocked",
	"NotExecuted",
	"Warning",
	"Error",
	"NotApplicable",
	"Paused",
	"InProgress",
	"NotImpacted",
}

// MarshalText returns the wire spelling of an outcome.
func (o Outcome) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(outcomeNames) {
		return nil, fmt.Errorf("invalid outcome (marshal, %+v)", int(o))
	}
	return []byte(outcomeNames[o]), nil
}

// UnmarshalText populates an outcome from its wire spelling.
func (o *Outcome) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("invalid outcome (unmarshal, %q)", string(text))
}

func (o Outcome) String() string {
	if text, err := o.MarshalText(); err == nil {
		return string(text)
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// State describes the lifecycle state of a test run or test result.
type State int

const (
	// StateNotStarted is the initial state.
	StateNotStarted State = iota

	// StateInProgress marks a run or result still executing.
	StateInProgress

	// StateCompleted marks a finished run or result.
	StateCompleted

	// StateAborted marks a run or result stopped before finishing.
	StateAborted

	// StateWaiting marks a run queued but not yet executing.
	StateWaiting
)

// MarshalText returns the wire spelling of a state.
func (s State) MarshalText() ([]byte, error) {
	switch s {
	case StateNotStarted:
		return []byte("NotStarted"), nil
	case StateInProgress:
		return []byte("InProgress"), nil
	case StateCompleted:
		return []byte("Completed"), nil
	case StateAborted:
		return []byte("Aborted"), nil
	case StateWaiting:
		return []byte("Waiting"), nil
	default:
		return nil, fmt.Errorf("invalid state (marshal, %+v)", int(s))
	}
}

// UnmarshalText populates a state from its wire spelling.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "NotStarted":
		*s = StateNotStarted
	case "InProgress":
		*s = StateInProgress
	case "Completed":
		*s = StateCompleted
	case "Aborted":
		*s = StateAborted
	case "Waiting":
		*s = StateWaiting
	default:
		return fmt.Errorf("invalid state (unmarshal, %q)", string(text))
	}
	return nil
}

func (s State) String() string {
	if text, err := s.MarshalText(); err == nil {
		return string(text)
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ResultGroupType describes whether a test result aggregates
// sub-results, and how.
type ResultGroupType int

const (
	// GroupNone marks a leaf result with no sub-results.
	GroupNone ResultGroupType = iota

	// GroupDataDriven marks a result aggregating one sub-result
	// per data row.
	GroupDataDriven

	// GroupGeneric marks a generic aggregation.
	GroupGeneric

	// GroupOrderedTest marks a result aggregating the steps of an
	// ordered test.
	GroupOrderedTest

	// GroupRerun marks a result aggregating reruns of the same
	// test.
	GroupRerun
)

// MarshalText returns the wire spelling of a result group type.  These
// are lower camel case on the wire, unlike outcomes and states.
func (g ResultGroupType) MarshalText() ([]byte, error) {
	switch g {
	case GroupNone:
		return []byte("none"), nil
	case GroupDataDriven:
		return []byte("dataDriven"), nil
	case GroupGeneric:
		return []byte("generic"), nil
	case GroupOrderedTest:
		return []byte("orderedTest"), nil
	case GroupRerun:
		return []byte("rerun"), nil
	default:
		return nil, fmt.Errorf("invalid result group type (marshal, %+v)", int(g))
	}
}

// UnmarshalText populates a result group type from its wire spelling.
func (g *ResultGroupType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*g = GroupNone
	case "dataDriven":
		*g = GroupDataDriven
	case "generic":
		*g = GroupGeneric
	case "orderedTest":
		*g = GroupOrderedTest
	case "rerun":
		*g = GroupRerun
	default:
		return fmt.Errorf("invalid result group type (unmarshal, %q)", string(text))
	}
	return nil
}

func (g ResultGroupType) String() string {
	if text, err := g.MarshalText(); err == nil {
		return string(text)
	}
	return fmt.Sprintf("ResultGroupType(%d)", int(g))
}
