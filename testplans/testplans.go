// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

// Package testplans exposes the Azure DevOps test-management
// operations as typed calls: fetch plans and suites, create test-case
// work items, look up test points, and drive the test-run lifecycle
// from creation through result submission to completion.
//
// Every operation is a thin composition of the restclient layer: pick
// a URL template, substitute the call's identifiers, issue the
// request, reshape the response.  Operations are synchronous and
// at-most-once; there is no retry, caching, or discovery here.
//
// Lookups that can legitimately come back empty (suite searches,
// test-point queries, work-item creation) report absence through a
// comma-ok boolean rather than an error.
package testplans

import (
	"github.com/benbjohnson/clock"
	"github.com/simoneemedas/JUnit2ADO/config"
	"github.com/simoneemedas/JUnit2ADO/restclient"
)

// Client issues test-management operations against the configured
// organization and project.  The configuration is fixed at
// construction; there is no per-call override.
type Client struct {
	// Rest is the underlying REST layer.  Its Logger and
	// HTTPClient fields may be set before the first call.
	Rest *restclient.Client

	// Clock is the time source for run start dates.  Only test
	// code should need to set this.
	Clock clock.Clock
}

// New creates a Client from a configuration.
func New(cfg config.Config) *Client {
	return NewWithClock(cfg, clock.New())
}

// NewWithClock creates a Client with an alternate time source.
func NewWithClock(cfg config.Config, clk clock.Clock) *Client {
	return &Client{
		Rest:  restclient.New(cfg),
		Clock: clk,
	}
}
