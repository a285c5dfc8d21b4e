// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

// Package restclient provides the generic HTTP REST layer under the
// test-plans client: URL template resolution, authentication-header
// composition, and request execution.
//
// URL templates are resolved in two distinct stages.  Placeholders
// written {{like-this}} are bound once from the client configuration
// when a Request is created; placeholders written :likeThis survive
// that pass and are bound per call with SetPlaceholder.  For
// instance,
//
//	req := c.NewRequest("https://{{instance}}/{{organization}}/{{project-name}}/_apis/testplan/Plans/:planId?api-version={{api-version}}")
//	req.SetPlaceholder("planId", "42")
//	err := req.Get(&plan)
//
// A Request is single-use: built, substituted, executed, discarded.
// Nothing validates that every :placeholder was substituted; a leftover
// token rides along as a literal path segment and the service answers
// with a 404-class failure, which is where such a caller bug is meant
// to surface.
package restclient

import (
	"encoding/base64"
	"net/http"

	"github.com/simoneemedas/JUnit2ADO/config"
	"github.com/sirupsen/logrus"
)

// Client builds and executes requests against the service named by
// its configuration.  The configuration is read-only after
// construction; Client itself holds no other state, so it is safe to
// share across calls.
type Client struct {
	// Config addresses and authenticates the service.
	Config config.Config

	// HTTPClient performs the actual transport.  If nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client

	// Logger, when set, logs every request at Debug level and
	// transport failures at Warn level.
	Logger *logrus.Logger
}

// New creates a Client from a configuration, applying the protocol
// and api-version defaults.
func New(cfg config.Config) *Client {
	return &Client{Config: cfg.WithDefaults()}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// authorization derives the Basic-auth header value: empty username,
// the personal access token as password.  It is rebuilt on every call;
// the token never changes within a client lifetime but the encoding is
// cheap enough not to cache.
func (c *Client) authorization() string {
	credentials := ":" + c.Config.PAT
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}
