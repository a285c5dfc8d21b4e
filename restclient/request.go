// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"strings"

	"github.com/simoneemedas/JUnit2ADO/restdata"
)

// Request is a URL template bound to a client, part way through
// resolution.  Configuration placeholders were substituted at
// construction; call-specific :placeholders are substituted with
// SetPlaceholder.  Execute it with Get, Post, Patch, PatchJSON, or
// Delete, then discard it.
type Request struct {
	client *Client
	url    string
}

// NewRequest resolves the configuration stage of a URL template.
// {{instance}}, {{organization}}, {{project-name}}, {{team}}, and
// {{api-version}} are replaced with the configured values, with
// organization, project, and team names escaped for spaces first.
// The literal https:// prefix is rewritten to the configured
// protocol, so templates can be pointed at plain-HTTP test
// endpoints.
func (c *Client) NewRequest(template string) *Request {
	cfg := c.Config
	replacer := strings.NewReplacer(
		"https://", cfg.Protocol+"://",
		"{{instance}}", cfg.Instance,
		"{{organization}}", restdata.EscapeName(cfg.Organization),
		"{{project-name}}", restdata.EscapeName(cfg.ProjectName),
		"{{team}}", restdata.EscapeName(cfg.Team),
		"{{api-version}}", cfg.APIVersion,
	)
	return &Request{
		client: c,
		url:    replacer.Replace(template),
	}
}

// SetPlaceholder replaces every occurrence of the token :name in the
// URL with value.  Substitution is plain text replacement with no
// escaping, in whatever order the caller performs it; placeholder
// names in the template set must not be prefixes of one another.
// Returns the request for chaining.
func (r *Request) SetPlaceholder(name, value string) *Request {
	r.url = strings.ReplaceAll(r.url, ":"+name, value)
	return r
}

// URL returns the URL as resolved so far.
func (r *Request) URL() string {
	return r.url
}
