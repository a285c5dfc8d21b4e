// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"bytes"
	"io"
	"net/http"

	"github.com/simoneemedas/JUnit2ADO/restdata"
)

// ErrorHTTP is a catch-all error for non-successes returned from the
// service.  It carries the HTTP status and the response body; no
// interpretation or retry happens here, that is the caller's business.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string

	// Message holds the service's structured error message, when
	// the body parsed as one.
	Message string
}

func (e ErrorHTTP) Error() string {
	if e.Message != "" {
		return e.Response.Status + ": " + e.Message
	}
	return e.Response.Status
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if len(resp.Status) > 0 && resp.Status[0] == '2' {
		return nil
	}

	// Always collect the entire body; we need it as a fallback
	// and can only read it once.
	var body []byte
	var err error
	if resp.Body != nil {
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
	}

	// Take a shot at decoding the service's structured error
	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	err2 := restdata.Decode(contentType, bytes.NewReader(body), &errResp)

	e := ErrorHTTP{Response: resp, Body: string(body)}
	if err2 == nil && errResp.Message != "" {
		e.Message = errResp.ToError().Error()
	}
	return e
}
