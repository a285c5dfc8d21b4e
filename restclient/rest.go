// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides the generic request executor.

import (
	"io"
	"net/http"

	"github.com/simoneemedas/JUnit2ADO/restdata"
	"github.com/sirupsen/logrus"
)

// Get retrieves the resource at the request's URL.  The response body
// is decoded into out, which must be of pointer type, or discarded if
// out is nil.
func (r *Request) Get(out interface{}) error {
	return r.do("GET", restdata.JSONMediaType, nil, out)
}

// Post submits in as a JSON body to the request's URL.  The response
// is decoded into out if non-nil.
func (r *Request) Post(in, out interface{}) error {
	return r.do("POST", restdata.JSONMediaType, in, out)
}

// Patch submits a JSON-Patch document to the request's URL with the
// application/json-patch+json media type.  This is the work-item
// field-edit contract.
func (r *Request) Patch(ops []restdata.PatchOperation, out interface{}) error {
	return r.do("PATCH", restdata.JSONPatchMediaType, ops, out)
}

// PatchJSON submits in as a plain JSON body on the PATCH verb.  The
// results and run-completion endpoints require this combination: the
// PATCH verb, but an ordinary JSON payload rather than a JSON-Patch
// document.
func (r *Request) PatchJSON(in, out interface{}) error {
	return r.do("PATCH", restdata.JSONMediaType, in, out)
}

// Delete deletes the resource at the request's URL.
func (r *Request) Delete() error {
	return r.do("DELETE", restdata.JSONMediaType, nil, nil)
}

// do performs the HTTP action.  If in is non-nil it is serialized as
// the request body with the given media type.  If out is non-nil the
// response body is deserialized into it; out must be of pointer type.
func (r *Request) do(method, contentType string, in, out interface{}) (err error) {
	// Set up the body as serialized JSON, if there is one
	var body io.Reader
	if in != nil {
		reader, writer := io.Pipe()
		finished := make(chan error)
		go func() {
			err := restdata.Encode(writer, in)
			err = firstError(err, writer.Close())
			finished <- err
		}()
		defer func() {
			err = firstError(err, <-finished)
		}()
		body = reader
	}

	// Create the request and set headers.  The authorization
	// header is derived fresh on every call.
	req, err := http.NewRequest(method, r.url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", r.client.authorization())
	if in != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if out != nil {
		req.Header.Set("Accept", restdata.JSONMediaType)
	}

	// Actually do the request
	resp, err := r.client.httpClient().Do(req)
	if err != nil {
		observeRequest(method, "error")
		if r.client.Logger != nil {
			r.client.Logger.WithFields(logrus.Fields{
				"method": method,
				"url":    r.url,
				"err":    err,
			}).Warn("API request failed")
		}
		return err
	}
	observeRequest(method, statusClass(resp.StatusCode))
	if r.client.Logger != nil {
		r.client.Logger.WithFields(logrus.Fields{
			"method": method,
			"url":    r.url,
			"status": resp.StatusCode,
		}).Debug("API request")
	}

	// If the response included a body, clean up afterwards
	if resp.Body != nil {
		defer func() {
			err = firstError(err, resp.Body.Close())
		}()
	}

	// Check the response code
	if err = checkHTTPStatus(resp); err != nil {
		return err
	}

	// If there is both a body and a requested output, decode it
	if resp.Body != nil && out != nil {
		responseType := resp.Header.Get("Content-Type")
		err = restdata.Decode(responseType, resp.Body, out)
	}

	return err // may be nil
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
