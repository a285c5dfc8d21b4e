// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/simoneemedas/JUnit2ADO/config"
	"github.com/simoneemedas/JUnit2ADO/restdata"
	"github.com/stretchr/testify/assert"
)

// capture records what the fake service saw for one request.
type capture struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          string
}

// newCaptureServer runs a fake service that records requests and
// answers with the given status and JSON body.
func newCaptureServer(status int, response string) (*httptest.Server, *capture) {
	captured := &capture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Authorization = r.Header.Get("Authorization")
		captured.ContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		captured.Body = string(body)
		w.Header().Set("Content-Type", restdata.JSONMediaType)
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	return server, captured
}

// clientFor points a client at an httptest server.
func clientFor(server *httptest.Server) *Client {
	return New(config.Config{
		Protocol: "http",
		Instance: strings.TrimPrefix(server.URL, "http://"),
		PAT:      "secret",
	})
}

func TestAuthorizationHeader(t *testing.T) {
	server, captured := newCaptureServer(http.StatusOK, `{}`)
	defer server.Close()

	var out map[string]interface{}
	err := clientFor(server).NewRequest("https://{{instance}}/x").Get(&out)
	if assert.NoError(t, err) {
		// Basic auth, empty username, PAT as password.
		expected := "Basic " + base64.StdEncoding.EncodeToString([]byte(":secret"))
		assert.Equal(t, expected, captured.Authorization)
	}
}

func TestVerbContracts(t *testing.T) {
	in := map[string]interface{}{"key": "value"}

	tests := []struct {
		name        string
		issue       func(r *Request) error
		method      string
		contentType string
		hasBody     bool
	}{
		{
			name:   "Get",
			issue:  func(r *Request) error { var out map[string]interface{}; return r.Get(&out) },
			method: "GET",
		},
		{
			name:        "Post",
			issue:       func(r *Request) error { return r.Post(in, nil) },
			method:      "POST",
			contentType: restdata.JSONMediaType,
			hasBody:     true,
		},
		{
			name: "Patch",
			issue: func(r *Request) error {
				ops := []restdata.PatchOperation{restdata.AddOperation("/fields/System.Title", "t")}
				return r.Patch(ops, nil)
			},
			method:      "PATCH",
			contentType: restdata.JSONPatchMediaType,
			hasBody:     true,
		},
		{
			name:        "PatchJSON",
			issue:       func(r *Request) error { return r.PatchJSON(in, nil) },
			method:      "PATCH",
			contentType: restdata.JSONMediaType,
			hasBody:     true,
		},
		{
			name:   "Delete",
			issue:  func(r *Request) error { return r.Delete() },
			method: "DELETE",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server, captured := newCaptureServer(http.StatusOK, `{}`)
			defer server.Close()

			err := test.issue(clientFor(server).NewRequest("https://{{instance}}/x"))
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, test.method, captured.Method)
			assert.Equal(t, test.contentType, captured.ContentType)
			if test.hasBody {
				assert.NotEmpty(t, captured.Body)
			} else {
				assert.Empty(t, captured.Body)
			}
		})
	}
}

func TestHTTPError(t *testing.T) {
	server, _ := newCaptureServer(http.StatusNotFound,
		`{"message":"no such plan","typeKey":"TestPlanNotFoundException"}`)
	defer server.Close()

	var out map[string]interface{}
	err := clientFor(server).NewRequest("https://{{instance}}/x").Get(&out)
	if assert.Error(t, err) {
		httpErr, isHTTP := err.(ErrorHTTP)
		if assert.True(t, isHTTP) {
			assert.Equal(t, http.StatusNotFound, httpErr.Response.StatusCode)
			assert.Contains(t, httpErr.Body, "no such plan")
			assert.Contains(t, httpErr.Error(), "no such plan")
		}
	}
}

func TestHTTPErrorUnstructuredBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream fell over")
	}))
	defer server.Close()

	err := clientFor(server).NewRequest("https://{{instance}}/x").Delete()
	if assert.Error(t, err) {
		httpErr, isHTTP := err.(ErrorHTTP)
		if assert.True(t, isHTTP) {
			assert.Equal(t, http.StatusBadGateway, httpErr.Response.StatusCode)
			assert.Equal(t, "upstream fell over", httpErr.Body)
		}
	}
}

func TestTransportError(t *testing.T) {
	server, _ := newCaptureServer(http.StatusOK, `{}`)
	server.Close() // connection refused from here on

	err := clientFor(server).NewRequest("https://{{instance}}/x").Delete()
	assert.Error(t, err)
	_, isHTTP := err.(ErrorHTTP)
	assert.False(t, isHTTP)
}

func TestUnresolvedPlaceholderReaches404(t *testing.T) {
	// A leftover :token is the service's problem, not ours.
	server, captured := newCaptureServer(http.StatusNotFound, `{}`)
	defer server.Close()

	var out map[string]interface{}
	err := clientFor(server).NewRequest("https://{{instance}}/_apis/test/Runs/:runId").Get(&out)
	assert.Error(t, err)
	assert.Equal(t, "/_apis/test/Runs/:runId", captured.Path)
}
