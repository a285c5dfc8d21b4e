// Copyright 2026 Simone Medas.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"mime"

	"github.com/ugorji/go/codec"
)

// Decode tries to decode a restdata object from a reader, such as an
// HTTP response body.  out must be a pointer type.  The service only
// ever speaks JSON; any other media type is an error.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5 says we may assume
		// application/octet-stream here, but the service omits
		// the header only on bodies that are in fact JSON.
		contentType = JSONMediaType
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}

	switch mediaType {
	case "text/json", JSONMediaType, JSONPatchMediaType:
		json := &codec.JsonHandle{}
		decoder := codec.NewDecoder(r, json)
		return decoder.Decode(out)
	default:
		return ErrUnsupportedMediaType{Type: mediaType}
	}
}

// Encode serializes a restdata object as JSON onto a writer, such as
// an HTTP request body.
func Encode(w io.Writer, in interface{}) error {
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(w, json)
	return encoder.Encode(in)
}
