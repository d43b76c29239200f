package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is a fully read HTTP response from the backend.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON returns the parsed body. An empty or undecodable body yields an empty object, so callers
// can always look up properties without checking for errors.
func (r *Response) JSON() ldvalue.Value {
	if r == nil || len(bytes.TrimSpace(r.Body)) == 0 || !json.Valid(r.Body) {
		return ldvalue.ObjectBuild().Build()
	}
	return ldvalue.Parse(r.Body)
}

// Decode unmarshals the body into target.
func (r *Response) Decode(target interface{}) error {
	if r == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return errors.New("response body is empty")
	}
	return json.Unmarshal(r.Body, target)
}

// Excerpt returns at most n characters of the body, for log output.
func (r *Response) Excerpt(n int) string {
	if r == nil {
		return ""
	}
	if utf8.RuneCount(r.Body) <= n {
		return string(r.Body)
	}
	return string([]rune(string(r.Body))[:n]) + "..."
}
