package testutil

import (
	"io"
	"net/http"
	"strings"
)

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Response builds an in-memory HTTP response with the given status and body.
func Response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// ClientFunc returns an http.Client whose transport is fn.
func ClientFunc(fn func(req *http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{Transport: RoundTripperFunc(fn)}
}
