// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package testhelper provides shared helpers for the package tests.
package testhelper

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
)

const (
	// TestOnlineAPIURL is a stable HTTPS endpoint used by tests that need a real network round trip.
	TestOnlineAPIURL = "https://httpbin.org/delay/2"

	envOnlineTests = "PERFORM_ONLINE_TESTS"
)

// MockRoundTripper lets tests replace the transport of the HTTP client with a function.
type MockRoundTripper struct {
	Fn func(req *http.Request) (*http.Response, error)
}

func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}

// PerformIntegrationTests skips the calling test unless online tests are enabled.
func PerformIntegrationTests(t *testing.T) {
	t.Helper()
	if val := os.Getenv(envOnlineTests); val == "" {
		t.Skipf("online tests disabled, set %s to enable", envOnlineTests)
	}
}

// JSONResponse returns a RoundTrip function that answers every request with the given status
// code and body.
func JSONResponse(status int, body string) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Status:     http.StatusText(status),
			Body:       io.NopCloser(bytes.NewBufferString(body)),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	}
}

// FileResponse returns a RoundTrip function that answers every request with the content of the
// given file and a 200 status code.
func FileResponse(file string) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		data, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open JSON response file: %w", err)
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     http.StatusText(http.StatusOK),
			Body:       data,
			Header:     make(http.Header),
			Request:    req,
		}, nil
	}
}
