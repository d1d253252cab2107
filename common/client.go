// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"bytes"
	"fmt"
	"net/http"
	"time"
)

// Client holds configuration data associated with the HTTP(s) session
type Client struct {
	HTTPClient http.Client
}

// NewClient instantiates a new Client
func NewClient() *Client {
	return &Client{
		HTTPClient: http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Post issues a single POST request to uri with the supplied body and
// extra headers. Content-Type and X-Client-Version are always set. A
// transport-level failure (DNS, connect, timeout) is mapped to a
// NetworkError with no status code. Non-2xx responses are NOT treated as
// errors here; see CheckResponse. Post never retries.
func (c *Client) Post(uri string, headers map[string]string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest("POST", uri, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("POST %q, request creation failed: %w", uri, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Version", Version)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hc := &c.HTTPClient

	res, err := hc.Do(req)
	if err != nil {
		return nil, &NetworkError{
			Code:    NetworkFailure,
			Message: "request failed",
			Cause:   err,
		}
	}

	return res, nil
}
