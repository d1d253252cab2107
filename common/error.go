// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/moogar0880/problems"
)

// ErrorCode classifies a NetworkError.
type ErrorCode string

const (
	// NetworkFailure means the request never produced a response
	// (DNS, connect or timeout failure).
	NetworkFailure ErrorCode = "NETWORK_ERROR"

	// BadResponse means the server answered with a non-2xx status.
	BadResponse ErrorCode = "BAD_RESPONSE"
)

// NetworkError is the single error type surfaced for transport and HTTP
// failures. It carries enough context to reconstruct the failing call.
type NetworkError struct {
	Code       ErrorCode
	StatusCode int    // 0 when no response was received
	Message    string // best-effort server message
	Body       string // raw response body, when one was received
	Cause      error
}

func (o *NetworkError) Error() string {
	if o.StatusCode > 0 {
		return fmt.Sprintf("%s (%d): %s", o.Code, o.StatusCode, o.Message)
	}

	if o.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", o.Code, o.Message, o.Cause)
	}

	return fmt.Sprintf("%s: %s", o.Code, o.Message)
}

func (o *NetworkError) Unwrap() error {
	return o.Cause
}

type ProblemError struct {
	problems.DefaultProblem
}

func (o *ProblemError) Error() string {
	return fmt.Sprintf("%d %s: %s", o.ProblemStatus(), o.ProblemTitle(), o.Detail)
}

// CheckResponse returns nil when the response status is 2xx, and a
// BadResponse NetworkError otherwise. The error message is taken, in
// order of preference, from an RFC 7807 problem body, a JSON "message"
// field, the raw body text, or the HTTP status line. On error the
// response body is consumed.
func CheckResponse(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)

	netErr := &NetworkError{
		Code:       BadResponse,
		StatusCode: res.StatusCode,
		Body:       string(raw),
	}

	ct, _, _ := mime.ParseMediaType(res.Header.Get("Content-Type"))
	if ct == problems.ProblemMediaType {
		var prob ProblemError

		if err := json.Unmarshal(raw, &prob.DefaultProblem); err == nil {
			netErr.Message = prob.Detail
			netErr.Cause = &prob
			return netErr
		}
	}

	netErr.Message = extractMessage(raw, res.StatusCode)

	return netErr
}

// extractMessage digs a human-readable message out of an error response
// body, falling back to the raw text and finally the status line.
func extractMessage(raw []byte, statusCode int) string {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}

	return fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
}
