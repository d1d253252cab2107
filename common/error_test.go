// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doPost(t *testing.T, h http.Handler) *http.Response {
	t.Helper()

	client, teardown := NewTestingHTTPClient(h)
	defer teardown()

	res, err := client.Post("http://turnkey.example/public/v1/query/whoami", nil, []byte(`{}`))
	require.NoError(t, err)

	return res
}

func TestCheckResponse_ok(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	res := doPost(t, h)
	assert.NoError(t, CheckResponse(res))
}

func TestCheckResponse_json_message(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "no organization found"}`))
	})

	err := CheckResponse(doPost(t, h))
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, BadResponse, netErr.Code)
	assert.Equal(t, http.StatusForbidden, netErr.StatusCode)
	assert.Equal(t, "no organization found", netErr.Message)
	assert.Equal(t, `{"message": "no organization found"}`, netErr.Body)
}

func TestCheckResponse_problem_json(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"title": "Bad Request", "status": 400, "detail": "malformed stamp"}`))
	})

	err := CheckResponse(doPost(t, h))
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "malformed stamp", netErr.Message)

	var prob *ProblemError
	require.True(t, errors.As(err, &prob))
	assert.Equal(t, http.StatusBadRequest, prob.ProblemStatus())
}

func TestCheckResponse_raw_text_fallback(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	err := CheckResponse(doPost(t, h))
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "upstream exploded", netErr.Message)
}

func TestCheckResponse_status_line_fallback(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := CheckResponse(doPost(t, h))
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "503 Service Unavailable", netErr.Message)
	assert.Equal(t, `BAD_RESPONSE (503): 503 Service Unavailable`, netErr.Error())
}

func TestClient_Post_network_failure(t *testing.T) {
	client := NewClient()

	// nothing listens on this address
	_, err := client.Post("http://127.0.0.1:1/public/v1/query/whoami", nil, []byte(`{}`))
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, NetworkFailure, netErr.Code)
	assert.Equal(t, 0, netErr.StatusCode)
	assert.NotNil(t, netErr.Cause)
}

func TestClient_Post_headers(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, Version, r.Header.Get("X-Client-Version"))
		assert.Equal(t, "some-value", r.Header.Get("X-Stamp"))
		w.WriteHeader(http.StatusOK)
	})

	client, teardown := NewTestingHTTPClient(h)
	defer teardown()

	res, err := client.Post(
		"http://turnkey.example/public/v1/query/whoami",
		map[string]string{"X-Stamp": "some-value"},
		[]byte(`{}`),
	)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
