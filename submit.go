// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/turnkey/apiclient/activity"
	"github.com/turnkey/apiclient/common"
	"github.com/turnkey/apiclient/schema"
)

// SubmitSignedRequest submits a previously stamped request, possibly
// produced by a different signer, and returns the raw JSON payload. The
// body bytes are transmitted exactly as signed.
//
// When the request is an activity, the returned activity is polled to a
// terminal status and, on completion, the result variant is located via
// the heuristic scan (see activity.FlattenAny) and merged into the top
// level of the payload. Callers that know the operation should prefer
// the typed call methods, which use the explicit resolved result field.
func (c *Client) SubmitSignedRequest(req *SignedRequest) (json.RawMessage, error) {
	if req == nil {
		return nil, errors.New("no signed request supplied")
	}

	if req.Stamp == nil {
		return nil, errors.New("signed request carries no stamp")
	}

	res, err := c.cfg.Client.Post(
		req.URL,
		map[string]string{req.Stamp.Header: req.Stamp.Value},
		req.Body,
	)
	if err != nil {
		return nil, err
	}

	if err := common.CheckResponse(res); err != nil {
		return nil, err
	}

	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if req.Kind != schema.KindActivity {
		return raw, nil
	}

	var initial GetActivityResponse

	if err := json.Unmarshal(raw, &initial); err != nil {
		return nil, fmt.Errorf("failure decoding activity response body: %w", err)
	}

	if initial.Activity == nil {
		return raw, nil
	}

	final, err := c.poller().Poll(initial.Activity)
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failure decoding activity response body: %w", err)
	}

	flat := map[string]interface{}{}

	if err := activity.FlattenAny(final, &flat); err != nil {
		return nil, err
	}

	for k, v := range flat {
		payload[k] = v
	}

	payload["activity"] = final

	return json.Marshal(payload)
}

// Submit is the typed flavor of SubmitSignedRequest: it decodes the
// resulting payload into a caller-chosen response shape.
func Submit[R any](c *Client, req *SignedRequest) (*R, error) {
	raw, err := c.SubmitSignedRequest(req)
	if err != nil {
		return nil, err
	}

	var out R

	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failure decoding response body: %w", err)
	}

	return &out, nil
}
