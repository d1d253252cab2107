// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"errors"

	"github.com/turnkey/apiclient/activity"
	"github.com/turnkey/apiclient/schema"
)

// activityEnvelope is the outer body shape of every activity and
// activity-decision request. Parameters holds the operation-specific
// input; organizationId and timestampMs are lifted out of it.
type activityEnvelope struct {
	Type           string      `json:"type"`
	TimestampMs    string      `json:"timestampMs"`
	OrganizationID string      `json:"organizationId"`
	Parameters     interface{} `json:"parameters"`
}

func (c *Client) stampActivity(
	op schema.Operation,
	activityType string,
	orgID, tsMs string,
	params interface{},
) (*SignedRequest, error) {
	env := activityEnvelope{
		Type:           activityType,
		TimestampMs:    timestampMs(tsMs),
		OrganizationID: c.organizationID(orgID),
		Parameters:     params,
	}

	return c.stampBody(op, &env)
}

// CreateAPIKeys registers new API key public keys with a user, then
// polls the created activity and, on completion, flattens the created
// key IDs into the response.
func (c *Client) CreateAPIKeys(body *CreateAPIKeysBody) (*CreateAPIKeysResponse, error) {
	req, err := c.StampCreateAPIKeys(body)
	if err != nil {
		return nil, err
	}

	act, err := c.runActivity(req)
	if err != nil {
		return nil, err
	}

	resp := CreateAPIKeysResponse{Activity: act}

	if err := activity.Flatten(act, schema.CreateAPIKeys.ResultField, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StampCreateAPIKeys builds and stamps a createApiKeys request without
// sending it.
func (c *Client) StampCreateAPIKeys(body *CreateAPIKeysBody) (*SignedRequest, error) {
	if body == nil {
		return nil, errors.New("no input supplied")
	}

	return c.stampActivity(
		schema.CreateAPIKeys,
		schema.CreateAPIKeys.VersionedType,
		body.OrganizationID,
		body.TimestampMs,
		body,
	)
}

// DeleteAPIKeys removes API keys from a user.
func (c *Client) DeleteAPIKeys(body *DeleteAPIKeysBody) (*DeleteAPIKeysResponse, error) {
	req, err := c.StampDeleteAPIKeys(body)
	if err != nil {
		return nil, err
	}

	act, err := c.runActivity(req)
	if err != nil {
		return nil, err
	}

	resp := DeleteAPIKeysResponse{Activity: act}

	if err := activity.Flatten(act, schema.DeleteAPIKeys.ResultField, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StampDeleteAPIKeys builds and stamps a deleteApiKeys request without
// sending it.
func (c *Client) StampDeleteAPIKeys(body *DeleteAPIKeysBody) (*SignedRequest, error) {
	if body == nil {
		return nil, errors.New("no input supplied")
	}

	return c.stampActivity(
		schema.DeleteAPIKeys,
		schema.DeleteAPIKeys.VersionedType,
		body.OrganizationID,
		body.TimestampMs,
		body,
	)
}

// SignRawPayload signs an arbitrary payload with a custody-held key.
func (c *Client) SignRawPayload(body *SignRawPayloadBody) (*SignRawPayloadResponse, error) {
	req, err := c.StampSignRawPayload(body)
	if err != nil {
		return nil, err
	}

	act, err := c.runActivity(req)
	if err != nil {
		return nil, err
	}

	resp := SignRawPayloadResponse{Activity: act}

	if err := activity.Flatten(act, schema.SignRawPayload.ResultField, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StampSignRawPayload builds and stamps a signRawPayload request without
// sending it.
func (c *Client) StampSignRawPayload(body *SignRawPayloadBody) (*SignedRequest, error) {
	if body == nil {
		return nil, errors.New("no input supplied")
	}

	return c.stampActivity(
		schema.SignRawPayload,
		schema.SignRawPayload.VersionedType,
		body.OrganizationID,
		body.TimestampMs,
		body,
	)
}

// SignTransaction signs a serialized transaction with a custody-held
// key.
func (c *Client) SignTransaction(body *SignTransactionBody) (*SignTransactionResponse, error) {
	req, err := c.StampSignTransaction(body)
	if err != nil {
		return nil, err
	}

	act, err := c.runActivity(req)
	if err != nil {
		return nil, err
	}

	resp := SignTransactionResponse{Activity: act}

	if err := activity.Flatten(act, schema.SignTransaction.ResultField, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StampSignTransaction builds and stamps a signTransaction request
// without sending it.
func (c *Client) StampSignTransaction(body *SignTransactionBody) (*SignedRequest, error) {
	if body == nil {
		return nil, errors.New("no input supplied")
	}

	return c.stampActivity(
		schema.SignTransaction,
		schema.SignTransaction.VersionedType,
		body.OrganizationID,
		body.TimestampMs,
		body,
	)
}
