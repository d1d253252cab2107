// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"errors"

	"github.com/turnkey/apiclient/schema"
)

// Activity decisions approve or reject a pending activity on behalf of a
// consensus quorum member. They carry the unversioned activity-type tag
// and, unlike activities, are not polled: the decided activity snapshot
// is returned as-is.

// ApproveActivity approves the pending activity identified by its
// fingerprint.
func (c *Client) ApproveActivity(body *ApproveActivityBody) (*ApproveActivityResponse, error) {
	req, err := c.StampApproveActivity(body)
	if err != nil {
		return nil, err
	}

	var resp ApproveActivityResponse

	if err := c.send(req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StampApproveActivity builds and stamps an approveActivity request
// without sending it.
func (c *Client) StampApproveActivity(body *ApproveActivityBody) (*SignedRequest, error) {
	if body == nil {
		return nil, errors.New("no input supplied")
	}

	return c.stampActivity(
		schema.ApproveActivity,
		schema.ApproveActivity.ActivityType,
		body.OrganizationID,
		body.TimestampMs,
		body,
	)
}

// RejectActivity rejects the pending activity identified by its
// fingerprint.
func (c *Client) RejectActivity(body *RejectActivityBody) (*RejectActivityResponse, error) {
	req, err := c.StampRejectActivity(body)
	if err != nil {
		return nil, err
	}

	var resp RejectActivityResponse

	if err := c.send(req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StampRejectActivity builds and stamps a rejectActivity request without
// sending it.
func (c *Client) StampRejectActivity(body *RejectActivityBody) (*SignedRequest, error) {
	if body == nil {
		return nil, errors.New("no input supplied")
	}

	return c.stampActivity(
		schema.RejectActivity,
		schema.RejectActivity.ActivityType,
		body.OrganizationID,
		body.TimestampMs,
		body,
	)
}
