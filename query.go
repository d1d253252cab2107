// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"errors"

	"github.com/turnkey/apiclient/schema"
)

// GetWhoami resolves the identity behind the configured API key. A nil
// body scopes the query to the client's default organization.
func (c *Client) GetWhoami(body *GetWhoamiBody) (*GetWhoamiResponse, error) {
	req, err := c.StampGetWhoami(body)
	if err != nil {
		return nil, err
	}

	var resp GetWhoamiResponse

	if err := c.send(req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StampGetWhoami builds and stamps a whoami query without sending it.
func (c *Client) StampGetWhoami(body *GetWhoamiBody) (*SignedRequest, error) {
	b := GetWhoamiBody{}
	if body != nil {
		b = *body
	}

	b.OrganizationID = c.organizationID(b.OrganizationID)

	return c.stampBody(schema.GetWhoami, &b)
}

// GetActivity fetches the current snapshot of an activity. This is also
// the query the activity poller runs.
func (c *Client) GetActivity(body *GetActivityBody) (*GetActivityResponse, error) {
	req, err := c.StampGetActivity(body)
	if err != nil {
		return nil, err
	}

	var resp GetActivityResponse

	if err := c.send(req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StampGetActivity builds and stamps an activity status query without
// sending it.
func (c *Client) StampGetActivity(body *GetActivityBody) (*SignedRequest, error) {
	if body == nil {
		return nil, errors.New("no input supplied")
	}

	b := *body
	b.OrganizationID = c.organizationID(b.OrganizationID)

	return c.stampBody(schema.GetActivity, &b)
}

// ListActivities lists the activities of an organization, optionally
// filtered by status. A nil body lists the default organization's
// activities.
func (c *Client) ListActivities(body *ListActivitiesBody) (*ListActivitiesResponse, error) {
	req, err := c.StampListActivities(body)
	if err != nil {
		return nil, err
	}

	var resp ListActivitiesResponse

	if err := c.send(req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// StampListActivities builds and stamps a list-activities query without
// sending it.
func (c *Client) StampListActivities(body *ListActivitiesBody) (*SignedRequest, error) {
	b := ListActivitiesBody{}
	if body != nil {
		b = *body
	}

	b.OrganizationID = c.organizationID(b.OrganizationID)

	return c.stampBody(schema.ListActivities, &b)
}
