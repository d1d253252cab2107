// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/turnkey/apiclient/activity"
	"github.com/turnkey/apiclient/common"
	"github.com/turnkey/apiclient/schema"
	"github.com/turnkey/apiclient/stamp"
)

// Config holds the construction-time configuration of a Client. Each
// Client owns its own Config copy, so multiple clients with different
// defaults can coexist in one process.
type Config struct {
	// BaseURL is the API endpoint base, e.g. "https://api.turnkey.example".
	BaseURL string

	// Stamper signs request bodies. Typically a *stamp.APIKeyStamper.
	Stamper stamp.Stamper

	// OrganizationID is the default organization scope, injected into
	// every request body that does not carry one of its own.
	OrganizationID string

	// Client is the HTTP(s) connection configuration. The default
	// common.NewClient() is used when nil.
	Client *common.Client

	// PollInterval is the delay between activity status fetches. Zero
	// means activity.DefaultInterval; a negative value disables the
	// delay (useful in tests).
	PollInterval time.Duration

	// MaxPollRetries bounds the number of activity status fetches.
	// Zero means activity.DefaultMaxRetries.
	MaxPollRetries int
}

// Client is the facade over the signing-and-custody API: it builds
// request bodies, stamps them, submits them, and for activities drives
// the polling loop and result flattening. A Client is safe for
// concurrent use.
type Client struct {
	cfg  Config
	base *url.URL
}

// NewClient validates cfg and instantiates a Client, filling in the
// defaults for any optional field left unset.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("bad configuration: no API endpoint")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("bad configuration: malformed base URL: %w", err)
	}

	if !base.IsAbs() {
		return nil, errors.New("bad configuration: base URL is not absolute")
	}

	if cfg.Stamper == nil {
		return nil, errors.New("bad configuration: no stamper supplied")
	}

	if cfg.Client == nil {
		cfg.Client = common.NewClient()
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = activity.DefaultInterval
	}

	if cfg.MaxPollRetries == 0 {
		cfg.MaxPollRetries = activity.DefaultMaxRetries
	}

	return &Client{cfg: cfg, base: base}, nil
}

// endpoint resolves an operation path against the configured base URL.
func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.base.String(), "/") + path
}

// organizationID applies the override rule: an organization supplied in
// the call input always wins over the client-wide default.
func (c *Client) organizationID(override string) string {
	if override != "" {
		return override
	}

	return c.cfg.OrganizationID
}

// timestampMs applies the caller-supplied activity timestamp, defaulting
// to the current wall clock in milliseconds.
func timestampMs(override string) string {
	if override != "" {
		return override
	}

	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// stampBody serializes body and stamps the resulting bytes, producing
// the immutable envelope for op. The returned body bytes are exactly the
// signed ones and must be transmitted untouched.
func (c *Client) stampBody(op schema.Operation, body interface{}) (*SignedRequest, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("serializing %s request body: %w", op.Name, err)
	}

	st, err := c.cfg.Stamper.Stamp(raw)
	if err != nil {
		return nil, err
	}

	return &SignedRequest{
		URL:   c.endpoint(op.Path),
		Body:  raw,
		Stamp: st,
		Kind:  op.Kind,
	}, nil
}

// send submits a signed request and decodes a 2xx response body into
// out. Transport failures and non-2xx statuses surface as
// *common.NetworkError.
func (c *Client) send(req *SignedRequest, out interface{}) error {
	res, err := c.cfg.Client.Post(
		req.URL,
		map[string]string{req.Stamp.Header: req.Stamp.Value},
		req.Body,
	)
	if err != nil {
		return err
	}

	if err := common.CheckResponse(res); err != nil {
		return err
	}

	if err := common.DecodeJSONBody(res, out); err != nil {
		return fmt.Errorf("failure decoding response body: %w", err)
	}

	return nil
}

// poller builds the activity poller wired to the activity status query.
func (c *Client) poller() *activity.Poller {
	return &activity.Poller{
		Interval:   c.cfg.PollInterval,
		MaxRetries: c.cfg.MaxPollRetries,
		Fetch: func(activityID string) (*activity.Activity, error) {
			resp, err := c.GetActivity(&GetActivityBody{ActivityID: activityID})
			if err != nil {
				return nil, err
			}

			return resp.Activity, nil
		},
	}
}

// runActivity submits a stamped activity request, then polls the
// returned activity until it is terminal or the retry ceiling is hit.
func (c *Client) runActivity(req *SignedRequest) (*activity.Activity, error) {
	var initial GetActivityResponse

	if err := c.send(req, &initial); err != nil {
		return nil, err
	}

	return c.poller().Poll(initial.Activity)
}
