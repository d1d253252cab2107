// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import "github.com/turnkey/apiclient/activity"

// Query bodies serialize flat; the facade fills OrganizationID with the
// client default when the caller leaves it empty.
//
// Activity bodies serialize as the "parameters" object of the activity
// envelope; OrganizationID and TimestampMs are lifted into the envelope
// itself and are therefore excluded from the parameters serialization.

type GetWhoamiBody struct {
	OrganizationID string `json:"organizationId"`
}

type GetWhoamiResponse struct {
	OrganizationID   string `json:"organizationId"`
	OrganizationName string `json:"organizationName"`
	UserID           string `json:"userId"`
	Username         string `json:"username"`
}

type GetActivityBody struct {
	OrganizationID string `json:"organizationId"`
	ActivityID     string `json:"activityId"`
}

type GetActivityResponse struct {
	Activity *activity.Activity `json:"activity"`
}

type ListActivitiesBody struct {
	OrganizationID string            `json:"organizationId"`
	FilterByStatus []activity.Status `json:"filterByStatus,omitempty"`
}

type ListActivitiesResponse struct {
	Activities []*activity.Activity `json:"activities"`
}

// APIKeyParams describes one API key to create.
type APIKeyParams struct {
	APIKeyName        string `json:"apiKeyName"`
	PublicKey         string `json:"publicKey"`
	CurveType         string `json:"curveType"`
	ExpirationSeconds string `json:"expirationSeconds,omitempty"`
}

type CreateAPIKeysBody struct {
	OrganizationID string `json:"-"`
	TimestampMs    string `json:"-"`

	UserID  string         `json:"userId"`
	APIKeys []APIKeyParams `json:"apiKeys"`
}

type CreateAPIKeysResponse struct {
	Activity  *activity.Activity `json:"activity"`
	APIKeyIDs []string           `json:"apiKeyIds,omitempty"`
}

type DeleteAPIKeysBody struct {
	OrganizationID string `json:"-"`
	TimestampMs    string `json:"-"`

	UserID    string   `json:"userId"`
	APIKeyIDs []string `json:"apiKeyIds"`
}

type DeleteAPIKeysResponse struct {
	Activity  *activity.Activity `json:"activity"`
	APIKeyIDs []string           `json:"apiKeyIds,omitempty"`
}

type SignRawPayloadBody struct {
	OrganizationID string `json:"-"`
	TimestampMs    string `json:"-"`

	SignWith     string `json:"signWith"`
	Payload      string `json:"payload"`
	Encoding     string `json:"encoding"`
	HashFunction string `json:"hashFunction"`
}

type SignRawPayloadResponse struct {
	Activity *activity.Activity `json:"activity"`
	R        string             `json:"r,omitempty"`
	S        string             `json:"s,omitempty"`
	V        string             `json:"v,omitempty"`
}

type SignTransactionBody struct {
	OrganizationID string `json:"-"`
	TimestampMs    string `json:"-"`

	SignWith            string `json:"signWith"`
	Type                string `json:"type"`
	UnsignedTransaction string `json:"unsignedTransaction"`
	// From serializes under the wire name "from".
	From string `json:"from,omitempty"`
}

type SignTransactionResponse struct {
	Activity          *activity.Activity `json:"activity"`
	SignedTransaction string             `json:"signedTransaction,omitempty"`
}

type ApproveActivityBody struct {
	OrganizationID string `json:"-"`
	TimestampMs    string `json:"-"`

	Fingerprint string `json:"fingerprint"`
}

type ApproveActivityResponse struct {
	Activity *activity.Activity `json:"activity"`
}

type RejectActivityBody struct {
	OrganizationID string `json:"-"`
	TimestampMs    string `json:"-"`

	Fingerprint string `json:"fingerprint"`
}

type RejectActivityResponse struct {
	Activity *activity.Activity `json:"activity"`
}
