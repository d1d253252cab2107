// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package activity

import "encoding/json"

// Status is the lifecycle state of a server-side activity.
type Status string

const (
	StatusCreated          Status = "ACTIVITY_STATUS_CREATED"
	StatusPending          Status = "ACTIVITY_STATUS_PENDING"
	StatusConsensusNeeded  Status = "ACTIVITY_STATUS_CONSENSUS_NEEDED"
	StatusCompleted        Status = "ACTIVITY_STATUS_COMPLETED"
	StatusFailed           Status = "ACTIVITY_STATUS_FAILED"
	StatusRejected         Status = "ACTIVITY_STATUS_REJECTED"
	StatusConsensusTimeout Status = "ACTIVITY_STATUS_CONSENSUS_TIMEOUT"
)

// Terminal reports whether no further state transition can occur from
// this status.
func (o Status) Terminal() bool {
	switch o {
	case StatusCompleted, StatusFailed, StatusRejected, StatusConsensusTimeout:
		return true
	default:
		return false
	}
}

// Activity is a snapshot of a server-side asynchronous unit of work
// created by a mutating call. The client only ever observes snapshots;
// it never mutates one.
type Activity struct {
	ID          string `json:"id"`
	Status      Status `json:"status"`
	Type        string `json:"type"`
	Fingerprint string `json:"fingerprint,omitempty"`

	// Result is the versioned result union, keyed by a per-operation,
	// per-version field name (e.g. "createApiKeysResultV2"). It is kept
	// opaque here; see Flatten.
	Result map[string]json.RawMessage `json:"result,omitempty"`
}
