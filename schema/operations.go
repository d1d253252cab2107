// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package schema

import "fmt"

// Kind classifies an API operation.
type Kind string

const (
	KindQuery            Kind = "query"
	KindActivity         Kind = "activity"
	KindActivityDecision Kind = "activityDecision"
	KindNoop             Kind = "noop"
)

// String representation of the Kind
func (o *Kind) String() string {
	return string(*o)
}

// Set the value of the Kind
func (o *Kind) Set(v string) error {
	switch v {
	case "query":
		*o = KindQuery
	case "activity":
		*o = KindActivity
	case "activityDecision":
		*o = KindActivityDecision
	case "noop":
		*o = KindNoop
	default:
		return fmt.Errorf("unexpected Kind %q", v)
	}

	return nil
}

// Type returns the string representing the type name (used by pflag).
func (o *Kind) Type() string {
	return "Kind"
}

// Operation is the descriptor the generator emits for one API operation.
// For activities, ActivityType is the unversioned tag, VersionedType the
// resolved latest-versioned tag placed in the request body, and
// ResultField the resolved latest result field name inside the activity
// result union. Activity decisions carry their unversioned tag only.
type Operation struct {
	Name          string
	Path          string
	Kind          Kind
	ActivityType  string
	VersionedType string
	ResultField   string
}

var (
	GetWhoami = Operation{
		Name: "getWhoami",
		Path: "/public/v1/query/whoami",
		Kind: KindQuery,
	}

	GetActivity = Operation{
		Name: "getActivity",
		Path: "/public/v1/query/get_activity",
		Kind: KindQuery,
	}

	ListActivities = Operation{
		Name: "listActivities",
		Path: "/public/v1/query/list_activities",
		Kind: KindQuery,
	}

	CreateAPIKeys = Operation{
		Name:          "createApiKeys",
		Path:          "/public/v1/submit/create_api_keys",
		Kind:          KindActivity,
		ActivityType:  "ACTIVITY_TYPE_CREATE_API_KEYS",
		VersionedType: "ACTIVITY_TYPE_CREATE_API_KEYS_V2",
		ResultField:   "createApiKeysResultV2",
	}

	DeleteAPIKeys = Operation{
		Name:          "deleteApiKeys",
		Path:          "/public/v1/submit/delete_api_keys",
		Kind:          KindActivity,
		ActivityType:  "ACTIVITY_TYPE_DELETE_API_KEYS",
		VersionedType: "ACTIVITY_TYPE_DELETE_API_KEYS",
		ResultField:   "deleteApiKeysResult",
	}

	SignRawPayload = Operation{
		Name:          "signRawPayload",
		Path:          "/public/v1/submit/sign_raw_payload",
		Kind:          KindActivity,
		ActivityType:  "ACTIVITY_TYPE_SIGN_RAW_PAYLOAD",
		VersionedType: "ACTIVITY_TYPE_SIGN_RAW_PAYLOAD_V2",
		ResultField:   "signRawPayloadResultV2",
	}

	SignTransaction = Operation{
		Name:          "signTransaction",
		Path:          "/public/v1/submit/sign_transaction",
		Kind:          KindActivity,
		ActivityType:  "ACTIVITY_TYPE_SIGN_TRANSACTION",
		VersionedType: "ACTIVITY_TYPE_SIGN_TRANSACTION_V2",
		ResultField:   "signTransactionResultV2",
	}

	ApproveActivity = Operation{
		Name:         "approveActivity",
		Path:         "/public/v1/submit/approve_activity",
		Kind:         KindActivityDecision,
		ActivityType: "ACTIVITY_TYPE_APPROVE_ACTIVITY",
	}

	RejectActivity = Operation{
		Name:         "rejectActivity",
		Path:         "/public/v1/submit/reject_activity",
		Kind:         KindActivityDecision,
		ActivityType: "ACTIVITY_TYPE_REJECT_ACTIVITY",
	}
)

var operations = []Operation{
	GetWhoami,
	GetActivity,
	ListActivities,
	CreateAPIKeys,
	DeleteAPIKeys,
	SignRawPayload,
	SignTransaction,
	ApproveActivity,
	RejectActivity,
}

// Operations returns the descriptors of every operation the client
// exposes.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// Lookup returns the descriptor for the named operation.
func Lookup(name string) (*Operation, error) {
	for i := range operations {
		if operations[i].Name == name {
			return &operations[i], nil
		}
	}

	return nil, fmt.Errorf("unknown operation %q", name)
}
