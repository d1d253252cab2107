// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a representative slice of the schema definition set the generator
// consumes
var testDefs = []string{
	"v1CreateApiKeysResult",
	"v1CreateApiKeysResultV2",
	"v1DeleteApiKeysResult",
	"v1SignRawPayloadResult",
	"v1SignRawPayloadResultV2",
	"v1SignTransactionResult",
	"v1SignTransactionResultV2",
	"v1ActivityStatus",
	"ExternalDataV1",
}

func TestResolveLatest_picks_greatest_suffix(t *testing.T) {
	latest := ResolveLatest(testDefs)

	got, ok := latest["CreateApiKeysResult"]
	require.True(t, ok)
	assert.Equal(t, "v1CreateApiKeysResultV2", got.FullName)
	assert.Equal(t, "createApiKeysResultV2", got.FieldName)
	assert.Equal(t, "V2", got.Suffix)
}

func TestResolveLatest_unversioned_variant(t *testing.T) {
	latest := ResolveLatest(testDefs)

	got, ok := latest["DeleteApiKeysResult"]
	require.True(t, ok)
	assert.Equal(t, "v1DeleteApiKeysResult", got.FullName)
	assert.Equal(t, "deleteApiKeysResult", got.FieldName)
	assert.Equal(t, "", got.Suffix)
}

func TestResolveLatest_empty_suffix_sorts_lowest(t *testing.T) {
	// order of definitions must not matter
	latest := ResolveLatest([]string{
		"v1SignRawPayloadResultV2",
		"v1SignRawPayloadResult",
	})

	got := latest["SignRawPayloadResult"]
	assert.Equal(t, "v1SignRawPayloadResultV2", got.FullName)
}

func TestResolveLatest_ignores_non_matching_names(t *testing.T) {
	latest := ResolveLatest([]string{"ExternalDataV1", "whoami"})
	assert.Empty(t, latest)
}

// The operation table is generator output; keep its resolved result
// fields consistent with what ResolveLatest would produce from the
// definition set.
func TestOperations_result_fields_match_resolution(t *testing.T) {
	latest := ResolveLatest(testDefs)

	resolved := make(map[string]bool)
	for _, l := range latest {
		resolved[l.FieldName] = true
	}

	for _, op := range Operations() {
		if op.Kind != KindActivity {
			continue
		}

		assert.True(t, resolved[op.ResultField],
			"stale result field %q for %s", op.ResultField, op.Name)
	}
}

func TestLookup_ok(t *testing.T) {
	op, err := Lookup("createApiKeys")
	require.NoError(t, err)

	assert.Equal(t, KindActivity, op.Kind)
	assert.Equal(t, "/public/v1/submit/create_api_keys", op.Path)
	assert.Equal(t, "ACTIVITY_TYPE_CREATE_API_KEYS_V2", op.VersionedType)
}

func TestLookup_unknown(t *testing.T) {
	expectedErr := `unknown operation "mintUnicorns"`

	_, err := Lookup("mintUnicorns")
	assert.EqualError(t, err, expectedErr)
}

func TestKind_Set_ok(t *testing.T) {
	var k Kind

	require.NoError(t, k.Set("activityDecision"))
	assert.Equal(t, KindActivityDecision, k)
	assert.Equal(t, "activityDecision", k.String())
	assert.Equal(t, "Kind", k.Type())
}

func TestKind_Set_unknown(t *testing.T) {
	var k Kind

	expectedErr := `unexpected Kind "mutation"`
	assert.EqualError(t, k.Set("mutation"), expectedErr)
}
