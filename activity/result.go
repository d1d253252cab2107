// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package activity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	"github.com/mitchellh/mapstructure"
)

var resultFieldRegexp = regexp.MustCompile(`Result(V[0-9]+)?$`)

// Flatten copies the fields of the named result variant out of a
// completed activity into out, which is expected to be a pointer to the
// caller-visible response struct. The result field name must be the
// resolved latest-versioned name for the operation (e.g.
// "createApiKeysResultV2").
//
// Absence of a result is not an error: if the activity is not completed,
// has no result payload, or the named field is missing or null, out is
// left untouched.
func Flatten(act *Activity, resultField string, out interface{}) error {
	if act == nil || act.Status != StatusCompleted || act.Result == nil {
		return nil
	}

	raw, ok := act.Result[resultField]
	if !ok || isJSONNull(raw) {
		return nil
	}

	return decodeResult(raw, out)
}

// FlattenAny is the fallback used by the generic signed-request path,
// where the caller does not know the operation's result field name in
// advance. It scans the result union, in lexical key order, for the
// first non-null field whose name ends in "Result" or a versioned
// variant thereof ("ResultV2", ...) and flattens that one. This assumes
// exactly one result variant is populated, which the protocol does not
// guarantee; prefer Flatten with an explicit field name whenever one is
// available.
func FlattenAny(act *Activity, out interface{}) error {
	if act == nil || act.Status != StatusCompleted || act.Result == nil {
		return nil
	}

	keys := make([]string, 0, len(act.Result))
	for k := range act.Result {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !resultFieldRegexp.MatchString(k) {
			continue
		}

		if raw := act.Result[k]; !isJSONNull(raw) {
			return decodeResult(raw, out)
		}
	}

	return nil
}

// decodeResult unmarshals a result variant and maps its fields onto out,
// honoring the json struct tags of the destination type.
func decodeResult(raw json.RawMessage, out interface{}) error {
	var fields map[string]interface{}

	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("parsing activity result: %w", err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return fmt.Errorf("building result decoder: %w", err)
	}

	if err := dec.Decode(fields); err != nil {
		return fmt.Errorf("flattening activity result: %w", err)
	}

	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
