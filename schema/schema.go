// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

// Package schema carries the per-operation data the code generator
// derives from the API schema: HTTP paths, operation kinds, versioned
// activity-type tags and result field names. The rest of the client
// consumes this as pure data and never re-derives it at call time.
package schema

import (
	"regexp"
	"strings"
)

// Latest describes the highest-versioned variant of a schema definition
// base name.
type Latest struct {
	FullName  string // schema name, e.g. "v1CreateApiKeysResultV2"
	FieldName string // wire field name, e.g. "createApiKeysResultV2"
	Suffix    string // version suffix, "" for the unversioned variant
}

var defRegexp = regexp.MustCompile(`^v\d+([A-Za-z0-9]+?)(V\d+)?$`)

// ResolveLatest selects, for every definition base name in defs, the
// variant with the lexicographically greatest version suffix (the empty
// suffix sorts lowest). The selection is deterministic and must be
// recomputed whenever the definition set changes; it is never persisted.
func ResolveLatest(defs []string) map[string]Latest {
	latest := make(map[string]Latest)

	for _, def := range defs {
		m := defRegexp.FindStringSubmatch(def)
		if m == nil {
			continue
		}

		base, suffix := m[1], m[2]

		if cur, ok := latest[base]; ok && suffix <= cur.Suffix {
			continue
		}

		latest[base] = Latest{
			FullName:  def,
			FieldName: strings.ToLower(base[:1]) + base[1:] + suffix,
			Suffix:    suffix,
		}
	}

	return latest
}
