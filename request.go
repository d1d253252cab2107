// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"github.com/turnkey/apiclient/schema"
	"github.com/turnkey/apiclient/stamp"
)

// SignedRequest is the immutable bundle produced by stamping: the target
// URL, the exact serialized body bytes the signature covers, the stamp
// header pair, and the operation kind. It is decoupled from the act of
// sending, so it can be held, transported elsewhere, or submitted later
// through SubmitSignedRequest (e.g. in multi-party approval flows). The
// body must not be re-serialized, or the stamp becomes invalid.
type SignedRequest struct {
	URL   string
	Body  []byte
	Stamp *stamp.Stamp
	Kind  schema.Kind
}
