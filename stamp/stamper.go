// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0
package stamp

// HeaderName is the HTTP header through which a stamp is conveyed. It is
// fixed by the API; only the header value depends on the payload.
const HeaderName = "X-Stamp"

// Stamp is the authentication header pair produced by signing a request
// body. It proves the origin of the exact body bytes it was computed over;
// re-serializing the body after stamping invalidates it.
type Stamp struct {
	Header string
	Value  string
}

// Stamper turns request body bytes into an authentication stamp. It
// performs no I/O.
type Stamper interface {
	Stamp(body []byte) (*Stamp, error)
}
