// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0
package stamp

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// Verify checks that st is a valid stamp over body. It decodes the header
// value, checks the embedded scheme, and verifies the ECDSA signature
// under the embedded public key. Useful to sanity-check a stamp before
// forwarding a signed request produced by another party.
func Verify(body []byte, st *Stamp) error {
	if st == nil {
		return errors.New("no stamp supplied")
	}

	blob, err := base64.RawURLEncoding.DecodeString(st.Value)
	if err != nil {
		return fmt.Errorf("decoding stamp value: %w", err)
	}

	var value struct {
		PublicKey string `json:"publicKey"`
		Scheme    string `json:"scheme"`
		Signature string `json:"signature"`
	}

	if err := json.Unmarshal(blob, &value); err != nil {
		return fmt.Errorf("parsing stamp value: %w", err)
	}

	if value.Scheme != Scheme {
		return fmt.Errorf("unexpected signature scheme %q", value.Scheme)
	}

	point, err := hex.DecodeString(value.PublicKey)
	if err != nil {
		return fmt.Errorf("decoding public key hex: %w", err)
	}

	curve := elliptic.P256()

	x, y := elliptic.UnmarshalCompressed(curve, point)
	if x == nil {
		return errors.New("malformed compressed public key")
	}

	sig, err := hex.DecodeString(value.Signature)
	if err != nil {
		return fmt.Errorf("decoding signature hex: %w", err)
	}

	digest := sha256.Sum256(body)

	pub := &ecdsa.PublicKey{Curve: curve, X: x, Y: y}
	if !ecdsa.VerifyASN1(pub, digest[:], sig) {
		return errors.New("signature verification failed")
	}

	return nil
}
