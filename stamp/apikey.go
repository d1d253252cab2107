// Copyright 2025 Contributors to the Turnkey API client project.
// SPDX-License-Identifier: Apache-2.0
package stamp

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scheme identifies the signature scheme carried inside the stamp value.
const Scheme = "SIGNATURE_SCHEME_TK_API_P256"

// ConfigurationError reports an API key whose public key does not match
// the one derived from its private key. It is raised before any signature
// is produced or any network I/O takes place.
type ConfigurationError struct {
	Expected string // public key supplied in the configuration
	Derived  string // public key derived from the private key
}

func (o *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"bad API key: expected public key %s, derived %s",
		o.Expected, o.Derived,
	)
}

// APIKeyStamper stamps request bodies using a P-256 API key pair. The
// public key is the hex encoding of the compressed curve point, the
// private key the hex encoding of the scalar. Key material is read-only
// after construction, so a single APIKeyStamper is safe for concurrent
// use.
type APIKeyStamper struct {
	APIPublicKey  string
	APIPrivateKey string
}

// Configure populates the stamper from a config map.
func (o *APIKeyStamper) Configure(cfg map[string]interface{}) error {
	decoded := struct {
		APIPublicKey  string                 `mapstructure:"api_public_key"`
		APIPrivateKey string                 `mapstructure:"api_private_key"`
		Rest          map[string]interface{} `mapstructure:",remain"`
	}{}

	if err := mapstructure.Decode(cfg, &decoded); err != nil {
		return err
	}

	o.APIPublicKey = decoded.APIPublicKey
	o.APIPrivateKey = decoded.APIPrivateKey

	if err := o.validate(); err != nil {
		return err
	}

	if len(decoded.Rest) > 0 {
		var unexpected []string
		for k := range decoded.Rest {
			unexpected = append(unexpected, k)
		}
		return fmt.Errorf("unexpected fields in config: %s",
			strings.Join(unexpected, ", "))
	}

	return nil
}

// Stamp signs body with ECDSA/SHA-256 and returns the X-Stamp header
// pair. The signature covers exactly the supplied bytes.
func (o *APIKeyStamper) Stamp(body []byte) (*Stamp, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	key, err := o.signingKey()
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(body)

	sig, err := ecdsa.SignASN1(rand.Reader, key, digest[:])
	if err != nil {
		return nil, fmt.Errorf("signing request body: %w", err)
	}

	value := struct {
		PublicKey string `json:"publicKey"`
		Scheme    string `json:"scheme"`
		Signature string `json:"signature"`
	}{
		PublicKey: o.APIPublicKey,
		Scheme:    Scheme,
		Signature: hex.EncodeToString(sig),
	}

	blob, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding stamp value: %w", err)
	}

	return &Stamp{
		Header: HeaderName,
		Value:  base64.RawURLEncoding.EncodeToString(blob),
	}, nil
}

// signingKey reconstructs the ECDSA private key from the hex scalar and
// checks that the configured public key matches the derived one.
func (o *APIKeyStamper) signingKey() (*ecdsa.PrivateKey, error) {
	scalar, err := hex.DecodeString(o.APIPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("decoding private key hex: %w", err)
	}

	curve := elliptic.P256()

	d := new(big.Int).SetBytes(scalar)
	if d.Sign() <= 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, errors.New("private key scalar out of range for P-256")
	}

	key := &ecdsa.PrivateKey{
		D: d,
		PublicKey: ecdsa.PublicKey{
			Curve: curve,
		},
	}
	key.PublicKey.X, key.PublicKey.Y = curve.ScalarBaseMult(d.Bytes())

	derived := hex.EncodeToString(
		elliptic.MarshalCompressed(curve, key.PublicKey.X, key.PublicKey.Y),
	)

	if !strings.EqualFold(derived, o.APIPublicKey) {
		return nil, &ConfigurationError{
			Expected: o.APIPublicKey,
			Derived:  derived,
		}
	}

	return key, nil
}

func (o *APIKeyStamper) validate() error {
	if o.APIPublicKey == "" {
		return errors.New("missing API public key")
	}

	if o.APIPrivateKey == "" {
		return errors.New("missing API private key")
	}

	return nil
}
