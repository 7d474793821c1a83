// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fhevm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Ciphertext is the opaque payload of an EncryptedValue. It is rendered as
// 0x-prefixed hex in JSON and also accepts an array of byte numbers.
type Ciphertext []byte

func (c Ciphertext) MarshalText() ([]byte, error) {
	return hexutil.Bytes(c).MarshalText()
}

func (c *Ciphertext) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = nil
		return nil
	}

	if len(b) > 0 && b[0] == '[' {
		var raw []int
		if err := json.Unmarshal(b, &raw); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
		}
		out := make([]byte, len(raw))
		for i, v := range raw {
			if v < 0 || v > 0xff {
				return fmt.Errorf("%w: byte %d out of range", ErrMalformedCiphertext, i)
			}
			out[i] = byte(v)
		}
		*c = out
		return nil
	}

	var h hexutil.Bytes
	if err := h.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}
	*c = Ciphertext(h)
	return nil
}

func (c Ciphertext) String() string {
	return hexutil.Encode(c)
}

// EncryptionMetadata records when and by whom a value was encrypted.
type EncryptionMetadata struct {
	EncryptedAt time.Time `json:"encryptedAt"`
	EncryptedBy string    `json:"encryptedBy,omitempty"`
}

// EncryptedValue is the output of Encrypt. Data is only meaningful to the
// decryption calls of this package.
type EncryptedValue struct {
	Data      Ciphertext          `json:"data"`
	Signature string              `json:"signature"`
	Metadata  *EncryptionMetadata `json:"metadata,omitempty"`
}

// DecryptionMetadata records when and by whom a value was decrypted.
type DecryptionMetadata struct {
	DecryptedAt time.Time `json:"decryptedAt"`
	DecryptedBy string    `json:"decryptedBy,omitempty"`
}

// DecryptionResult is the output of UserDecrypt and PublicDecrypt. Proof is
// set only for user decryption.
type DecryptionResult struct {
	Value    uint64              `json:"value"`
	Proof    string              `json:"proof,omitempty"`
	Metadata *DecryptionMetadata `json:"metadata,omitempty"`
}

// EncryptionType is the encrypted integer width a plaintext must fit.
type EncryptionType string

const (
	EUint8  EncryptionType = "euint8"
	EUint16 EncryptionType = "euint16"
	EUint32 EncryptionType = "euint32"
	EUint64 EncryptionType = "euint64"
)

// DefaultEncryptionType is used when a request names no type.
const DefaultEncryptionType = EUint32

// EncryptionTypes lists the supported types from narrowest to widest.
var EncryptionTypes = []EncryptionType{EUint8, EUint16, EUint32, EUint64}

// ParseEncryptionType accepts both "euint32" and "uint32" spellings. An
// empty string yields DefaultEncryptionType.
func ParseEncryptionType(s string) (EncryptionType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultEncryptionType, nil
	}
	if !strings.HasPrefix(s, "e") {
		s = "e" + s
	}
	for _, t := range EncryptionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEncryptionType, s)
}

// Bits returns the bit width of the type.
func (t EncryptionType) Bits() int {
	switch t {
	case EUint8:
		return 8
	case EUint16:
		return 16
	case EUint32:
		return 32
	case EUint64:
		return 64
	default:
		return 0
	}
}

// Plain returns the Solidity spelling without the "e" prefix.
func (t EncryptionType) Plain() string {
	return strings.TrimPrefix(string(t), "e")
}

// Max returns the largest plaintext the type can hold.
func (t EncryptionType) Max() uint64 {
	bits := t.Bits()
	if bits == 0 {
		return 0
	}
	if bits == 64 {
		return ^uint64(0)
	}
	return 1<<bits - 1
}

// Check returns ErrValueOutOfTypeRange when v does not fit the type.
func (t EncryptionType) Check(v uint64) error {
	if t.Bits() == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownEncryptionType, string(t))
	}
	if v > t.Max() {
		return fmt.Errorf("%w: %d exceeds %s max %d", ErrValueOutOfTypeRange, v, t, t.Max())
	}
	return nil
}
