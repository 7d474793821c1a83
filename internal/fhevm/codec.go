// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fhevm

import (
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
)

// encodeValue serializes a plaintext into ciphertext bytes.
func encodeValue(v uint64) Ciphertext {
	return Ciphertext(strconv.FormatUint(v, 10))
}

// decodeValue is the inverse of encodeValue.
func decodeValue(data Ciphertext) (uint64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty data", ErrMalformedCiphertext)
	}

	n, err := uint256.FromDecimal(string(data))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: value exceeds 64 bits", ErrMalformedCiphertext)
	}
	return n.Uint64(), nil
}
