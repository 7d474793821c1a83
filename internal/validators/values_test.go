// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
)

// ---------------------------------------------------------------------------
// ParseEncryptionValue
// ---------------------------------------------------------------------------

func TestParseEncryptionValue(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    uint64
		wantMsg string
	}{
		{name: "json number", input: json.Number("42"), want: 42},
		{name: "float", input: float64(42), want: 42},
		{name: "numeric string", input: " 7 ", want: 7},
		{name: "int", input: 3, want: 3},
		{name: "uint64 max", input: json.Number("18446744073709551615"), want: math.MaxUint64},
		{name: "exponent form", input: json.Number("1e3"), want: 1000},
		{name: "zero", input: json.Number("0"), want: 0},
		{name: "nil", input: nil, wantMsg: "Value is required"},
		{name: "negative", input: json.Number("-1"), wantMsg: "Value must be non-negative"},
		{name: "negative int", input: -5, wantMsg: "Value must be non-negative"},
		{name: "not a number", input: "abc", wantMsg: "Value must be a valid number"},
		{name: "empty string", input: "", wantMsg: "Value must be a valid number"},
		{name: "NaN string", input: "NaN", wantMsg: "Value must be a valid number"},
		{name: "NaN float", input: math.NaN(), wantMsg: "Value must be a valid number"},
		{name: "infinite", input: math.Inf(1), wantMsg: "Value must be finite"},
		{name: "overflowing exponent", input: json.Number("1e400"), wantMsg: "Value must be finite"},
		{name: "fraction", input: json.Number("42.5"), wantMsg: "Value must be an integer"},
		{name: "fraction above 2^53", input: json.Number("9007199254740993.5"), wantMsg: "Value must be an integer"},
		{name: "fraction near uint64 max", input: json.Number("18446744073709549568.25"), wantMsg: "Value must be an integer"},
		{name: "underflow", input: json.Number("1e-400"), wantMsg: "Value must be an integer"},
		{name: "integral decimal", input: json.Number("42.0"), want: 42},
		{name: "integral exponent", input: json.Number("1.5e1"), want: 15},
		{name: "exact above 2^53", input: json.Number("9007199254740993.0"), want: 9007199254740993},
		{name: "too large", input: json.Number("18446744073709551616"), wantMsg: "Value exceeds the 64-bit range"},
		{name: "bool", input: true, wantMsg: "Value must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEncryptionValue(tt.input)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEncryptionValue(t *testing.T) {
	assert.Equal(t, Result{Valid: true}, ValidateEncryptionValue(json.Number("42")))
	assert.Equal(t, Result{Valid: false, Error: "Value must be non-negative"}, ValidateEncryptionValue(json.Number("-1")))
}

func TestValidationError_Unwrap(t *testing.T) {
	_, err := ParseEncryptionValue(nil)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, FieldValue, vErr.Field)
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(errors.New("other")))
}

func TestValidateNumericInput(t *testing.T) {
	assert.True(t, ValidateNumericInput("3.14").Valid)
	assert.True(t, ValidateNumericInput("-2").Valid)
	assert.False(t, ValidateNumericInput("abc").Valid)
	assert.Equal(t, "Input must be a finite number", ValidateNumericInput("1e400").Error)
}

// ---------------------------------------------------------------------------
// ParseValues
// ---------------------------------------------------------------------------

func batchOf(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = json.Number("1")
	}
	return out
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantLen int
		wantMsg string
	}{
		{name: "single", input: batchOf(1), wantLen: 1},
		{name: "max", input: batchOf(MaxBatchSize), wantLen: MaxBatchSize},
		{name: "typed slice", input: []uint64{1, 2, 3}, wantLen: 3},
		{name: "empty", input: []any{}, wantMsg: "values array cannot be empty"},
		{name: "too many", input: batchOf(MaxBatchSize + 1), wantMsg: "Maximum 100 values allowed per batch"},
		{name: "not an array", input: "1,2,3", wantMsg: "values must be an array"},
		{name: "missing", input: nil, wantMsg: "values must be an array"},
		{name: "bad item", input: []any{json.Number("1"), json.Number("-2")}, wantMsg: "Invalid value at index 1: Value must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValues(tt.input)
			if tt.wantMsg != "" {
				require.ErrorIs(t, err, ErrValidation)
				assert.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestParseValues_PreservesOrder(t *testing.T) {
	got, err := ParseValues([]any{json.Number("3"), "1", float64(2)})
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 1, 2}, got)
}

func TestValidateArrayOfNumbers(t *testing.T) {
	assert.True(t, ValidateArrayOfNumbers(batchOf(5)).Valid)
	assert.False(t, ValidateArrayOfNumbers(batchOf(0)).Valid)
}

// ---------------------------------------------------------------------------
// Addresses, networks, sanitizing
// ---------------------------------------------------------------------------

func TestValidateContractAddress(t *testing.T) {
	assert.True(t, ValidateContractAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3").Valid)
	assert.Equal(t, "Contract address is required", ValidateContractAddress("").Error)
	assert.Equal(t, "Invalid contract address format", ValidateContractAddress("0x123").Error)
	assert.False(t, IsValidAddress("5FbDB2315678afecb367f032d93F642f64180aa3"))
}

func TestValidateNetwork(t *testing.T) {
	for _, n := range []string{"sepolia", "mainnet", "localhost", "hardhat"} {
		assert.True(t, ValidateNetwork(n).Valid, n)
	}
	assert.False(t, ValidateNetwork("goerli").Valid)
	assert.Equal(t, "Network is required", ValidateNetwork("").Error)
}

func TestValidateEncryptedData(t *testing.T) {
	assert.False(t, ValidateEncryptedData(nil).Valid)
	assert.False(t, ValidateEncryptedData(&fhevm.EncryptedValue{}).Valid)
	assert.True(t, ValidateEncryptedData(&fhevm.EncryptedValue{Data: fhevm.Ciphertext("1")}).Valid)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", SanitizeInput(`  <script>alert(1)</script> `))
	assert.Equal(t, "add", SanitizeInput(`"add'`))
}
