package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
)

// MaxBatchSize bounds the number of values in one batch request.
const MaxBatchSize = 100

// twoTo64 is the first float64 that does not fit in uint64.
const twoTo64 = 18446744073709551616.0

// Result is the boolean form of a validation, for callers that only need
// to report.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func resultOf(err error) Result {
	if err != nil {
		return Result{Valid: false, Error: err.Error()}
	}
	return Result{Valid: true}
}

// ParseEncryptionValue converts a loosely typed plaintext (JSON number,
// numeric string or Go integer) to uint64. The value must be present,
// numeric, finite, non-negative, integral and fit in 64 bits.
func ParseEncryptionValue(v any) (uint64, error) {
	switch value := v.(type) {
	case nil:
		return 0, invalid(FieldValue, "Value is required")
	case json.Number:
		return parseNumeric(value.String())
	case string:
		return parseNumeric(value)
	case float64:
		return fromFloat(value)
	case float32:
		return fromFloat(float64(value))
	case int:
		return fromInt(int64(value))
	case int32:
		return fromInt(int64(value))
	case int64:
		return fromInt(value)
	case uint:
		return uint64(value), nil
	case uint32:
		return uint64(value), nil
	case uint64:
		return value, nil
	default:
		return 0, invalid(FieldValue, "Value must be a number")
	}
}

// ValidateEncryptionValue reports whether v is an acceptable plaintext.
func ValidateEncryptionValue(v any) Result {
	_, err := ParseEncryptionValue(v)
	return resultOf(err)
}

// ValidateNumericInput reports whether s is a finite number.
func ValidateNumericInput(s string) Result {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	switch {
	case err != nil && !isRangeErr(err), math.IsNaN(f):
		return Result{Error: "Input must be a valid number"}
	case math.IsInf(f, 0):
		return Result{Error: "Input must be a finite number"}
	default:
		return Result{Valid: true}
	}
}

func parseNumeric(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	switch {
	case err != nil && !isRangeErr(err):
		return 0, invalid(FieldValue, "Value must be a valid number")
	case err != nil && f == 0:
		// underflow: a non-zero value closer to zero than any float64
		return 0, invalid(FieldValue, "Value must be an integer")
	}
	if _, err = fromFloat(f); err != nil {
		return 0, err
	}

	// f may have rounded a fraction away; decide on the exact decimal.
	r, ok := new(big.Rat).SetString(s)
	switch {
	case !ok:
		return 0, invalid(FieldValue, "Value must be a valid number")
	case !r.IsInt():
		return 0, invalid(FieldValue, "Value must be an integer")
	case !r.Num().IsUint64():
		return 0, invalid(FieldValue, "Value exceeds the 64-bit range")
	}
	return r.Num().Uint64(), nil
}

func isRangeErr(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)
}

func fromFloat(f float64) (uint64, error) {
	switch {
	case math.IsNaN(f):
		return 0, invalid(FieldValue, "Value must be a valid number")
	case math.IsInf(f, 0):
		return 0, invalid(FieldValue, "Value must be finite")
	case f < 0:
		return 0, invalid(FieldValue, "Value must be non-negative")
	case f != math.Trunc(f):
		return 0, invalid(FieldValue, "Value must be an integer")
	case f >= twoTo64:
		return 0, invalid(FieldValue, "Value exceeds the 64-bit range")
	}
	return uint64(f), nil
}

func fromInt(i int64) (uint64, error) {
	if i < 0 {
		return 0, invalid(FieldValue, "Value must be non-negative")
	}
	return uint64(i), nil
}

// ParseValues converts a decoded JSON array into plaintexts, enforcing
// 1..MaxBatchSize items.
func ParseValues(v any) ([]uint64, error) {
	var items []any
	switch value := v.(type) {
	case []any:
		items = value
	case []uint64:
		items = make([]any, len(value))
		for i, u := range value {
			items[i] = u
		}
	default:
		return nil, invalid(FieldValues, "values must be an array")
	}

	if len(items) == 0 {
		return nil, invalid(FieldValues, "values array cannot be empty")
	}
	if len(items) > MaxBatchSize {
		return nil, invalid(FieldValues, fmt.Sprintf("Maximum %d values allowed per batch", MaxBatchSize))
	}

	out := make([]uint64, len(items))
	for i, item := range items {
		u, err := ParseEncryptionValue(item)
		if err != nil {
			return nil, invalid(FieldValues, fmt.Sprintf("Invalid value at index %d: %s", i, err))
		}
		out[i] = u
	}
	return out, nil
}

// ValidateArrayOfNumbers reports whether v is an acceptable batch.
func ValidateArrayOfNumbers(v any) Result {
	_, err := ParseValues(v)
	return resultOf(err)
}

// ValidateContractAddress reports whether s is a 0x-prefixed 20-byte hex
// address.
func ValidateContractAddress(s string) Result {
	if s == "" {
		return Result{Error: "Contract address is required"}
	}
	if !fhevm.IsAddress(s) {
		return Result{Error: "Invalid contract address format"}
	}
	return Result{Valid: true}
}

// IsValidAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsValidAddress(s string) bool {
	return fhevm.IsAddress(s)
}

// ValidateNetwork accepts sepolia, mainnet, localhost and hardhat.
func ValidateNetwork(s string) Result {
	if s == "" {
		return Result{Error: "Network is required"}
	}
	if _, err := fhevm.ParseNetwork(s); err != nil {
		return Result{Error: "Invalid network. Must be one of: sepolia, mainnet, localhost, hardhat"}
	}
	return Result{Valid: true}
}

// ValidateEncryptedData checks that ev carries ciphertext bytes.
func ValidateEncryptedData(ev *fhevm.EncryptedValue) Result {
	if ev == nil || len(ev.Data) == 0 {
		return Result{Error: "Encrypted data is required"}
	}
	return Result{Valid: true}
}

var sanitizer = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "")

// SanitizeInput strips markup-significant characters and surrounding
// whitespace.
func SanitizeInput(s string) string {
	return strings.TrimSpace(sanitizer.Replace(s))
}
