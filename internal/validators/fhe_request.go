package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/models"
)

// Field name constants used to scope validation of FHE requests.
const (
	// FieldValue targets the plaintext of an encrypt or verify request.
	FieldValue = "value"

	// FieldValues targets the plaintext list of a batch request.
	FieldValues = "values"

	// FieldType targets the encryption type; it also range-checks the value.
	FieldType = "type"

	// FieldEncrypted targets the ciphertext of a decrypt request.
	FieldEncrypted = "encrypted"

	// FieldSignature requires the ciphertext signature to be present.
	FieldSignature = "signature"

	FieldOperation = "operation"
	FieldOperands  = "operands"
)

// ComputeOperations lists the operations accepted by compute requests.
var ComputeOperations = []string{"add", "sub", "mul", "div", "min", "max", "eq", "ne", "lt", "le", "gt", "ge", "and", "or", "xor", "not", "neg"}

// FHERequestValidator validates the request models of the FHE endpoints.
type FHERequestValidator struct {
}

func NewFHERequestValidator() Validator {
	return &FHERequestValidator{}
}

// Validate dispatches on the request type. Both values and pointers are
// accepted.
func (v *FHERequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncryptRequest:
		return v.validateEncryptRequest(ctx, value, fields...)
	case *models.EncryptRequest:
		return v.validateEncryptRequest(ctx, *value, fields...)

	case models.DecryptRequest:
		return v.validateDecryptRequest(ctx, value, fields...)
	case *models.DecryptRequest:
		return v.validateDecryptRequest(ctx, *value, fields...)

	case models.BatchEncryptRequest:
		return v.validateBatchEncryptRequest(ctx, value, fields...)
	case *models.BatchEncryptRequest:
		return v.validateBatchEncryptRequest(ctx, *value, fields...)

	case models.ComputeRequest:
		return v.validateComputeRequest(ctx, value, fields...)
	case *models.ComputeRequest:
		return v.validateComputeRequest(ctx, *value, fields...)

	case models.VerifyRequest:
		return v.validateVerifyRequest(ctx, value, fields...)
	case *models.VerifyRequest:
		return v.validateVerifyRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FHERequestValidator) validateEncryptRequest(_ context.Context, req models.EncryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldValue, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldValue:
			if _, err := ParseEncryptionValue(req.Value); err != nil {
				return err
			}
		case FieldType:
			t, err := fhevm.ParseEncryptionType(req.Type)
			if err != nil {
				return invalid(FieldType, fmt.Sprintf("Unsupported encryption type %q", req.Type))
			}
			value, err := ParseEncryptionValue(req.Value)
			if err != nil {
				return err
			}
			if err := t.Check(value); err != nil {
				return invalid(FieldValue, fmt.Sprintf("Value %d exceeds the %s range (max %d)", value, t.Plain(), t.Max()))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FHERequestValidator) validateDecryptRequest(_ context.Context, req models.DecryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEncrypted}
	}

	for _, f := range fields {
		switch f {
		case FieldEncrypted:
			if res := ValidateEncryptedData(req.Encrypted); !res.Valid {
				return invalid(FieldEncrypted, res.Error)
			}
		case FieldSignature:
			if req.Encrypted == nil || req.Encrypted.Signature == "" {
				return invalid(FieldSignature, "encryptedData and signature are required")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FHERequestValidator) validateBatchEncryptRequest(_ context.Context, req models.BatchEncryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldValues}
	}

	for _, f := range fields {
		switch f {
		case FieldValues:
			if _, err := ParseValues(req.Values); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FHERequestValidator) validateComputeRequest(_ context.Context, req models.ComputeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperation, FieldOperands}
	}

	for _, f := range fields {
		switch f {
		case FieldOperation:
			op := SanitizeInput(req.Operation)
			if op == "" {
				return invalid(FieldOperation, "Operation and operands array are required")
			}
			if !slices.Contains(ComputeOperations, op) {
				return invalid(FieldOperation, fmt.Sprintf("Unsupported operation %q", op))
			}
		case FieldOperands:
			operands, ok := req.Operands.([]any)
			if !ok {
				return invalid(FieldOperands, "Operation and operands array are required")
			}
			if len(operands) == 0 {
				return invalid(FieldOperands, "Operands array cannot be empty")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FHERequestValidator) validateVerifyRequest(_ context.Context, req models.VerifyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldValue, FieldSignature}
	}

	for _, f := range fields {
		switch f {
		case FieldValue:
			if _, err := ParseEncryptionValue(req.Value); err != nil {
				return err
			}
		case FieldSignature:
			if req.Signature == "" {
				return invalid(FieldSignature, "Signature is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidationError reports whether err is a rejected input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
