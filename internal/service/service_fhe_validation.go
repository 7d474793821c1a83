package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fhevm/internal/validators"
	"github.com/MKhiriev/go-fhevm/models"
)

// FHEValidationService rejects malformed requests before they reach the
// wrapped FHEService. Status, Keys and Info take no input and pass through.
type FHEValidationService struct {
	inner     FHEService
	validator validators.Validator
}

func NewFHEValidationService() FHEServiceWrapper {
	return &FHEValidationService{
		validator: validators.NewFHERequestValidator(),
	}
}

func (v *FHEValidationService) Wrap(inner FHEService) FHEService {
	v.inner = inner
	return v
}

func (v *FHEValidationService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EncryptResult{}, fmt.Errorf("error during encrypt request validation: %w", err)
	}
	return v.inner.Encrypt(ctx, req)
}

func (v *FHEValidationService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DecryptResult{}, fmt.Errorf("error during decrypt request validation: %w", err)
	}
	return v.inner.Decrypt(ctx, req)
}

func (v *FHEValidationService) BatchEncrypt(ctx context.Context, req models.BatchEncryptRequest) (models.BatchEncryptResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.BatchEncryptResult{}, fmt.Errorf("error during batch request validation: %w", err)
	}
	return v.inner.BatchEncrypt(ctx, req)
}

func (v *FHEValidationService) Compute(ctx context.Context, req models.ComputeRequest) (models.ComputeResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ComputeResult{}, fmt.Errorf("error during compute request validation: %w", err)
	}
	return v.inner.Compute(ctx, req)
}

func (v *FHEValidationService) Verify(ctx context.Context, req models.VerifyRequest) (models.VerifyResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.VerifyResult{}, fmt.Errorf("error during verify request validation: %w", err)
	}
	return v.inner.Verify(ctx, req)
}

func (v *FHEValidationService) Status(ctx context.Context) models.ClientStatus {
	return v.inner.Status(ctx)
}

func (v *FHEValidationService) Keys(ctx context.Context) (models.KeysInfo, error) {
	return v.inner.Keys(ctx)
}

func (v *FHEValidationService) Info(ctx context.Context) models.ClientInfo {
	return v.inner.Info(ctx)
}
