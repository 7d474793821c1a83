// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/validators"
	"github.com/MKhiriev/go-fhevm/models"
)

const (
	// PublicKeyPlaceholder stands in for the network FHE public key, which
	// the mock transform does not use.
	PublicKeyPlaceholder = "fhe_public_key_placeholder"

	ComputeResultPlaceholder = "encrypted_result_placeholder"
	ComputeMessage           = "Computation performed on encrypted data"

	// batchConcurrency bounds the encryptions of one batch in flight.
	batchConcurrency = 8
)

var zeroAddress common.Address

type fheService struct {
	client     FHEClient
	operations OperationService
	version    string
	now        func() time.Time

	logger *logger.Logger
}

// NewFHEService serves requests through client. Successful operations are
// journaled through operations; a nil operations disables journaling.
func NewFHEService(client FHEClient, operations OperationService, cfg config.App, logger *logger.Logger) FHEService {
	return &fheService{
		client:     client,
		operations: operations,
		version:    cfg.Version,
		now:        time.Now,
		logger:     logger,
	}
}

// ensureReady mirrors the client lifecycle into request errors: a failed
// client reports ErrClientFailed, one that has not finished initializing
// reports ErrNotInitialized.
func (s *fheService) ensureReady() error {
	switch s.client.Status() {
	case fhevm.StatusReady:
		return nil
	case fhevm.StatusError:
		if err := s.client.Err(); err != nil {
			return fmt.Errorf("%w: %w", fhevm.ErrClientFailed, err)
		}
		return fhevm.ErrClientFailed
	default:
		return fhevm.ErrNotInitialized
	}
}

func (s *fheService) record(ctx context.Context, kind models.OperationKind, signature string, count int) {
	if s.operations == nil {
		return
	}
	// the response is already computed; a journal failure is only logged
	if err := s.operations.Record(ctx, kind, signature, count); err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(kind)).Msg("operation was not journaled")
	}
}

func (s *fheService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResult, error) {
	log := logger.FromContext(ctx)

	value, err := validators.ParseEncryptionValue(req.Value)
	if err != nil {
		return models.EncryptResult{}, err
	}
	encType, err := fhevm.ParseEncryptionType(req.Type)
	if err != nil {
		return models.EncryptResult{}, err
	}
	if err := encType.Check(value); err != nil {
		return models.EncryptResult{}, err
	}

	if err := s.ensureReady(); err != nil {
		return models.EncryptResult{}, err
	}

	encrypted, err := s.client.Encrypt(ctx, value)
	if err != nil {
		log.Err(err).Str("func", "fheService.Encrypt").Msg("encryption failed")
		return models.EncryptResult{}, fmt.Errorf("encryption failed: %w", err)
	}
	s.record(ctx, models.OperationEncrypt, encrypted.Signature, 1)

	return models.EncryptResult{
		Encrypted: encrypted,
		Type:      string(encType),
		Timestamp: s.now().UTC(),
	}, nil
}

func (s *fheService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResult, error) {
	log := logger.FromContext(ctx)

	if res := validators.ValidateEncryptedData(req.Encrypted); !res.Valid {
		return models.DecryptResult{}, &validators.ValidationError{Field: validators.FieldEncrypted, Message: res.Error}
	}
	if err := s.ensureReady(); err != nil {
		return models.DecryptResult{}, err
	}

	public := req.IsPublic()
	decrypt := s.client.UserDecrypt
	if public {
		decrypt = s.client.PublicDecrypt
	}

	res, err := decrypt(ctx, *req.Encrypted)
	if err != nil {
		log.Err(err).Str("func", "fheService.Decrypt").Bool("public", public).Msg("decryption failed")
		return models.DecryptResult{}, fmt.Errorf("decryption failed: %w", err)
	}
	s.record(ctx, models.OperationDecrypt, req.Encrypted.Signature, 1)

	return models.DecryptResult{
		Decrypted: res.Value,
		Proof:     res.Proof,
		Public:    public,
		Timestamp: s.now().UTC(),
	}, nil
}

// BatchEncrypt encrypts every value concurrently and returns the results in
// input order. The first failure cancels the remaining encryptions.
func (s *fheService) BatchEncrypt(ctx context.Context, req models.BatchEncryptRequest) (models.BatchEncryptResult, error) {
	log := logger.FromContext(ctx)

	values, err := validators.ParseValues(req.Values)
	if err != nil {
		return models.BatchEncryptResult{}, err
	}
	if err := s.ensureReady(); err != nil {
		return models.BatchEncryptResult{}, err
	}

	results := make([]models.BatchItem, len(values))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, v := range values {
		g.Go(func() error {
			ev, err := s.client.Encrypt(gctx, v)
			if err != nil {
				return fmt.Errorf("value at index %d: %w", i, err)
			}
			results[i] = models.BatchItem{Original: v, Encrypted: ev}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Err(err).Str("func", "fheService.BatchEncrypt").Int("count", len(values)).Msg("batch encryption failed")
		return models.BatchEncryptResult{}, fmt.Errorf("batch encryption failed: %w", err)
	}

	// one journal entry per batch, signed by its first item
	s.record(ctx, models.OperationBatchEncrypt, results[0].Encrypted.Signature, len(results))

	return models.BatchEncryptResult{
		Success: true,
		Count:   len(results),
		Results: results,
	}, nil
}

// Compute validates the request and returns a placeholder; no homomorphic
// evaluation takes place.
func (s *fheService) Compute(ctx context.Context, req models.ComputeRequest) (models.ComputeResult, error) {
	operands, ok := req.Operands.([]any)
	if !ok || req.Operation == "" {
		return models.ComputeResult{}, &validators.ValidationError{
			Field:   validators.FieldOperands,
			Message: "Operation and operands array are required",
		}
	}
	if err := s.ensureReady(); err != nil {
		return models.ComputeResult{}, err
	}

	op := validators.SanitizeInput(req.Operation)
	s.record(ctx, models.OperationCompute, "", len(operands))

	return models.ComputeResult{
		Operation: op,
		Operands:  len(operands),
		Result:    ComputeResultPlaceholder,
		Message:   ComputeMessage,
		Timestamp: s.now().UTC(),
	}, nil
}

func (s *fheService) Verify(ctx context.Context, req models.VerifyRequest) (models.VerifyResult, error) {
	value, err := validators.ParseEncryptionValue(req.Value)
	if err != nil {
		return models.VerifyResult{}, err
	}
	if err := s.ensureReady(); err != nil {
		return models.VerifyResult{}, err
	}

	signer, err := s.client.VerifySignature(ctx, value, req.Signature)
	if err != nil {
		return models.VerifyResult{}, err
	}

	own := s.client.SignerAddress()
	return models.VerifyResult{
		Signer: signer.Hex(),
		Match:  own != zeroAddress && own == signer,
	}, nil
}

func (s *fheService) Status(ctx context.Context) models.ClientStatus {
	cfg := s.client.Config()
	status := s.client.Status()

	st := models.ClientStatus{
		Status:          status,
		Initialized:     status == fhevm.StatusReady,
		Network:         string(cfg.Network),
		ContractAddress: cfg.ContractAddress,
		Timestamp:       s.now().UTC(),
	}
	if err := s.client.Err(); err != nil {
		st.Error = err.Error()
	}
	if addr := s.client.SignerAddress(); addr != zeroAddress {
		st.Signer = addr.Hex()
	}
	return st
}

func (s *fheService) Keys(ctx context.Context) (models.KeysInfo, error) {
	if err := s.ensureReady(); err != nil {
		return models.KeysInfo{}, err
	}

	cfg := s.client.Config()
	info := models.KeysInfo{
		PublicKey:  PublicKeyPlaceholder,
		Network:    string(cfg.Network),
		ACLAddress: cfg.ACLAddress,
		GatewayURL: cfg.GatewayURL,
		Timestamp:  s.now().UTC(),
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return models.KeysInfo{}, fmt.Errorf("error reading chain id: %w", err)
	}
	info.ChainID = chainID.String()

	return info, nil
}

func (s *fheService) Info(ctx context.Context) models.ClientInfo {
	cfg := s.client.Config()
	initialized := s.client.Status() == fhevm.StatusReady

	var info models.ClientInfo
	info.SDK.Version = s.version
	info.SDK.Initialized = initialized
	info.SDK.Mock = true
	info.Contract.Address = cfg.ContractAddress
	info.Contract.Network = string(cfg.Network)
	if initialized {
		if id, err := s.client.ChainID(ctx); err == nil {
			info.Contract.ChainID = id.String()
		} else if !errors.Is(err, context.Canceled) {
			logger.FromContext(ctx).Warn().Err(err).Msg("chain id unavailable")
		}
	}
	info.Capabilities = models.Capabilities{
		Encrypt:       true,
		Decrypt:       true,
		BatchEncrypt:  true,
		PublicDecrypt: true,
		UserDecrypt:   true,
	}
	for _, t := range fhevm.EncryptionTypes {
		info.EncryptionTypes = append(info.EncryptionTypes, string(t))
	}
	info.MaxBatchSize = validators.MaxBatchSize

	return info
}
