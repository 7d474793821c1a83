package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FHEClient is the part of [fhevm.Client] the service layer uses.
type FHEClient interface {
	Status() fhevm.Status
	Err() error
	Config() fhevm.Config
	SignerAddress() common.Address
	ChainID(ctx context.Context) (*big.Int, error)
	Encrypt(ctx context.Context, value uint64) (fhevm.EncryptedValue, error)
	UserDecrypt(ctx context.Context, ev fhevm.EncryptedValue) (fhevm.DecryptionResult, error)
	PublicDecrypt(ctx context.Context, ev fhevm.EncryptedValue) (fhevm.DecryptionResult, error)
	VerifySignature(ctx context.Context, value uint64, signature string) (common.Address, error)
}

// FHEService serves the FHE endpoints over one injected client.
type FHEService interface {
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResult, error)
	Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResult, error)
	BatchEncrypt(ctx context.Context, req models.BatchEncryptRequest) (models.BatchEncryptResult, error)
	Compute(ctx context.Context, req models.ComputeRequest) (models.ComputeResult, error)
	Verify(ctx context.Context, req models.VerifyRequest) (models.VerifyResult, error)

	Status(ctx context.Context) models.ClientStatus
	Keys(ctx context.Context) (models.KeysInfo, error)
	Info(ctx context.Context) models.ClientInfo
}

// FHEServiceWrapper defines middleware composition for FHEService.
// Implementations wrap an existing FHEService to add behavior such as
// validating.
type FHEServiceWrapper interface {
	Wrap(FHEService) FHEService
}

// OperationService records and lists the operation journal.
type OperationService interface {
	// Record journals one operation of the caller found in ctx.
	Record(ctx context.Context, kind models.OperationKind, signature string, count int) error
	List(ctx context.Context, filter models.OperationFilter) ([]models.Operation, error)
	// Prune deletes entries older than retention.
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// AuthService verifies and mints the optional bearer tokens.
type AuthService interface {
	// Enabled reports whether a token sign key is configured.
	Enabled() bool
	CreateToken(ctx context.Context, actor string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
