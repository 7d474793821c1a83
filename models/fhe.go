// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
)

// EncryptRequest asks for a single value to be encrypted.
//
// Value is decoded loosely (number or numeric string) and validated by the
// service layer. Type accepts "uint8".."uint64" or the "euint" spelling.
type EncryptRequest struct {
	Value any    `json:"value"`
	Type  string `json:"type,omitempty"`
}

// EncryptResult is the outcome of an EncryptRequest.
type EncryptResult struct {
	Encrypted fhevm.EncryptedValue `json:"encrypted"`
	Type      string               `json:"type"`
	Timestamp time.Time            `json:"timestamp"`
}

// DecryptRequest asks for an encrypted value to be decrypted. Public, or
// any non-empty PublicKey, selects public decryption (no proof).
type DecryptRequest struct {
	Encrypted *fhevm.EncryptedValue `json:"encrypted"`
	PublicKey string                `json:"publicKey,omitempty"`
	Public    bool                  `json:"public,omitempty"`
}

// IsPublic reports whether public decryption was requested.
func (r DecryptRequest) IsPublic() bool {
	return r.Public || r.PublicKey != ""
}

// DecryptResult is the outcome of a DecryptRequest.
type DecryptResult struct {
	Decrypted uint64    `json:"decrypted"`
	Proof     string    `json:"proof,omitempty"`
	Public    bool      `json:"public"`
	Timestamp time.Time `json:"timestamp"`
}

// BatchEncryptRequest carries between 1 and 100 values. Values is left
// untyped so that a non-array payload can be reported precisely.
type BatchEncryptRequest struct {
	Values any `json:"values"`
}

// BatchItem pairs an input value with its encryption. Items are returned
// in input order.
type BatchItem struct {
	Original  uint64               `json:"original"`
	Encrypted fhevm.EncryptedValue `json:"encrypted"`
}

// BatchEncryptResult is the outcome of a BatchEncryptRequest.
type BatchEncryptResult struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Results []BatchItem `json:"results"`
}

// ComputeRequest names a homomorphic operation over encrypted operands.
// Computation is not performed; the result is a placeholder.
type ComputeRequest struct {
	Operation string `json:"operation"`
	Operands  any    `json:"operands"`
}

// ComputeResult is the placeholder outcome of a ComputeRequest.
type ComputeResult struct {
	Operation string    `json:"operation"`
	Operands  int       `json:"operands"`
	Result    string    `json:"result"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// VerifyRequest asks which address signed the encryption of Value.
type VerifyRequest struct {
	Value     any    `json:"value"`
	Signature string `json:"signature"`
}

// VerifyResult is the outcome of a VerifyRequest. Match reports whether the
// recovered signer is the server signer.
type VerifyResult struct {
	Signer string `json:"signer"`
	Match  bool   `json:"match"`
}

// OperationRequest is the payload of the combined /api/fhe endpoint.
type OperationRequest struct {
	Operation string `json:"operation"`
	Value     any    `json:"value,omitempty"`
	Type      string `json:"type,omitempty"`
}

// ClientStatus describes the lifecycle state of the server client.
type ClientStatus struct {
	Status          fhevm.Status `json:"status"`
	Initialized     bool         `json:"initialized"`
	Error           string       `json:"error,omitempty"`
	Network         string       `json:"network"`
	ContractAddress string       `json:"contractAddress,omitempty"`
	Signer          string       `json:"signer,omitempty"`
	Timestamp       time.Time    `json:"timestamp"`
}

// KeysInfo describes the public key material of the network.
type KeysInfo struct {
	PublicKey  string    `json:"publicKey"`
	Network    string    `json:"network"`
	ChainID    string    `json:"chainId,omitempty"`
	ACLAddress string    `json:"aclAddress,omitempty"`
	GatewayURL string    `json:"gatewayUrl,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Capabilities lists the operations the server supports.
type Capabilities struct {
	Encrypt       bool `json:"encrypt"`
	Decrypt       bool `json:"decrypt"`
	BatchEncrypt  bool `json:"batchEncrypt"`
	PublicDecrypt bool `json:"publicDecrypt"`
	UserDecrypt   bool `json:"userDecrypt"`
}

// ClientInfo is returned by the info endpoint.
type ClientInfo struct {
	SDK struct {
		Version     string `json:"version"`
		Initialized bool   `json:"initialized"`
		Mock        bool   `json:"mock"`
	} `json:"sdk"`
	Contract struct {
		Address string `json:"address,omitempty"`
		Network string `json:"network"`
		ChainID string `json:"chainId,omitempty"`
	} `json:"contract"`
	Capabilities    Capabilities `json:"capabilities"`
	EncryptionTypes []string     `json:"encryptionTypes"`
	MaxBatchSize    int          `json:"maxBatchSize"`
}
