// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
)

// StructuredConfig is the top-level configuration container of the FHEVM
// server. It is populated by merging environment variables, command-line
// flags, an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// FHEVM configures the FHEVM client: contract, network, provider and
	// signer.
	FHEVM FHEVM `envPrefix:"FHEVM_"`

	// App holds the optional JWT settings and the application version.
	App App `envPrefix:"APP_"`

	// Storage configures the operation journal backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and rate limits.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the CLI's connection to a running server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the schedules of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// FHEVM holds the settings of the FHEVM client.
type FHEVM struct {
	// ContractAddress is the FHE-enabled contract (0x + 40 hex).
	// Env: FHEVM_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// Network is one of sepolia, mainnet, localhost (hardhat is an alias).
	// Env: FHEVM_NETWORK
	Network string `env:"NETWORK"`

	// ProviderURL is the Ethereum JSON-RPC endpoint.
	// Env: FHEVM_PROVIDER_URL
	ProviderURL string `env:"PROVIDER_URL"`

	// ACLAddress is the access control contract, reported by /api/keys.
	// Env: FHEVM_ACL_ADDRESS
	ACLAddress string `env:"ACL_ADDRESS"`

	// GatewayURL is the decryption gateway, reported by /api/keys.
	// Env: FHEVM_GATEWAY_URL
	GatewayURL string `env:"GATEWAY_URL"`

	// SignerKey is the hex secp256k1 key signing ciphertexts.
	// Env: FHEVM_SIGNER_KEY
	SignerKey string `env:"SIGNER_KEY"`

	// InitTimeout bounds one initialization attempt.
	// Env: FHEVM_INIT_TIMEOUT
	InitTimeout time.Duration `env:"INIT_TIMEOUT"`
}

// ClientConfig converts the section into the client's own config type.
func (f FHEVM) ClientConfig() fhevm.Config {
	return fhevm.Config{
		ContractAddress: f.ContractAddress,
		Network:         fhevm.Network(f.Network),
		ProviderURL:     f.ProviderURL,
		ACLAddress:      f.ACLAddress,
		GatewayURL:      f.GatewayURL,
		SignerKey:       f.SignerKey,
	}
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key verifying bearer JWTs. When empty the API
	// accepts anonymous callers only and ignores Authorization headers.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by the CLI "token"
	// command (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network, timeout and rate limit settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitRequests is the number of requests one client may make per
	// RateLimitWindow.
	// Env: SERVER_RATE_LIMIT_REQUESTS
	RateLimitRequests int `env:"RATE_LIMIT_REQUESTS"`

	// Env: SERVER_RATE_LIMIT_WINDOW
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW"`
}

// Storage configures the operation journal.
type Storage struct {
	// DB holds the relational database connection settings. An empty DSN
	// keeps the journal in memory.
	DB DB `envPrefix:"DB_"`

	// JournalCapacity bounds the in-memory journal.
	// Env: STORAGE_JOURNAL_CAPACITY
	JournalCapacity int `env:"JOURNAL_CAPACITY"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by scheme: "postgres://..." for PostgreSQL,
	// "sqlite://<path>" or "file:<path>" for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings the CLI uses to reach a running server.
type Adapter struct {
	// HTTPAddress is the server address, with or without a scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a bearer JWT attached to every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds the schedules of background jobs.
type Workers struct {
	// CleanupInterval is how often the journal is pruned.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// JournalRetention is how long journal entries are kept.
	// Env: WORKERS_JOURNAL_RETENTION
	JournalRetention time.Duration `env:"JOURNAL_RETENTION"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON("").
		withDefaults().
		build()
}
