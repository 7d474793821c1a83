// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fhevm

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Network names a supported chain.
type Network string

const (
	NetworkSepolia   Network = "sepolia"
	NetworkMainnet   Network = "mainnet"
	NetworkLocalhost Network = "localhost"
)

// Chain ids used when the provider does not report one.
const (
	SepoliaChainID   int64 = 11155111
	MainnetChainID   int64 = 1
	LocalhostChainID int64 = 31337
)

// ParseNetwork maps a case-insensitive network name to a Network. "hardhat"
// is an alias of localhost.
func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case NetworkSepolia, NetworkMainnet, NetworkLocalhost:
		return n, nil
	case "hardhat":
		return NetworkLocalhost, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
	}
}

// DefaultChainID returns the well-known chain id of the network. Unknown
// networks fall back to Sepolia.
func (n Network) DefaultChainID() *big.Int {
	switch n {
	case NetworkMainnet:
		return big.NewInt(MainnetChainID)
	case NetworkLocalhost:
		return big.NewInt(LocalhostChainID)
	default:
		return big.NewInt(SepoliaChainID)
	}
}

// IsAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// Config describes how a Client reaches the network. It is copied by New
// and never mutated afterwards.
type Config struct {
	ContractAddress string
	Network         Network
	ProviderURL     string
	ACLAddress      string
	GatewayURL      string

	// SignerKey is a hex encoded secp256k1 private key. It is required
	// when ContractAddress is set and no signer is injected.
	SignerKey string
}

// Validate checks the network and the optional addresses.
func (c Config) Validate() error {
	if _, err := ParseNetwork(string(c.Network)); err != nil {
		return err
	}
	if c.ContractAddress != "" && !IsAddress(c.ContractAddress) {
		return fmt.Errorf("%w: contract address %q", ErrInvalidAddress, c.ContractAddress)
	}
	if c.ACLAddress != "" && !IsAddress(c.ACLAddress) {
		return fmt.Errorf("%w: acl address %q", ErrInvalidAddress, c.ACLAddress)
	}
	return nil
}
