// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fhevm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
)

// Provider is the part of an Ethereum JSON-RPC client the Client needs.
//
//go:generate mockgen -source=provider.go -destination=../mock/fhevm_provider_mock.go -package=mock
type Provider interface {
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// Dialer opens a Provider for a JSON-RPC URL.
type Dialer func(ctx context.Context, rawURL string) (Provider, error)

// DialEthereum is the default Dialer backed by go-ethereum's ethclient.
func DialEthereum(ctx context.Context, rawURL string) (Provider, error) {
	c, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rawURL, err)
	}
	return c, nil
}
