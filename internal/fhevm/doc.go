// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fhevm implements a client for an FHE-enabled EVM network.
//
// The client owns a provider handle (an Ethereum JSON-RPC connection), an
// optional signer, and a lifecycle status that moves from idle through
// initializing to either ready or error. Encryption and decryption require
// the ready state.
//
// Encryption is a mock transform: the ciphertext carries the decimal form
// of the plaintext and is accompanied by an EIP-712 signature over
// {value: uint256} under the "FHEVM" version "1" domain. No homomorphic
// encoding is performed, so ciphertexts produced here must never be treated
// as confidential.
//
// A Client is safe for concurrent use. Concurrent Init calls share a single
// attempt, and a client that failed to initialize stays failed.
package fhevm
