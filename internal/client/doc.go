// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-fhevm command line application.
//
// Commands talk to a running server through [adapter.ServerAdapter]. With
// --local, status, encrypt and decrypt instead run against an in-process
// FHEVM client driven by a [session.Session].
package client
