// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-fhevm/internal/session"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line in args and blocks until it completes.
	Run(ctx context.Context, args []string) error
}

// LocalEngine is the in-process client used by --local commands.
// *fhevm.Client implements it.
type LocalEngine interface {
	session.Engine
	Init(ctx context.Context) error
	Close()
}
