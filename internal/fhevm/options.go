// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fhevm

import (
	"time"

	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// Option customizes a Client created by New.
type Option func(*Client)

// WithProvider injects an already connected provider. Init then skips
// dialing ProviderURL.
func WithProvider(p Provider) Option {
	return func(c *Client) { c.provider = p }
}

// WithDialer replaces DialEthereum.
func WithDialer(d Dialer) Option {
	return func(c *Client) { c.dial = d }
}

// WithSigner injects a signer. It takes precedence over Config.SignerKey.
func WithSigner(s Signer) Option {
	return func(c *Client) { c.signer = s }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithClock overrides time.Now for metadata timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithInitTimeout bounds a single Init attempt.
func WithInitTimeout(d time.Duration) Option {
	return func(c *Client) { c.initTimeout = d }
}
