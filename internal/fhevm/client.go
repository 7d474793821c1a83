// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fhevm

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-fhevm/internal/logger"
)

const defaultInitTimeout = 30 * time.Second

// Client is an FHEVM SDK client. Create it with New and call Init once
// before encrypting or decrypting.
type Client struct {
	cfg         Config
	dial        Dialer
	log         *logger.Logger
	now         func() time.Time
	initTimeout time.Duration

	init singleflight.Group

	// notifyMu serializes status delivery so subscribers observe
	// transitions in order.
	notifyMu sync.Mutex

	mu       sync.RWMutex
	status   Status
	initErr  error
	provider Provider
	signer   Signer
	subs     map[uint64]StatusFunc
	nextSub  uint64
}

// New creates an idle client. The configuration is copied.
func New(cfg Config, opts ...Option) *Client {
	if cfg.Network == "" {
		cfg.Network = NetworkSepolia
	}
	if n, err := ParseNetwork(string(cfg.Network)); err == nil {
		cfg.Network = n
	}

	c := &Client{
		cfg:         cfg,
		dial:        DialEthereum,
		log:         logger.Nop(),
		now:         time.Now,
		initTimeout: defaultInitTimeout,
		subs:        make(map[uint64]StatusFunc),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init connects the provider and derives the signer. Calls made while an
// attempt is running wait for that attempt and share its result. Calling
// Init on a ready client is a no-op; calling it on a failed client returns
// ErrClientFailed.
func (c *Client) Init(ctx context.Context) error {
	if done, err := c.settled(); done {
		return err
	}

	_, err, shared := c.init.Do("init", func() (any, error) {
		// The attempt outlives the caller that started it.
		actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.initTimeout)
		defer cancel()
		return nil, c.initialize(actx)
	})
	if shared {
		c.log.Debug().Msg("joined in-flight initialization")
	}
	return err
}

// settled reports whether Init has nothing to do, with the error Init
// should return.
func (c *Client) settled() (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.status {
	case StatusReady:
		return true, nil
	case StatusError:
		return true, fmt.Errorf("%w: %w", ErrClientFailed, c.initErr)
	default:
		return false, nil
	}
}

func (c *Client) initialize(ctx context.Context) error {
	if done, err := c.settled(); done {
		return err
	}

	c.setStatus(StatusInitializing, nil)
	c.log.Info().Str("network", string(c.cfg.Network)).Msg("initializing fhevm client")

	provider, err := c.acquireProvider(ctx)
	if err != nil {
		return c.fail(err)
	}

	chainID, err := provider.ChainID(ctx)
	if err != nil {
		provider.Close()
		return c.fail(fmt.Errorf("query chain id: %w", err))
	}

	signer, err := c.acquireSigner()
	if err != nil {
		provider.Close()
		return c.fail(err)
	}

	c.mu.Lock()
	c.provider = provider
	c.signer = signer
	c.mu.Unlock()

	ev := c.log.Info().Str("chain_id", chainID.String())
	if signer != nil {
		ev = ev.Str("signer", signer.Address().Hex())
	}
	ev.Msg("fhevm client ready")

	c.setStatus(StatusReady, nil)
	return nil
}

func (c *Client) acquireProvider(ctx context.Context) (Provider, error) {
	c.mu.RLock()
	injected := c.provider
	c.mu.RUnlock()
	if injected != nil {
		return injected, nil
	}

	if c.cfg.ProviderURL == "" {
		return nil, ErrNoProvider
	}
	return c.dial(ctx, c.cfg.ProviderURL)
}

// acquireSigner returns the injected signer, or derives one from the
// configured key when a contract address is set. A contract address
// without any way to sign is an initialization failure.
func (c *Client) acquireSigner() (Signer, error) {
	c.mu.RLock()
	injected := c.signer
	c.mu.RUnlock()
	if injected != nil {
		return injected, nil
	}

	if c.cfg.ContractAddress == "" {
		return nil, nil
	}
	if c.cfg.SignerKey == "" {
		return nil, ErrNoSigner
	}
	return NewKeySigner(c.cfg.SignerKey)
}

func (c *Client) fail(cause error) error {
	err := &InitializationError{Err: cause}
	c.log.Error().Err(err).Msg("fhevm client initialization failed")
	c.setStatus(StatusError, err)
	return err
}

func (c *Client) setStatus(status Status, err error) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	c.status = status
	c.initErr = err
	subs := make([]StatusFunc, 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(status, err)
	}
}

// Subscribe registers fn for status transitions and immediately delivers
// the current status. fn runs synchronously and must not call Subscribe or
// Init. The returned function removes the subscription.
func (c *Client) Subscribe(fn StatusFunc) (cancel func()) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	status, err := c.status, c.initErr
	c.mu.Unlock()

	fn(status, err)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// Status returns the current lifecycle status.
func (c *Client) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Err returns the initialization error of a failed client.
func (c *Client) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initErr
}

func (c *Client) IsInitialized() bool {
	return c.Status() == StatusReady
}

// Config returns a copy of the configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// SignerAddress returns the signer address, or the zero address when the
// client has no signer.
func (c *Client) SignerAddress() common.Address {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.signer == nil || c.status != StatusReady {
		return common.Address{}
	}
	return c.signer.Address()
}

// ChainID asks the provider for the chain id, falling back to the network
// default when the provider reports none.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	provider, _, err := c.handles()
	if err != nil {
		return nil, err
	}
	return c.chainID(ctx, provider)
}

func (c *Client) chainID(ctx context.Context, provider Provider) (*big.Int, error) {
	id, err := provider.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chain id: %w", err)
	}
	if id == nil || id.Sign() == 0 {
		return c.cfg.Network.DefaultChainID(), nil
	}
	return id, nil
}

func (c *Client) handles() (Provider, Signer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.status != StatusReady {
		return nil, nil, ErrNotInitialized
	}
	return c.provider, c.signer, nil
}

// Encrypt serializes value and signs it with the client signer.
func (c *Client) Encrypt(ctx context.Context, value uint64) (EncryptedValue, error) {
	provider, signer, err := c.handles()
	if err != nil {
		return EncryptedValue{}, err
	}
	if signer == nil {
		return EncryptedValue{}, ErrNoSigner
	}

	chainID, err := c.chainID(ctx, provider)
	if err != nil {
		return EncryptedValue{}, err
	}

	digest, err := encryptionDigest(chainID, c.cfg.ContractAddress, value)
	if err != nil {
		return EncryptedValue{}, err
	}
	sig, err := signer.SignHash(digest)
	if err != nil {
		return EncryptedValue{}, fmt.Errorf("sign encryption: %w", err)
	}

	return EncryptedValue{
		Data:      encodeValue(value),
		Signature: hexutil.Encode(sig),
		Metadata: &EncryptionMetadata{
			EncryptedAt: c.now().UTC(),
			EncryptedBy: signer.Address().Hex(),
		},
	}, nil
}

// UserDecrypt recovers the plaintext and returns the encryption signature
// as proof.
func (c *Client) UserDecrypt(ctx context.Context, ev EncryptedValue) (DecryptionResult, error) {
	res, err := c.decrypt(ctx, ev)
	if err != nil {
		return DecryptionResult{}, err
	}
	res.Proof = ev.Signature
	return res, nil
}

// PublicDecrypt recovers the plaintext without a proof.
func (c *Client) PublicDecrypt(ctx context.Context, ev EncryptedValue) (DecryptionResult, error) {
	return c.decrypt(ctx, ev)
}

// Decrypt dispatches to PublicDecrypt or UserDecrypt.
func (c *Client) Decrypt(ctx context.Context, ev EncryptedValue, public bool) (DecryptionResult, error) {
	if public {
		return c.PublicDecrypt(ctx, ev)
	}
	return c.UserDecrypt(ctx, ev)
}

func (c *Client) decrypt(ctx context.Context, ev EncryptedValue) (DecryptionResult, error) {
	_, signer, err := c.handles()
	if err != nil {
		return DecryptionResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return DecryptionResult{}, err
	}

	v, err := decodeValue(ev.Data)
	if err != nil {
		return DecryptionResult{}, err
	}

	md := &DecryptionMetadata{DecryptedAt: c.now().UTC()}
	if signer != nil {
		md.DecryptedBy = signer.Address().Hex()
	}
	return DecryptionResult{Value: v, Metadata: md}, nil
}

// VerifySignature recovers the address that signed the encryption of
// value on the current chain.
func (c *Client) VerifySignature(ctx context.Context, value uint64, signature string) (common.Address, error) {
	provider, _, err := c.handles()
	if err != nil {
		return common.Address{}, err
	}
	chainID, err := c.chainID(ctx, provider)
	if err != nil {
		return common.Address{}, err
	}

	digest, err := encryptionDigest(chainID, c.cfg.ContractAddress, value)
	if err != nil {
		return common.Address{}, err
	}
	return recoverSigner(digest, signature)
}

// Close releases the provider. The client status is left unchanged, so
// later calls that reach the provider fail with its transport error.
func (c *Client) Close() {
	c.mu.RLock()
	p := c.provider
	c.mu.RUnlock()
	if p != nil {
		p.Close()
	}
}
