package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/logger"
)

func newAuth(key string) AuthService {
	return NewAuthService(config.App{
		TokenSignKey:  key,
		TokenIssuer:   "go-fhevm",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_Disabled(t *testing.T) {
	a := newAuth("")
	assert.False(t, a.Enabled())

	_, err := a.CreateToken(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrAuthDisabled)

	_, err = a.ParseToken(context.Background(), "x.y.z")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestAuthService_RoundTrip(t *testing.T) {
	a := newAuth("secret")
	require.True(t, a.Enabled())

	token, err := a.CreateToken(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := a.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Actor)
}

func TestAuthService_CreateToken_EmptyActor(t *testing.T) {
	_, err := newAuth("secret").CreateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejected(t *testing.T) {
	token, err := newAuth("secret").CreateToken(context.Background(), "alice")
	require.NoError(t, err)

	_, err = newAuth("other").ParseToken(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = newAuth("secret").ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
