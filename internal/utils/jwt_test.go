package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("go-fhevm", "alice", time.Hour, "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, token.String())
	assert.Equal(t, "alice", token.Actor)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "go-fhevm", claims.Issuer)
	assert.Equal(t, "alice", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name, issuer, actor, key string
		ttl                      time.Duration
	}{
		{"empty issuer", "", "alice", "key", time.Hour},
		{"empty actor", "iss", "", "key", time.Hour},
		{"zero ttl", "iss", "alice", "key", 0},
		{"empty key", "iss", "alice", "", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.actor, tt.ttl, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("iss", "bob", time.Minute, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("iss", "bob", -time.Second, "key")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  "iss",
		Subject: "bob",
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		key     string
		issuer  string
		wantErr error
		anyErr  bool
	}{
		{name: "valid", token: valid.String(), key: "key", issuer: "iss"},
		{name: "wrong key", token: valid.String(), key: "other", issuer: "iss", wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid.String(), key: "key", issuer: "evil", wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: expired.String(), key: "key", issuer: "iss", wantErr: jwt.ErrTokenExpired},
		{name: "no expiry", token: noExpiry, key: "key", issuer: "iss", wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "no subject", token: noSubject, key: "key", issuer: "iss", wantErr: ErrEmptySubject},
		{name: "malformed", token: "not.a.token", key: "key", issuer: "iss", anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "bob", got.Actor)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"Bearer a b", "", true},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotBearer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
