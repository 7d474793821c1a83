package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-fhevm/models"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrEmptySubject       = errors.New("token has no subject")
	ErrNotBearer          = errors.New("invalid authorization header")
)

// GenerateJWTToken signs an HS256 token naming actor as its subject. It
// expires ttl after issuance.
func GenerateJWTToken(issuer, actor string, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || actor == "" || ttl == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	issued := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   actor,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
	})

	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign token: %w", err)
	}
	return models.Token{Token: token, SignedString: signed, Actor: actor}, nil
}

// ValidateAndParseJWTToken accepts only HMAC tokens from issuer that carry
// an expiry and a subject. The subject becomes the token actor.
func ValidateAndParseJWTToken(signed, signKey, issuer string) (models.Token, error) {
	keyFunc := func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(signKey), nil
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(signed, &claims, keyFunc, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{Token: token, SignedString: signed, Actor: claims.Subject}, nil
}

// ParseBearerToken returns the credential of an "Authorization: Bearer"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrNotBearer
	}
	return token, nil
}
