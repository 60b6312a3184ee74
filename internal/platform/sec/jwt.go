// Copyright (c) 2026 Bookvault. All rights reserved.

/*
Package sec implements the authentication gate for the Bookvault API.

User registration and session management live in an external identity
service; this package only verifies the bearer tokens that service issues
and extracts the caller's identity from them. A request without a token is
simply anonymous — enforcement, where wanted, happens per route.
*/
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the identity extracted from a verified bearer token.
type AuthClaims struct {
	// UserID is the subject of the token.
	UserID string `json:"sub"`
	// Email is informational only; never used for lookups.
	Email string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// TokenService verifies HS256 bearer tokens signed with the shared session secret.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService constructs a [TokenService].
//
// The secret must match the one used by the identity service; the issuer is
// checked against the token's 'iss' claim.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: session secret must not be empty")
	}
	return &TokenService{secret: []byte(secret), issuer: issuer}, nil
}

// VerifyToken parses and validates a bearer token string.
//
// It returns the embedded [AuthClaims] on success. Expired, malformed, or
// wrongly-signed tokens return an error; the caller maps that to HTTP 401.
func (s *TokenService) VerifyToken(tokenStr string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method %q", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("sec: token verification failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("sec: token is invalid")
	}

	return claims, nil
}

// IssueToken mints a short-lived token for the given subject.
//
// Production tokens come from the identity service; this exists for local
// development and tests.
func (s *TokenService) IssueToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signed, nil
}
