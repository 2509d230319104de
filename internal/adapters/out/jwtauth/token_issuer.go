// Package jwtauth signs and verifies the bearer tokens used by the POS
// clients. Tokens are HMAC-signed JWTs carrying the staff member's
// identity, role and display name.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/staff"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, expired or was
// not signed with the configured secret.
var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
	jwt.RegisteredClaims
}

// HMACTokenIssuer implements TokenIssuer with HS256 signatures.
type HMACTokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACTokenIssuer creates an issuer. Tokens expire after ttl.
func NewHMACTokenIssuer(secret []byte, ttl time.Duration) *HMACTokenIssuer {
	return &HMACTokenIssuer{
		secret: secret,
		ttl:    ttl,
	}
}

// Issue signs a token for the principal.
func (i *HMACTokenIssuer) Issue(principal staff.Principal) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role:        principal.Role.String(),
		DisplayName: principal.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses a token and returns the principal it was issued for.
func (i *HMACTokenIssuer) Verify(token string) (staff.Principal, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed,
		func(*jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return staff.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(parsed.Subject)
	if err != nil {
		return staff.Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	role := staff.Role(parsed.Role)
	if err := role.Validate(); err != nil {
		return staff.Principal{}, fmt.Errorf("%w: bad role", ErrInvalidToken)
	}

	return staff.Principal{
		ID:          id,
		Role:        role,
		DisplayName: parsed.DisplayName,
	}, nil
}
