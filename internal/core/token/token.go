// Package token issues and verifies the stateless HS256 session tokens that
// carry an identity through the authentication gate. Tokens encode the
// identity id, its role, and an absolute expiry; nothing is persisted, so a
// token stays usable until it expires or the signing secret rotates.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agrilink/farm-market/internal/core/domain"
)

var (
	// ErrExpired is returned for a structurally valid token past its expiry.
	ErrExpired = errors.New("token expired")
	// ErrMalformed is returned when the token cannot be parsed or its
	// signature does not verify.
	ErrMalformed = errors.New("token malformed")
)

// Claims is the decoded payload of a verified token.
type Claims struct {
	ID   string
	Role domain.Role
}

// Issuer signs and verifies session tokens with a shared secret.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue produces a signed token for the given identity valid for ttl.
// Expiry is absolute: now + ttl, computed once at issue time.
func (i *Issuer) Issue(id string, role domain.Role, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":   id,
		"role": string(role),
		"exp":  time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify decodes the token, checking signature integrity and expiry.
// An expired-but-well-formed token yields ErrExpired; any structural or
// signature problem yields ErrMalformed, so callers can give a precise
// rejection reason without re-parsing.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrMalformed
	}
	if !tkn.Valid {
		return nil, ErrMalformed
	}

	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	return &Claims{ID: id, Role: domain.Role(role)}, nil
}
