// Package identity validates the credentials the storefront trusts: buyer
// tokens issued by the external identity provider, and the single admin
// token for the management console.
package identity

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the subset of the provider's token we care about.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Verifier checks buyer tokens against the provider's RSA public key.
type Verifier struct {
	key *rsa.PublicKey
}

func NewVerifier(pemKey []byte) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(pemKey)
	if err != nil {
		return nil, fmt.Errorf("parse identity key: %w", err)
	}
	return &Verifier{key: key}, nil
}

func (v *Verifier) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Username extracts the username from a token without verifying the
// signature. Client-side only: the services always go through Verify.
func Username(token string) (string, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", ErrInvalidToken
	}
	if claims.Username == "" {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
