package authclient

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you-humble/paybridge/internal/model"
)

const leeway = 30 * time.Second

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

type verifier struct {
	key    crypto.PublicKey
	parser *jwt.Parser
}

// NewVerifier accepts a PEM encoded RSA, ECDSA or Ed25519 public key. Tokens
// must be signed with an algorithm of the same family and carry exp.
func NewVerifier(publicKeyPEM string) (*verifier, error) {
	key, methods, err := parsePublicKey([]byte(publicKeyPEM))
	if err != nil {
		return nil, err
	}

	return &verifier{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods(methods),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(leeway),
		),
	}, nil
}

func (v *verifier) Verify(_ context.Context, token string) (*model.Identity, error) {
	var c claims
	_, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrUnauthorized, err)
	}

	if c.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", model.ErrUnauthorized)
	}

	return &model.Identity{Subject: c.Subject, Email: c.Email}, nil
}

func parsePublicKey(pemBytes []byte) (crypto.PublicKey, []string, error) {
	if key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes); err == nil {
		return key, []string{"RS256", "RS384", "RS512", "PS256", "PS384", "PS512"}, nil
	}
	if key, err := jwt.ParseECPublicKeyFromPEM(pemBytes); err == nil {
		return key, []string{"ES256", "ES384", "ES512"}, nil
	}
	if key, err := jwt.ParseEdPublicKeyFromPEM(pemBytes); err == nil {
		return key, []string{"EdDSA"}, nil
	}
	return nil, nil, errors.New("auth public key: unsupported or malformed PEM")
}
