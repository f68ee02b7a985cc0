package authclient

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/paybridge/internal/model"
)

func publicPEM(t *testing.T, pub any) string {
	t.Helper()

	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func sign(t *testing.T, method jwt.SigningMethod, key any, c jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, c).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerifierRSA(t *testing.T) {
	t.Parallel()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	v, err := NewVerifier(publicPEM(t, &priv.PublicKey))
	require.NoError(t, err)

	now := time.Now()

	tests := []struct {
		name    string
		token   string
		want    *model.Identity
		wantErr bool
	}{
		{
			name: "valid token",
			token: sign(t, jwt.SigningMethodRS256, priv, jwt.MapClaims{
				"sub":   "user-1",
				"email": "user1@example.com",
				"exp":   now.Add(time.Hour).Unix(),
			}),
			want: &model.Identity{Subject: "user-1", Email: "user1@example.com"},
		},
		{
			name: "expired token",
			token: sign(t, jwt.SigningMethodRS256, priv, jwt.MapClaims{
				"sub": "user-1",
				"exp": now.Add(-time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "expired just beyond leeway",
			token: sign(t, jwt.SigningMethodRS256, priv, jwt.MapClaims{
				"sub": "user-1",
				"exp": now.Add(-leeway - time.Second).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "expired within leeway",
			token: sign(t, jwt.SigningMethodRS256, priv, jwt.MapClaims{
				"sub": "user-1",
				"exp": now.Add(-10 * time.Second).Unix(),
			}),
			want: &model.Identity{Subject: "user-1"},
		},
		{
			name: "missing exp",
			token: sign(t, jwt.SigningMethodRS256, priv, jwt.MapClaims{
				"sub": "user-1",
			}),
			wantErr: true,
		},
		{
			name: "missing subject",
			token: sign(t, jwt.SigningMethodRS256, priv, jwt.MapClaims{
				"exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "signed by another key",
			token: sign(t, jwt.SigningMethodRS256, other, jwt.MapClaims{
				"sub": "user-1",
				"exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "hmac downgrade",
			token: sign(t, jwt.SigningMethodHS256, []byte("shared"), jwt.MapClaims{
				"sub": "user-1",
				"exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   "not.a.token",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := v.Verify(context.Background(), tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnauthorized)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifierECDSAAndEd25519(t *testing.T) {
	t.Parallel()

	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	exp := time.Now().Add(time.Hour).Unix()

	ecVerifier, err := NewVerifier(publicPEM(t, &ecKey.PublicKey))
	require.NoError(t, err)
	id, err := ecVerifier.Verify(context.Background(),
		sign(t, jwt.SigningMethodES256, ecKey, jwt.MapClaims{"sub": "ec-user", "exp": exp}))
	require.NoError(t, err)
	assert.Equal(t, "ec-user", id.Subject)

	edVerifier, err := NewVerifier(publicPEM(t, edPub))
	require.NoError(t, err)
	id, err = edVerifier.Verify(context.Background(),
		sign(t, jwt.SigningMethodEdDSA, edPriv, jwt.MapClaims{"sub": "ed-user", "exp": exp}))
	require.NoError(t, err)
	assert.Equal(t, "ed-user", id.Subject)
}

func TestNewVerifierRejectsBadPEM(t *testing.T) {
	t.Parallel()

	_, err := NewVerifier("-----BEGIN PUBLIC KEY-----\nAAAA\n-----END PUBLIC KEY-----")
	require.Error(t, err)
}
