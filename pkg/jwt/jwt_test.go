package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "portal-api", 12)

	token, err := tm.GenerateToken("7f1c0c7e-1d1f-4a55-9b8e-4a0f5e0d9a11", "admin@alumniconnect.io", "Grace Admin", "ADMIN")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7f1c0c7e-1d1f-4a55-9b8e-4a0f5e0d9a11", claims.Subject)
	assert.Equal(t, "admin@alumniconnect.io", claims.Email)
	assert.Equal(t, "Grace Admin", claims.Name)
	assert.Equal(t, "ADMIN", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("secret", "portal-api", 1)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := tm.GenerateToken("admin-1", "", "", "ADMIN")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret", "portal-api", 1).GenerateToken("admin-1", "", "", "ADMIN")
	require.NoError(t, err)

	_, err = NewTokenManager("other", "portal-api", 1).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongIssuer(t *testing.T) {
	token, err := NewTokenManager("secret", "someone-else", 1).GenerateToken("admin-1", "", "", "ADMIN")
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "portal-api", 1).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MissingSubject(t *testing.T) {
	tm := NewTokenManager("secret", "portal-api", 1)
	token, err := tm.GenerateToken("", "", "", "ADMIN")
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaim)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager("secret", "portal-api", 1).ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RequiresTimeClaims(t *testing.T) {
	tm := NewTokenManager("secret", "portal-api", 1)

	tests := []struct {
		name   string
		claims AdminClaims
	}{
		{
			name: "no expiry",
			claims: AdminClaims{Role: "ADMIN", RegisteredClaims: jwt.RegisteredClaims{
				Subject: "admin-1", Issuer: "portal-api", IssuedAt: jwt.NewNumericDate(time.Now()),
			}},
		},
		{
			name: "no issued at",
			claims: AdminClaims{Role: "ADMIN", RegisteredClaims: jwt.RegisteredClaims{
				Subject: "admin-1", Issuer: "portal-api", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte("secret"))
			require.NoError(t, err)

			_, err = tm.ValidateToken(token)
			assert.Error(t, err)
		})
	}
}
