package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, 15*time.Minute)

	token, exp, err := m.GenerateAccessToken("a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), exp, 5*time.Second)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Identity())
	require.NotNil(t, claims.ExpiresAt)
}

func TestJWTManager_NoExpiry(t *testing.T) {
	m := NewJWTManager(testSecret, 0)

	token, exp, err := m.GenerateAccessToken("a@b.com")
	require.NoError(t, err)
	assert.True(t, exp.IsZero())

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager(testSecret, time.Minute)
	other := NewJWTManager("another-secret-another-secret-xxxx", time.Minute)

	foreign, _, err := other.GenerateAccessToken("a@b.com")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "a@b.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})
	expiredStr, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{})
	noSubjectStr, err := noSubject.SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.com"}})
	unsignedStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", foreign},
		{"expired", expiredStr},
		{"missing subject", noSubjectStr},
		{"alg none", unsignedStr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ParseAccessToken(tt.token)
			assert.Error(t, err)
		})
	}
}
