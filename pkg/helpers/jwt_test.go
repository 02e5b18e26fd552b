package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, "auth-test")

	tok, jti, exp, err := m.Generate("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, jti)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, jti, claims.TokenID())
}

func TestJWTManager_UniqueTokenIDs(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, "")
	_, a, _, err := m.Generate("user-1")
	require.NoError(t, err)
	_, b, _, err := m.Generate("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, "auth-test")
	tok, _, _, err := m.Generate("user-1")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTManager("other", time.Hour, "auth-test").Parse(tok)
		assert.Error(t, err)
	})
	t.Run("wrong issuer", func(t *testing.T) {
		_, err := NewJWTManager("test-secret", time.Hour, "someone-else").Parse(tok)
		assert.Error(t, err)
	})
	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute, "auth-test")
		old, _, _, err := expired.Generate("user-1")
		require.NoError(t, err)
		_, err = m.Parse(old)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.Error(t, err)
	})
	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1", ID: "x"})
		s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Parse(s)
		assert.Error(t, err)
	})
	t.Run("missing jti", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "auth-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		s, err := raw.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = m.Parse(s)
		assert.ErrorIs(t, err, ErrMalformedToken)
	})
}
