package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	gen := NewJWTTokenGen("resume-matcher", "test-key")
	gen.nowFunc = func() time.Time {
		return time.Unix(1700000000, 0)
	}

	token, err := gen.GenerateToken("user-123", time.Hour)
	require.NoError(t, err)

	ver := NewJWTTokenVerifier("test-key")
	ver.nowFunc = func() time.Time {
		return time.Unix(1700000000, 0).Add(30 * time.Minute)
	}

	subject, err := ver.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestTokenExpired(t *testing.T) {
	gen := NewJWTTokenGen("resume-matcher", "test-key")
	gen.nowFunc = func() time.Time {
		return time.Unix(1700000000, 0)
	}

	token, err := gen.GenerateToken("user-123", time.Hour)
	require.NoError(t, err)

	ver := NewJWTTokenVerifier("test-key")
	ver.nowFunc = func() time.Time {
		return time.Unix(1700000000, 0).Add(2 * time.Hour)
	}

	_, err = ver.Verify(token)
	assert.Error(t, err)
}

func TestTokenWrongKey(t *testing.T) {
	gen := NewJWTTokenGen("resume-matcher", "test-key")
	token, err := gen.GenerateToken("user-123", time.Hour)
	require.NoError(t, err)

	ver := NewJWTTokenVerifier("other-key")
	_, err = ver.Verify(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", hash)

	assert.True(t, CheckPassword(hash, "password"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
