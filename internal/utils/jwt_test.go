package utils

import (
    "testing"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
    tok, err := NewAccessToken("test-secret", "U002", "CUSTOMER", 15)
    require.NoError(t, err)
    require.NotEmpty(t, tok.Token)

    parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
        return []byte("test-secret"), nil
    })
    require.NoError(t, err)
    require.True(t, parsed.Valid)

    claims := parsed.Claims.(jwt.MapClaims)
    assert.Equal(t, "U002", claims["sub"])
    assert.Equal(t, "CUSTOMER", claims["role"])
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
    tok, err := NewAccessToken("test-secret", "U002", "CUSTOMER", 15)
    require.NoError(t, err)

    _, err = jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
        return []byte("other-secret"), nil
    })
    assert.Error(t, err)
}

func TestRefreshTokenHashing(t *testing.T) {
    a, err := NewRefreshToken(7)
    require.NoError(t, err)
    b, err := NewRefreshToken(7)
    require.NoError(t, err)

    assert.NotEqual(t, a.Raw, b.Raw)
    assert.Equal(t, HashRefreshRaw(a.Raw), HashRefreshRaw(a.Raw))
    assert.NotEqual(t, HashRefreshRaw(a.Raw), HashRefreshRaw(b.Raw))
    assert.Len(t, HashRefreshRaw(a.Raw), 64)
}

func TestPasswordHashing(t *testing.T) {
    hash, err := HashPassword("cust123", 4)
    require.NoError(t, err)
    assert.NotEqual(t, "cust123", hash)

    assert.True(t, VerifyPassword(hash, "cust123"))
    assert.False(t, VerifyPassword(hash, "wrong"))
}
