package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m, err := NewTokenManager("secret", "club")
	require.NoError(t, err)

	tok, err := m.CreateAccessToken("42", "member", "member@club.test", time.Hour)
	require.NoError(t, err)

	claims, err := m.ParseValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Sub)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, "member@club.test", claims.Email)
}

func TestTokenManager_Rejects(t *testing.T) {
	m, err := NewTokenManager("secret", "club")
	require.NoError(t, err)
	other, err := NewTokenManager("other", "club")
	require.NoError(t, err)

	foreign, err := other.CreateAccessToken("1", "admin", "a@club.test", time.Hour)
	require.NoError(t, err)
	_, err = m.ParseValidate(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := m.CreateAccessToken("1", "user", "u@club.test", -time.Minute)
	require.NoError(t, err)
	_, err = m.ParseValidate(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noEmail, err := m.CreateAccessToken("1", "user", "", time.Hour)
	require.NoError(t, err)
	_, err = m.ParseValidate(noEmail)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseValidate("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager("", "")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
