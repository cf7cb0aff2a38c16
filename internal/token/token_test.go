package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	s, err := NewService(Config{
		Secret:     "test-secret-key",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	})
	require.NoError(t, err)
	return s
}

func TestIssuePairAndVerify(t *testing.T) {
	s := newTestService(t)

	pair, err := s.IssuePair(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	userID, err := s.VerifyAccess(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyRejectsRefreshToken(t *testing.T) {
	s := newTestService(t)

	pair, err := s.IssuePair(7)
	require.NoError(t, err)

	_, err = s.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	s := newTestService(t)

	_, err := s.VerifyAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	s := newTestService(t)
	other, err := NewService(Config{Secret: "a-different-secret"})
	require.NoError(t, err)

	pair, err := other.IssuePair(1)
	require.NoError(t, err)

	_, err = s.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewServiceRequiresSecret(t *testing.T) {
	_, err := NewService(Config{})
	assert.ErrorIs(t, err, ErrEmptySecretKey)
}
