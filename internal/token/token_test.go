package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef-test-secret"

func TestNewService_EmptySecret(t *testing.T) {
	_, err := NewService("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestService_IssueValidate(t *testing.T) {
	s, err := NewService(testSecret, time.Hour)
	require.NoError(t, err)

	signed, issued, err := s.Issue("laptop")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.Equal(t, "laptop", issued.NodeID)
	assert.NotEmpty(t, issued.ID)

	claims, err := s.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "laptop", claims.NodeID)
	assert.Equal(t, "laptop", claims.Subject)
	assert.Equal(t, Issuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Expiry(), 5*time.Second)
}

func TestService_NoExpiry(t *testing.T) {
	s, err := NewService(testSecret, 0)
	require.NoError(t, err)

	signed, issued, err := s.Issue("laptop")
	require.NoError(t, err)
	assert.True(t, issued.Expiry().IsZero())

	_, err = s.Validate(signed)
	assert.NoError(t, err)
}

func TestService_Validate_Expired(t *testing.T) {
	s, err := NewService(testSecret, time.Minute)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }

	signed, _, err := s.Issue("laptop")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestService_Validate_WrongSecret(t *testing.T) {
	s1, err := NewService(testSecret, time.Hour)
	require.NoError(t, err)
	s2, err := NewService("another-secret-another-secret", time.Hour)
	require.NoError(t, err)

	signed, _, err := s1.Issue("laptop")
	require.NoError(t, err)

	_, err = s2.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Validate_Malformed(t *testing.T) {
	s, err := NewService(testSecret, time.Hour)
	require.NoError(t, err)

	_, err = s.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Validate_MissingNodeID(t *testing.T) {
	s, err := NewService(testSecret, time.Hour)
	require.NoError(t, err)

	signed, _, err := s.Issue("")
	require.NoError(t, err)

	_, err = s.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseUnverified(t *testing.T) {
	s, err := NewService(testSecret, time.Hour)
	require.NoError(t, err)
	signed, _, err := s.Issue("desktop")
	require.NoError(t, err)

	claims, err := ParseUnverified(signed)
	require.NoError(t, err)
	assert.Equal(t, "desktop", claims.NodeID)

	_, err = ParseUnverified("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
