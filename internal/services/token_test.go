package services

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-projects/internal/models"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("test-issuer", "super-secret", 72*time.Hour)
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	t.Parallel()

	m := newTestTokenManager()
	user := &models.User{ID: "u-1", Name: "alice", Email: "alice@example.com"}

	token, expiresAt, err := m.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), expiresAt, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestTokenManager_ParseRejects(t *testing.T) {
	t.Parallel()

	m := newTestTokenManager()
	user := &models.User{ID: "u-1", Name: "alice", Email: "alice@example.com"}
	token, _, err := m.Issue(user)
	require.NoError(t, err)

	expired := newTestTokenManager()
	expired.now = func() time.Time { return time.Now().Add(-73 * time.Hour) }
	expiredToken, _, err := expired.Issue(user)
	require.NoError(t, err)

	otherKey := NewTokenManager("test-issuer", "other-secret", time.Hour)
	otherIssuer := NewTokenManager("someone-else", "super-secret", time.Hour)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{UserID: "u-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name    string
		manager *TokenManager
		token   string
	}{
		{name: "tampered payload", manager: m, token: tampered},
		{name: "expired", manager: m, token: expiredToken},
		{name: "wrong key", manager: otherKey, token: token},
		{name: "wrong issuer", manager: otherIssuer, token: token},
		{name: "alg none", manager: m, token: noneToken},
		{name: "malformed", manager: m, token: "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.manager.Parse(tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}

	_, err = m.Parse(expiredToken)
	assert.True(t, IsExpired(err))
}
