package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adanyl0v/go-projects/internal/repositories/memory"
)

func newTestAuthService(t *testing.T) (AuthService, *memory.UserRepository, *TokenManager) {
	t.Helper()

	hasher, err := NewPasswordHasher(HashAlgorithmBcrypt, bcrypt.MinCost)
	require.NoError(t, err)

	repo := memory.NewUserRepository()
	tokens := newTestTokenManager()
	return NewAuthService(zerolog.Nop(), repo, hasher, tokens), repo, tokens
}

func signupAlice(t *testing.T, s AuthService) *SignupResult {
	t.Helper()

	res, err := s.Signup(context.Background(), SignupParams{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
		Country:  "Norway",
	})
	require.NoError(t, err)
	return res
}

func TestAuthService_SignupThenLogin(t *testing.T) {
	s, repo, tokens := newTestAuthService(t)
	ctx := context.Background()

	res := signupAlice(t, s)
	assert.Equal(t, "alice", res.Username)
	assert.NotEmpty(t, res.UserID)

	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", stored.PasswordHash)
	assert.Equal(t, "Norway", stored.Country)

	login, err := s.Login(ctx, LoginParams{Identifier: "alice@example.com", Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Equal(t, "alice", login.Username)
	assert.Equal(t, res.UserID, login.UserID)
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), login.ExpiresAt, time.Minute)

	claims, err := tokens.Parse(login.Token)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, claims.UserID)
}

func TestAuthService_SignupDuplicate(t *testing.T) {
	s, repo, _ := newTestAuthService(t)
	signupAlice(t, s)

	tests := []struct {
		name  string
		uname string
		email string
	}{
		{name: "same name", uname: "alice", email: "new@example.com"},
		{name: "same email", uname: "bob", email: "alice@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Signup(context.Background(), SignupParams{
				Name:     tt.uname,
				Email:    tt.email,
				Password: "x",
				Country:  "Chile",
			})
			require.ErrorIs(t, err, ErrUserExists)
			assert.Equal(t, 1, repo.Count())
		})
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	s, _, _ := newTestAuthService(t)
	signupAlice(t, s)
	ctx := context.Background()

	_, err := s.Login(ctx, LoginParams{Identifier: "bob@example.com", Password: "Str0ng!pass"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Login is by email only.
	_, err = s.Login(ctx, LoginParams{Identifier: "alice", Password: "Str0ng!pass"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	res, err := s.Login(ctx, LoginParams{Identifier: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
	assert.Nil(t, res)
}

func TestAuthService_GetProfile(t *testing.T) {
	s, _, tokens := newTestAuthService(t)
	signupAlice(t, s)

	login, err := s.Login(context.Background(), LoginParams{Identifier: "alice@example.com", Password: "Str0ng!pass"})
	require.NoError(t, err)

	profile, err := s.GetProfile(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, login.UserID, profile.UserID)
	assert.Empty(t, profile.Role)

	_, err = s.GetProfile("")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = s.GetProfile(login.Token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Username falls back to the email claim.
	emailOnly := &SessionClaims{Email: "anon@example.com", UserID: "u-2"}
	token := issueRawClaims(t, tokens, emailOnly)
	profile, err = s.GetProfile(token)
	require.NoError(t, err)
	assert.Equal(t, "anon@example.com", profile.Username)
}
