package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-projects/internal/models"
	"github.com/adanyl0v/go-projects/internal/repositories/users"
)

type authServiceImpl struct {
	logger zerolog.Logger
	users  users.Repository
	hasher PasswordHasher
	tokens *TokenManager
}

func NewAuthService(
	logger zerolog.Logger,
	userRepo users.Repository,
	hasher PasswordHasher,
	tokens *TokenManager,
) AuthService {
	return &authServiceImpl{
		logger: logger,
		users:  userRepo,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, params SignupParams) (*SignupResult, error) {
	exists, err := s.users.ExistsByNameOrEmail(ctx, params.Name, params.Email)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("email", params.Email).
			Msg("failed to check user existence")
		return nil, err
	}
	if exists {
		s.logger.Error().
			Str("name", params.Name).
			Str("email", params.Email).
			Msg("user already exists")
		return nil, ErrUserExists
	}

	userUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate user uuid")
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:           userUUID.String(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Country:      params.Country,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.users.Create(ctx, &user)
	if err != nil {
		// Lost a race against a concurrent signup.
		if errors.Is(err, users.ErrUserExists) {
			s.logger.Error().
				Str("email", user.Email).
				Msg("user already exists")
			return nil, ErrUserExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return nil, err
	}
	s.logger.Debug().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("inserted user")

	s.logger.Info().
		Str("user_id", user.ID).
		Msg("signed up user")
	return &SignupResult{
		UserID:   user.ID,
		Username: user.Name,
	}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, params.Identifier)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.logger.Error().
				Str("identifier", params.Identifier).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Str("identifier", params.Identifier).
			Msg("failed to select user by email")
		return nil, err
	}
	s.logger.Debug().
		Str("user_id", user.ID).
		Msg("selected user")

	match, err := s.hasher.Compare(params.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Error().
			Str("user_id", user.ID).
			Msg("passwords do not match")
		return nil, ErrIncorrectPassword
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue session token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Time("expires_at", expiresAt).
		Msg("logged in")
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  user.Name,
		UserID:    user.ID,
	}, nil
}

func (s *authServiceImpl) GetProfile(token string) (*Profile, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Bool("expired", IsExpired(err)).
			Msg("rejected session token")
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	username := claims.Username
	if username == "" {
		username = claims.Email
	}
	return &Profile{
		Username: username,
		Role:     claims.Role,
		UserID:   claims.UserID,
	}, nil
}
