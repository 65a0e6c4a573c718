package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

const (
	HashAlgorithmBcrypt   = "bcrypt"
	HashAlgorithmArgon2id = "argon2id"

	DefaultBcryptCost = 10
)

type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. The algorithm is
	// taken from the hash itself, so hashes created under a previous
	// configuration keep verifying.
	Compare(password, hash string) (bool, error)
}

type passwordHasher struct {
	algorithm  string
	bcryptCost int
}

func NewPasswordHasher(algorithm string, bcryptCost int) (PasswordHasher, error) {
	switch algorithm {
	case HashAlgorithmBcrypt, "":
		algorithm = HashAlgorithmBcrypt
	case HashAlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("unknown password hash algorithm: %s", algorithm)
	}

	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost out of range: %d", bcryptCost)
	}

	return &passwordHasher{
		algorithm:  algorithm,
		bcryptCost: bcryptCost,
	}, nil
}

func (h *passwordHasher) Hash(password string) (string, error) {
	if h.algorithm == HashAlgorithmArgon2id {
		hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return hash, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *passwordHasher) Compare(password, hash string) (bool, error) {
	if strings.HasPrefix(hash, "$argon2id$") {
		return argon2id.ComparePasswordAndHash(password, hash)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("failed to compare password: %w", err)
	}
	return true, nil
}
