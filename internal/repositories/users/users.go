package users

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-projects/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

type Repository interface {
	// Create inserts the user. It returns ErrUserExists
	// if the name or the email is already taken.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns ErrUserNotFound if there is no such user.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	ExistsByNameOrEmail(ctx context.Context, name, email string) (bool, error)
}
