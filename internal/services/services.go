package services

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/go-projects/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("a user with that name or email already exists")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrNoToken           = errors.New("no token found")
	ErrInvalidToken      = errors.New("invalid token")

	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidDuration    = errors.New("invalid duration format")
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrForbidden          = errors.New("project belongs to another user")
)

type AuthService interface {
	// Signup registers a user with the given name, email and country.
	//
	// The password is hashed before the user is persisted.
	//
	// It returns ErrUserExists if a user with the same
	// name or email already exists.
	Signup(ctx context.Context, params SignupParams) (*SignupResult, error)

	// Login authenticates the user by email and password and issues
	// a session token.
	//
	// It returns ErrUserNotFound if no user has the given email or
	// ErrIncorrectPassword if the password doesn't match.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// GetProfile decodes the session token without touching the store.
	//
	// It returns ErrNoToken for an empty token and ErrInvalidToken
	// if the signature or the expiry check fails.
	GetProfile(token string) (*Profile, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context, userID string) ([]models.ProjectSummary, error)

	// GetProject returns the project with all embedded tasks
	// or ErrProjectNotFound.
	GetProject(ctx context.Context, projectID string) (*models.Project, error)

	// CreateProject validates and persists a project with an empty
	// task list. Missing fields yield ErrMissingFields, a malformed
	// duration ErrInvalidDuration and an unknown type
	// ErrInvalidProjectType.
	CreateProject(ctx context.Context, params CreateProjectParams) (*models.Project, error)

	// DeleteProject removes the project and its tasks
	// or returns ErrProjectNotFound.
	DeleteProject(ctx context.Context, projectID string) error

	// AddTask appends a pending task to the project.
	AddTask(ctx context.Context, projectID string, params AddTaskParams) (*models.Task, error)

	// UpdateTaskStatus sets the task status. Moving into
	// models.StatusCompleted stamps the completion time, moving back
	// to pending leaves it untouched.
	UpdateTaskStatus(ctx context.Context, projectID, taskID, status string) (*models.Task, error)

	DeleteTask(ctx context.Context, projectID, taskID string) error
}

type SignupParams struct {
	Name     string
	Email    string
	Password string
	Country  string
}

type SignupResult struct {
	UserID   string
	Username string
}

type LoginParams struct {
	// Identifier is matched against the user's email.
	Identifier string
	Password   string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Username  string
	UserID    string
}

type Profile struct {
	Username string
	Role     string
	UserID   string
}

type CreateProjectParams struct {
	Name        string
	Type        string
	Duration    string
	Description string
	UserID      string
}

type AddTaskParams struct {
	Title       string
	Description string
}
