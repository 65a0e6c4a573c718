package projects

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-projects/internal/models"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrOwnerNotFound   = errors.New("project owner not found")
)

// MutateFunc changes a loaded project in place. Only the embedded
// task list is written back. Returning an error aborts the write.
type MutateFunc func(project *models.Project) error

type Repository interface {
	// Create inserts the project together with its tasks. It returns
	// ErrOwnerNotFound if the owner id does not reference a user.
	Create(ctx context.Context, project *models.Project) error

	// GetByID returns ErrProjectNotFound if there is no such project.
	GetByID(ctx context.Context, projectID string) (*models.Project, error)

	ListByUserID(ctx context.Context, userID string) ([]*models.Project, error)

	// Delete removes the project and every embedded task.
	// It returns ErrProjectNotFound if nothing was deleted.
	Delete(ctx context.Context, projectID string) error

	// Mutate loads the project exclusively, applies fn and persists
	// the resulting task list. Concurrent mutations of the same
	// project are serialized.
	Mutate(ctx context.Context, projectID string, fn MutateFunc) (*models.Project, error)
}
