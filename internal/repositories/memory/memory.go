// Package memory keeps users and projects in process memory. It backs the
// server when it runs without Postgres and is the store used by tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/adanyl0v/go-projects/internal/models"
	"github.com/adanyl0v/go-projects/internal/repositories/projects"
	"github.com/adanyl0v/go-projects/internal/repositories/users"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Name == user.Name || u.Email == user.Email {
			return users.ErrUserExists
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (r *UserRepository) ExistsByNameOrEmail(_ context.Context, name, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.ContainsFunc(r.users, func(u models.User) bool {
		return u.Name == name || u.Email == email
	}), nil
}

// Exists reports whether a user with the given id was created.
func (r *UserRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.ContainsFunc(r.users, func(u models.User) bool {
		return u.ID == id
	})
}

// Count returns the number of stored users.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

type ProjectRepository struct {
	mu       sync.Mutex
	owners   *UserRepository
	projects []*models.Project
}

// NewProjectRepository returns a project store. When owners is not nil,
// Create rejects projects whose user id is unknown to it.
func NewProjectRepository(owners *UserRepository) *ProjectRepository {
	return &ProjectRepository{owners: owners}
}

func (r *ProjectRepository) Create(_ context.Context, project *models.Project) error {
	if r.owners != nil && !r.owners.Exists(project.UserID) {
		return projects.ErrOwnerNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.projects = append(r.projects, cloneProject(project))
	return nil
}

func (r *ProjectRepository) GetByID(_ context.Context, projectID string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(projectID)
	if i < 0 {
		return nil, projects.ErrProjectNotFound
	}
	return cloneProject(r.projects[i]), nil
}

func (r *ProjectRepository) ListByUserID(_ context.Context, userID string) ([]*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.Project, 0)
	for _, p := range r.projects {
		if p.UserID == userID {
			result = append(result, cloneProject(p))
		}
	}
	return result, nil
}

func (r *ProjectRepository) Delete(_ context.Context, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(projectID)
	if i < 0 {
		return projects.ErrProjectNotFound
	}
	r.projects = slices.Delete(r.projects, i, i+1)
	return nil
}

func (r *ProjectRepository) Mutate(_ context.Context, projectID string, fn projects.MutateFunc) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(projectID)
	if i < 0 {
		return nil, projects.ErrProjectNotFound
	}

	project := cloneProject(r.projects[i])
	err := fn(project)
	if err != nil {
		return nil, err
	}

	project.UpdatedAt = time.Now()
	r.projects[i].Tasks = slices.Clone(project.Tasks)
	r.projects[i].UpdatedAt = project.UpdatedAt
	return project, nil
}

func (r *ProjectRepository) indexOf(projectID string) int {
	return slices.IndexFunc(r.projects, func(p *models.Project) bool {
		return p.ID == projectID
	})
}

func cloneProject(p *models.Project) *models.Project {
	c := *p
	c.Tasks = slices.Clone(p.Tasks)
	if c.Tasks == nil {
		c.Tasks = []models.Task{}
	}
	return &c
}
